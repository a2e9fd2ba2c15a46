// Command rainpump controls a rainwater-harvesting pump from a pre-filter
// switch, a tank-full switch, and an analog tank-level sensor, and drives
// a relay, status LEDs, and a bar-graph strip. A hardware watchdog
// supervises the loop and a scheduled restart budget reboots the board
// after a bounded uptime.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periph.io/x/host/v3"

	"github.com/wkla/rainpump/internal/adc"
	"github.com/wkla/rainpump/internal/bargraph"
	"github.com/wkla/rainpump/internal/gpio"
	"github.com/wkla/rainpump/internal/logic"
	"github.com/wkla/rainpump/internal/status"
	"github.com/wkla/rainpump/internal/watchdog"
)

// Production timing profile. The -debug flag swaps in the short profile
// the way the original firmware's debug build did.
const (
	defaultTick    = 100 * time.Millisecond
	defaultRunOn   = 15 * time.Second
	defaultUptime  = time.Hour
	debugRunOn     = 3 * time.Second
	debugUptime    = time.Minute
	defaultLEDGain = 16
)

func main() {
	tick := flag.Duration("tick", defaultTick, "control loop tick period")
	runOn := flag.Duration("run-on", defaultRunOn, "pump run-on time after the trigger clears")
	restartAfter := flag.Duration("restart-after", defaultUptime, "uptime budget before the scheduled full restart")
	debug := flag.Bool("debug", false, "debug timing profile (overrides -run-on to 3s and -restart-after to 1m)")
	errLevel := flag.Int("err-level", logic.DefaultCalibration.ErrLevel, "raw level below which the sensor loop counts as broken")
	minLevel := flag.Int("min-level", logic.DefaultCalibration.MinLevel, "raw level of an empty tank")
	maxLevel := flag.Int("max-level", logic.DefaultCalibration.MaxLevel, "raw level of a full tank")
	wdPath := flag.String("watchdog", watchdog.DefaultDevice, "hardware watchdog device (empty to disable)")
	intensity := flag.Int("intensity", defaultLEDGain, "bar graph global intensity (0-255)")
	printState := flag.Bool("print-state", false, "print current inputs and level, then exit")

	flag.Parse()

	if *debug {
		*runOn = debugRunOn
		*restartAfter = debugUptime
	}
	cal := logic.Calibration{ErrLevel: *errLevel, MinLevel: *minLevel, MaxLevel: *maxLevel}

	if err := run(*tick, *runOn, *restartAfter, cal, *wdPath, *intensity, *printState, *debug); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(tick, runOn, restartAfter time.Duration, cal logic.Calibration, wdPath string, intensity int, printState, debug bool) error {
	if !(cal.ErrLevel < cal.MinLevel && cal.MinLevel < cal.MaxLevel) {
		return fmt.Errorf("calibration points out of order: err=%d min=%d max=%d", cal.ErrLevel, cal.MinLevel, cal.MaxLevel)
	}
	if intensity < 0 || intensity > 255 {
		return fmt.Errorf("intensity %d out of range 0-255", intensity)
	}

	// periph host drivers back both the I2C ADC and the SPI strip.
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("init periph host: %w", err)
	}

	reader, err := gpio.NewRealReader(gpio.DefaultPins)
	if err != nil {
		return fmt.Errorf("init gpio inputs: %w", err)
	}
	defer reader.Close()

	sampler, err := adc.NewRealSampler()
	if err != nil {
		return fmt.Errorf("init level adc: %w", err)
	}
	defer sampler.Close()

	// Print state mode
	if printState {
		in, err := reader.Read()
		if err != nil {
			return fmt.Errorf("read gpio: %w", err)
		}
		raw, err := sampler.Sample()
		if err != nil {
			return fmt.Errorf("read level: %w", err)
		}
		fmt.Printf("tank full: %s\nfilter full: %s\nauto mode: %s\nmanual button: %s\nraw level: %d\n",
			stateString(in.TankFull), stateString(in.FilterFull), stateString(in.AutoMode), stateString(in.ManualPump), raw)
		return nil
	}

	writer, err := gpio.NewRealWriter(gpio.DefaultPins)
	if err != nil {
		return fmt.Errorf("init gpio outputs: %w", err)
	}
	defer writer.Close()

	display, err := bargraph.NewRealDisplay(uint8(intensity))
	if err != nil {
		return fmt.Errorf("init bar graph: %w", err)
	}
	defer display.Close()

	// Force a known-off state before the first tick so a crash-restart
	// never inherits a stuck relay.
	if err := writer.AllOff(); err != nil {
		return fmt.Errorf("initial outputs off: %w", err)
	}
	if err := display.Render(logic.Frame{}); err != nil {
		return fmt.Errorf("initial blank frame: %w", err)
	}

	// Arm the watchdog last: from here on the loop must keep feeding it.
	var wd watchdog.Timer = watchdog.Disabled{}
	if wdPath != "" {
		rt, err := watchdog.NewRealTimer(wdPath, watchdog.DefaultTimeout)
		if err != nil {
			return fmt.Errorf("init watchdog: %w", err)
		}
		wd = rt
		defer rt.Close()
	}

	tracker := status.NewTracker(time.Now(), status.Config{
		TickMs:    tick.Milliseconds(),
		RunOnS:    int64(runOn.Seconds()),
		RestartS:  int64(restartAfter.Seconds()),
		WatchdogS: int64(watchdog.DefaultTimeout.Seconds()),
		Debug:     debug,
	})

	log.Printf("started: tick=%v run-on=%v restart-after=%v watchdog=%q debug=%v", tick, runOn, restartAfter, wdPath, debug)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	cfg := loopConfig{
		lapCount:    int(runOn / tick),
		budgetTicks: int(restartAfter / tick),
		cal:         cal,
	}
	return runLoop(reader, writer, sampler, display, wd, tracker, cfg, ticker.C, sigCh)
}

// loopConfig is the compiled timing and calibration profile, expressed
// in ticks.
type loopConfig struct {
	lapCount    int
	budgetTicks int
	cal         logic.Calibration
}

// runLoop executes one control tick per tick-channel event until a
// shutdown signal arrives or the restart budget runs out. Tick order:
// liveness verdict first (a fault later in the tick must not withhold a
// heartbeat already earned), then sampling, filtering, pump decision,
// and rendering.
func runLoop(in gpio.InputReader, out gpio.OutputWriter, sampler adc.Sampler, display bargraph.Display, wd watchdog.Timer, tracker *status.Tracker, cfg loopConfig, tick <-chan time.Time, sig <-chan os.Signal) error {
	filter := logic.NewLevelFilter(cfg.cal)
	pump := logic.NewPumpController(cfg.lapCount)
	liveness := logic.NewLiveness(cfg.budgetTicks)
	prevFault := false

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			shutdown(out, display, wd, tracker)
			return nil

		case <-tick:
			if liveness.Tick() == logic.Terminal {
				snap := tracker.Snapshot()
				log.Printf("restart budget exhausted after %v, starving watchdog for hardware reset", snap.Uptime().Round(time.Second))
				return blinkUntilReset(out, display, tick, sig)
			}
			if err := wd.Feed(); err != nil {
				log.Printf("watchdog feed error: %v", err)
			}

			inputs, err := in.Read()
			if err != nil {
				log.Printf("gpio read error: %v", err)
				continue
			}
			raw, err := sampler.Sample()
			if err != nil {
				log.Printf("level read error: %v", err)
				continue
			}

			snap := logic.Snapshot{
				TankFull:   inputs.TankFull,
				FilterFull: inputs.FilterFull,
				AutoMode:   inputs.AutoMode,
				ManualPump: inputs.ManualPump,
				RawLevel:   raw,
			}

			level := filter.Process(raw)
			if level.Fault != prevFault {
				if level.Fault {
					log.Printf("level sensor fault: raw=%d below err-level %d", raw, cfg.cal.ErrLevel)
				} else {
					log.Printf("level sensor recovered: raw=%d", raw)
				}
				prevFault = level.Fault
			}

			on, changed := pump.Process(snap)
			if changed {
				log.Printf("pump %s (tank=%s filter=%s auto=%s level=%d%%)",
					stateString(on), stateString(snap.TankFull), stateString(snap.FilterFull), stateString(snap.AutoMode), level.Percent)
			}
			// Relay writes are idempotent; write the level every tick.
			if err := out.SetPump(on); err != nil {
				log.Printf("pump relay write error: %v", err)
			}

			outs := logic.Render(snap, on, level)
			writeLEDs(out, outs.LEDs)
			if err := display.Render(outs.Frame); err != nil {
				log.Printf("bar graph render error: %v", err)
			}

			tracker.Update(snap, level, on, pump.RunOnTicks(), liveness.Remaining())
		}
	}
}

// writeLEDs pushes the rendered LED states. Individual write failures are
// logged and do not stop the tick.
func writeLEDs(out gpio.OutputWriter, leds logic.LEDs) {
	for _, w := range []struct {
		name string
		set  func(bool) error
		on   bool
	}{
		{"pump-led", out.SetPumpLED, leds.Pump},
		{"tank-led", out.SetTankFullLED, leds.TankFull},
		{"filter-led", out.SetFilterFullLED, leds.FilterFull},
		{"mode-led", out.SetModeLED, leds.ManualMode},
	} {
		if err := w.set(w.on); err != nil {
			log.Printf("%s write error: %v", w.name, err)
		}
	}
}

// blinkUntilReset is the terminal fault state: outputs forced off, the
// pump LED toggling each tick, and the watchdog deliberately starved
// until the hardware resets the board. It returns only if a shutdown
// signal arrives first.
func blinkUntilReset(out gpio.OutputWriter, display bargraph.Display, tick <-chan time.Time, sig <-chan os.Signal) error {
	if err := out.AllOff(); err != nil {
		log.Printf("terminal outputs off error: %v", err)
	}
	if err := display.Render(logic.Frame{}); err != nil {
		log.Printf("terminal blank frame error: %v", err)
	}

	led := false
	for {
		select {
		case s := <-sig:
			log.Printf("received %v during terminal fault, exiting", s)
			return nil
		case <-tick:
			led = !led
			if err := out.SetPumpLED(led); err != nil {
				log.Printf("terminal blink error: %v", err)
			}
		}
	}
}

// shutdown forces the outputs off and disarms the watchdog so the
// pending timeout does not reboot the board after a clean exit.
func shutdown(out gpio.OutputWriter, display bargraph.Display, wd watchdog.Timer, tracker *status.Tracker) {
	if err := out.AllOff(); err != nil {
		log.Printf("shutdown outputs off error: %v", err)
	}
	if err := display.Render(logic.Frame{}); err != nil {
		log.Printf("shutdown blank frame error: %v", err)
	}
	if err := wd.Disarm(); err != nil {
		log.Printf("watchdog disarm error: %v", err)
	}

	snap := tracker.Snapshot()
	log.Printf("stopped: uptime=%v pump=%s level=%d%% fault=%v budget-left=%d ticks",
		snap.Uptime().Round(time.Second), stateString(snap.PumpOn), snap.Level.Percent, snap.Level.Fault, snap.TicksLeft)
}

func stateString(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
