package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/miljank/artemis/internal/config"
	"github.com/miljank/artemis/internal/debug"
	"github.com/miljank/artemis/internal/hw/camera"
	"github.com/miljank/artemis/internal/hw/display"
	"github.com/miljank/artemis/internal/hw/gpio"
	"github.com/miljank/artemis/internal/hw/motor"
	"github.com/miljank/artemis/internal/logic/menu"
	"github.com/miljank/artemis/internal/logic/rig"
	"github.com/miljank/artemis/internal/logic/run"
	"github.com/miljank/artemis/internal/logic/shutter"
	"github.com/miljank/artemis/internal/logic/timelapse"
)

// Compiled-in rig constants: the pins are physical wiring, the timing
// is the rail geometry.
const (
	shutterPin = 3
	motorPin   = 7

	timeToEndSeconds = 160.0 // full carriage travel
	settleSeconds    = 0.1
	countdownFrom    = 5
)

func main() {
	// CLI flags
	cfgPath := flag.String("config", config.DefaultPath(), "path to the settings file")
	serialPort := flag.String("port", display.DefaultPort, "serial device of the TextStar panel")
	mock := flag.Bool("mock", false, "use mock GPIO and display (development mode)")
	debugLevel := flag.Int("debug", 0, "debug level 0-4 (0=off, 1=info, 2=live, 3=verbose, 4=trace)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize debug system
	debug.Init(*debugLevel)
	debug.Section("Initialization")
	debug.Value("Settings path", *cfgPath)
	debug.Value("Mock hardware", *mock)

	// Load persisted settings (defaults on missing/corrupt file)
	cfg := config.Load(*cfgPath)
	table := shutter.Default()
	if _, err := table.Resolve(cfg.Shutter); err != nil {
		log.Fatalf("settings and shutter table out of sync: %v", err)
	}

	// Initialize GPIO driver
	gpioDriver, err := gpio.NewDriver(*mock)
	if err != nil {
		log.Fatalf("init GPIO failed: %v", err)
	}
	defer func() {
		// Leave no pin high on the way out.
		_ = gpioDriver.WritePin(shutterPin, gpio.Low)
		_ = gpioDriver.WritePin(motorPin, gpio.Low)
		if err := gpioDriver.Close(); err != nil {
			log.Printf("closing GPIO driver failed: %v", err)
		}
	}()

	// Initialize the operator panel
	var panel display.Display
	if *mock {
		debug.Info("Using MOCK display (development mode)")
		panel = &display.Mock{}
	} else {
		lcd, err := display.OpenTextStar(*serialPort)
		if err != nil {
			log.Fatalf("init display failed: %v", err)
		}
		defer func() {
			if err := lcd.Close(); err != nil {
				log.Printf("closing display failed: %v", err)
			}
		}()
		panel = lcd
	}

	// Initialize rig hardware
	cam := camera.NewShutterGPIO(gpioDriver, shutterPin)
	carriage := motor.NewMotor(gpioDriver, motorPin)
	rigCtrl := rig.NewController(cam, carriage)

	// Wire the run coordination
	state := run.NewState()
	machine := menu.NewMachine(panel, cfg, table, state, *cfgPath)
	runner := timelapse.NewRunner(rigCtrl, panel, cfg, table, state, timelapse.Timing{
		TimeToEnd:     timeToEndSeconds,
		Settle:        settleSeconds,
		CountdownFrom: countdownFrom,
	})

	coord := run.NewCoordinator(state, screenDispatch(machine, runner))
	coord.Run(ctx)

	state.SetKeepRunning(false)
	state.SetRunning(false)
	debug.Info("Shutdown complete")
}

// screenDispatch maps screen tags onto their implementations.
func screenDispatch(machine *menu.Machine, runner *timelapse.Runner) run.Dispatch {
	return func(ctx context.Context, id run.ScreenID) []run.ScreenID {
		switch id {
		case run.ScreenMain:
			return machine.MainScreen(ctx)
		case run.ScreenEditInterval:
			return machine.EditIntervalScreen(ctx)
		case run.ScreenEditFrames:
			return machine.EditFramesScreen(ctx)
		case run.ScreenEditSpeed:
			return machine.EditSpeedScreen(ctx)
		case run.ScreenShoot:
			return runner.ShootScreen(ctx)
		case run.ScreenStopWatch:
			return machine.StopWatchScreen(ctx)
		default:
			debug.Error(fmt.Errorf("unknown screen %v", id))
			return []run.ScreenID{run.ScreenMain}
		}
	}
}
