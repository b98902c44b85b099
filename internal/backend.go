package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markusressel/servo2go/internal/configuration"
	"github.com/markusressel/servo2go/internal/control_loop"
	"github.com/markusressel/servo2go/internal/engine"
	"github.com/markusressel/servo2go/internal/process"
	"github.com/markusressel/servo2go/internal/trace"
	"github.com/markusressel/servo2go/internal/ui"
	"github.com/oklog/run"
)

const MainLoopId = "main"

// CreateLoop assembles a control loop from the current configuration,
// using the given clock for the measurement timestamps
func CreateLoop(config configuration.Configuration, clock control_loop.Clock) (*control_loop.Loop, error) {
	s, err := control_loop.NewServo(config.Controller)
	if err != nil {
		return nil, fmt.Errorf("unable to process controller configuration: %w", err)
	}
	ui.Info("Using controller: %s", s)

	noiseConfig := config.Process.Noise
	var noise process.NoiseSource = process.NoNoise{}
	if noiseConfig.StdDev > 0 || noiseConfig.Mean != 0 {
		noise = process.NewGaussianNoise(noiseConfig.Mean, noiseConfig.StdDev, noiseConfig.Seed)
	}
	p := process.NewSimulatedProcess(config.Process.InitialValue, noise)

	return control_loop.NewLoop(
		MainLoopId,
		engine.NewEngine(s),
		p,
		clock,
		config.Loop.RollingWindowSize,
	), nil
}

// RunSimulation executes all configured iterations back to back,
// using a synthetic clock that advances by the configured interval.
func RunSimulation(config configuration.Configuration) (*control_loop.Loop, error) {
	if config.Loop.Iterations <= 0 {
		return nil, fmt.Errorf("a simulation requires a positive number of iterations, was %d", config.Loop.Iterations)
	}

	clock := control_loop.NewStepClock(time.Now(), config.Loop.Interval)
	loop, err := CreateLoop(config, clock)
	if err != nil {
		return nil, err
	}
	loop.Simulate(config.Loop.Iterations)

	return loop, writeTrace(config, loop)
}

// RunDaemon drives the control loop in real time until all configured
// iterations are done or a termination signal is received.
func RunDaemon(config configuration.Configuration) (*control_loop.Loop, error) {
	loop, err := CreateLoop(config, control_loop.SystemClock{})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	{
		// === control loop
		g.Add(func() error {
			err := loop.Run(ctx, config.Loop.Interval, config.Loop.Iterations)
			ui.Info("Loop %s stopped.", loop.GetId())
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		return loop, err
	}

	return loop, writeTrace(config, loop)
}

func writeTrace(config configuration.Configuration, loop *control_loop.Loop) error {
	path := config.Trace.Path
	if len(path) <= 0 {
		return nil
	}
	if err := trace.Write(path, loop.History()); err != nil {
		return fmt.Errorf("unable to write trace file '%s': %w", path, err)
	}
	ui.Info("Trace written to: %s", path)
	return nil
}
