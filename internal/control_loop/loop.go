package control_loop

import (
	"context"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/servo2go/internal/engine"
	"github.com/markusressel/servo2go/internal/process"
	"github.com/markusressel/servo2go/internal/ui"
	"github.com/markusressel/servo2go/internal/util"
)

// Sample is the record of a single successful loop step
type Sample struct {
	Index     int
	Timestamp time.Time
	// process value that was fed to the engine
	Measured float64
	// control output of the engine
	Output float64
	// process value after applying the output
	Next float64
}

type Statistics struct {
	// number of steps that reached the engine
	Reads uint64
	// number of steps that returned an error
	FailedReads uint64

	LastControlValue float64
	LastProcessValue float64
}

// Loop closes the control loop around an engine: it measures the process,
// feeds the measurement to the engine and applies the control output to
// the process.
type Loop struct {
	id      string
	engine  *engine.Engine
	process process.Process
	clock   Clock

	measurement *engine.Measurement
	window      *rolling.PointPolicy

	mu         sync.Mutex
	statistics Statistics
	history    []Sample
	index      int
}

func NewLoop(id string, e *engine.Engine, p process.Process, clock Clock, windowSize int) *Loop {
	window := util.CreateRollingWindow(windowSize)
	window.Append(p.Value())
	return &Loop{
		id:          id,
		engine:      e,
		process:     p,
		clock:       clock,
		measurement: engine.NewMeasurement(),
		window:      window,
		statistics: Statistics{
			LastProcessValue: p.Value(),
		},
	}
}

// Step executes a single iteration of the loop
func (l *Loop) Step() (Sample, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	index := l.index
	l.index++

	measured := l.process.Value()
	timestamp := l.clock.Now()
	l.measurement.SetValue(measured, timestamp)

	readsBefore := l.engine.NumReads()
	result, err := l.engine.Next(l.measurement)
	l.statistics.Reads += l.engine.NumReads() - readsBefore
	if err != nil {
		l.statistics.FailedReads++
		ui.Warning("Loop %s: step %d failed: %v", l.id, index, err)
		return Sample{}, err
	}

	next := l.process.Apply(result.Value)
	l.window.Append(next)

	sample := Sample{
		Index:     index,
		Timestamp: timestamp,
		Measured:  measured,
		Output:    result.Value,
		Next:      next,
	}
	l.history = append(l.history, sample)
	l.statistics.LastControlValue = result.Value
	l.statistics.LastProcessValue = next

	ui.Debug("Loop %s: step %d, measured: %.4f, output: %.4f, next: %.4f", l.id, index, measured, result.Value, next)
	return sample, nil
}

// Run steps the loop once per interval until the given number of
// iterations is reached or ctx is cancelled. An iteration count of 0
// runs until ctx is cancelled. Failed steps are logged and skipped.
func (l *Loop) Run(ctx context.Context, interval time.Duration, iterations int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; iterations <= 0 || i < iterations; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				ui.Info("Stopping loop %s...", l.id)
				return nil
			case <-ticker.C:
			}
		}
		_, _ = l.Step()
	}

	return nil
}

// Simulate executes the given number of iterations back to back
func (l *Loop) Simulate(iterations int) {
	for i := 0; i < iterations; i++ {
		_, _ = l.Step()
	}
}

func (l *Loop) GetId() string {
	return l.id
}

func (l *Loop) Engine() *engine.Engine {
	return l.engine
}

func (l *Loop) GetStatistics() Statistics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.statistics
}

// History returns a copy of all successful samples
func (l *Loop) History() []Sample {
	l.mu.Lock()
	defer l.mu.Unlock()
	result := make([]Sample, len(l.history))
	copy(result, l.history)
	return result
}

// MovingAvg returns the average of the most recent process values
func (l *Loop) MovingAvg() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return util.GetWindowAvg(l.window)
}
