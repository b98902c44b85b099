package engine

import (
	"fmt"
	"time"

	"github.com/markusressel/servo2go/internal/servo"
	"github.com/markusressel/servo2go/internal/util"
)

const (
	errMissingTimestamp    = "Measurement needs a timestamp"
	errOutdatedMeasurement = "Failed to execute engine on new measurement that is older than the previous measurement."
)

// Engine drives a Servo with a stream of measurements. It derives the
// elapsed time between two consecutive measurements and rejects any
// measurement that is not strictly newer than the previous one.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	servo servo.Servo

	lastReadTimestamp util.Optional[time.Time]
	numReads          uint64
}

func NewEngine(s servo.Servo) *Engine {
	return &Engine{
		servo: s,
	}
}

// Reset clears the timing bookkeeping of the engine.
// The internal state of the servo is not affected.
func (e *Engine) Reset() {
	e.lastReadTimestamp.Clear()
	e.numReads = 0
}

// Next feeds the given measurement to the servo and returns its result.
func (e *Engine) Next(measurement *Measurement) (servo.ControlValue, error) {
	timestamp, ok := measurement.Timestamp.Get()
	if !ok {
		return servo.ControlValue{}, servo.NewReadInputError(errMissingTimestamp)
	}

	var deltaT util.Optional[time.Duration]
	if previousTimestamp, ok := e.lastReadTimestamp.Get(); ok {
		// ensure that the new measurement comes after the previous one
		if !timestamp.After(previousTimestamp) {
			return servo.ControlValue{}, servo.NewReadInputError(errOutdatedMeasurement)
		}
		deltaT = util.Some(timestamp.Sub(previousTimestamp))
	}

	input := servo.ServoInput{
		ProcessValue: measurement.Value,
		DeltaT:       deltaT,
	}
	result, err := e.servo.Read(input)

	// a failed read of the servo still counts as a read
	e.numReads++
	e.lastReadTimestamp = util.Some(timestamp)

	return result, err
}

func (e *Engine) Servo() servo.Servo {
	return e.servo
}

func (e *Engine) NumReads() uint64 {
	return e.numReads
}

func (e *Engine) LastReadTimestamp() util.Optional[time.Time] {
	return e.lastReadTimestamp
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine runner [%s] has %d total read(s)", e.servo, e.numReads)
}
