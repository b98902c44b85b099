package servo

import (
	"fmt"
	"time"

	"github.com/markusressel/servo2go/internal/util"
)

// ControlValue is the output of a single Servo read.
type ControlValue struct {
	Value float64
}

// ServoInput is the input of a single Servo read.
type ServoInput struct {
	ProcessValue float64
	// DeltaT is the time elapsed since the previous read, absent for the
	// first sample of a stream.
	DeltaT util.Optional[time.Duration]
}

// Servo is a control law that maps a process reading to a control output.
// Implementations must only depend on their own state and the given input.
type Servo interface {
	// String returns a human-readable label used for diagnostics
	fmt.Stringer

	// Read computes the control output for the given input
	Read(input ServoInput) (ControlValue, error)
}
