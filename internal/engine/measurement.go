package engine

import (
	"time"

	"github.com/markusressel/servo2go/internal/util"
)

// Measurement is a process value captured at a given point in time
type Measurement struct {
	Value     float64
	Timestamp util.Optional[time.Time]
}

// NewMeasurement creates an empty Measurement without a timestamp
func NewMeasurement() *Measurement {
	return &Measurement{}
}

// SetValue updates the measurement in place
func (m *Measurement) SetValue(value float64, timestamp time.Time) {
	m.Value = value
	m.Timestamp = util.Some(timestamp)
}
