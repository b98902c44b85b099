package servo

import "fmt"

// BangBangServo is a two-position control law: it outputs High while the
// process is below the set point and Low while it is above, keeping its
// previous output while the error is within the hysteresis band.
type BangBangServo struct {
	setPoint   float64
	low        float64
	high       float64
	hysteresis float64

	lastOutput float64
}

func NewBangBangServo(setPoint, low, high, hysteresis float64) *BangBangServo {
	return &BangBangServo{
		setPoint:   setPoint,
		low:        low,
		high:       high,
		hysteresis: hysteresis,
		lastOutput: low,
	}
}

func (s *BangBangServo) Read(input ServoInput) (ControlValue, error) {
	err := s.setPoint - input.ProcessValue
	if err > s.hysteresis {
		s.lastOutput = s.high
	} else if err < -s.hysteresis {
		s.lastOutput = s.low
	}
	return ControlValue{Value: s.lastOutput}, nil
}

func (s *BangBangServo) String() string {
	return fmt.Sprintf("BangBangServo[setPoint=%g, low=%g, high=%g, hysteresis=%g]", s.setPoint, s.low, s.high, s.hysteresis)
}
