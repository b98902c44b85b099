package servo

import (
	"fmt"

	"github.com/markusressel/servo2go/internal/util"
)

// DirectServo is a very simple control law that directly outputs the
// difference between set point and process value. It can also be used to
// gracefully approach the set point by utilizing the "maxChangePerSecond"
// property.
type DirectServo struct {
	setPoint float64
	// limits the maximum allowed output per second of elapsed time
	maxChangePerSecond *float64
}

// NewDirectServo creates a DirectServo. A nil maxChangePerSecond disables
// rate limiting.
func NewDirectServo(setPoint float64, maxChangePerSecond *float64) *DirectServo {
	return &DirectServo{
		setPoint:           setPoint,
		maxChangePerSecond: maxChangePerSecond,
	}
}

func (s *DirectServo) Read(input ServoInput) (ControlValue, error) {
	err := s.setPoint - input.ProcessValue
	if s.maxChangePerSecond == nil {
		return ControlValue{Value: err}, nil
	}

	dt, ok := input.DeltaT.Get()
	if !ok {
		// no elapsed time, so no change is allowed yet
		return ControlValue{Value: 0}, nil
	}

	maxChangeThisStep := *s.maxChangePerSecond * dt.Seconds()
	// we can be above or below the set point, so we add or subtract
	// at most the max change, capped to having reached the set point
	if err > 0 {
		return ControlValue{Value: util.Coerce(maxChangeThisStep, 0, err)}, nil
	} else {
		return ControlValue{Value: util.Coerce(-maxChangeThisStep, err, 0)}, nil
	}
}

func (s *DirectServo) String() string {
	if s.maxChangePerSecond == nil {
		return fmt.Sprintf("DirectServo[setPoint=%g]", s.setPoint)
	}
	return fmt.Sprintf("DirectServo[setPoint=%g, maxChangePerSecond=%g]", s.setPoint, *s.maxChangePerSecond)
}
