package pid

import "github.com/markusressel/servo2go/internal/util"

// Builder collects the configuration of a PidController. Every field
// that is not set defaults to 0.0 when calling Build.
type Builder struct {
	setPoint     util.Optional[float64]
	proportional util.Optional[float64]
	integral     util.Optional[float64]
	derivative   util.Optional[float64]
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetPoint(value float64) *Builder {
	b.setPoint.Set(value)
	return b
}

func (b *Builder) Proportional(value float64) *Builder {
	b.proportional.Set(value)
	return b
}

func (b *Builder) Integral(value float64) *Builder {
	b.integral.Set(value)
	return b
}

func (b *Builder) Derivative(value float64) *Builder {
	b.derivative.Set(value)
	return b
}

// Build creates a PidController with an empty history
func (b *Builder) Build() *PidController {
	return &PidController{
		setPoint:     b.setPoint.OrElse(0),
		proportional: b.proportional.OrElse(0),
		integral:     b.integral.OrElse(0),
		derivative:   b.derivative.OrElse(0),
	}
}
