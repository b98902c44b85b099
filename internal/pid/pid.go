package pid

import (
	"fmt"

	"github.com/markusressel/servo2go/internal/servo"
	"github.com/markusressel/servo2go/internal/util"
)

const errZeroDeltaT = "Delta t cannot be zero for discrete PID approximation."

// PidController is a discrete PID controller in recurrence form.
//
// Instead of accumulating an integral term over time, the next output is
// computed from the previous output and the last error samples
// (backward-difference discretization). This keeps the state bounded and
// allows the gains to be changed at any time without rescaling history.
type PidController struct {
	// target value the controller tries to drive the process value towards
	setPoint float64

	// Proportional Constant
	proportional float64
	// Integral Constant
	integral float64
	// Derivative Constant
	derivative float64

	// u[k-1]
	lastControlValue util.Optional[float64]
	// e[k-1]
	lastErrorTerm util.Optional[float64]
	// e[k-2]
	lastLastErrorTerm util.Optional[float64]
}

var _ servo.Servo = (*PidController)(nil)

// NewPidController creates a PidController with all gains set to zero.
func NewPidController(setPoint float64) *PidController {
	return &PidController{
		setPoint: setPoint,
	}
}

// Read advances the controller by one sample
func (c *PidController) Read(input servo.ServoInput) (servo.ControlValue, error) {
	err := c.setPoint - input.ProcessValue

	deltaT, ok := input.DeltaT.Get()
	if !ok {
		// first sample of a stream, only the proportional term is applied
		output := c.proportional * err
		c.update(output, err)
		return servo.ControlValue{Value: output}, nil
	}

	dt := deltaT.Seconds()
	if dt == 0 {
		return servo.ControlValue{}, servo.NewReadInputError(errZeroDeltaT)
	}

	e1 := c.lastErrorTerm.OrElse(0)
	e2 := c.lastLastErrorTerm.OrElse(0)
	u1 := c.lastControlValue.OrElse(0)

	kp, ki, kd := c.proportional, c.integral, c.derivative
	output := u1 +
		err*(kp+ki*dt+kd/dt) +
		e1*(-kp-2*kd/dt) +
		e2*(kd/dt)

	c.update(output, err)
	return servo.ControlValue{Value: output}, nil
}

// update shifts the error history and remembers the latest output
func (c *PidController) update(output float64, err float64) {
	c.lastControlValue = util.Some(output)
	c.lastLastErrorTerm = c.lastErrorTerm
	c.lastErrorTerm = util.Some(err)
}

func (c *PidController) SetPoint() float64 {
	return c.setPoint
}

func (c *PidController) SetSetPoint(setPoint float64) {
	c.setPoint = setPoint
}

func (c *PidController) ProportionalTerm() float64 {
	return c.proportional
}

func (c *PidController) IntegralTerm() float64 {
	return c.integral
}

func (c *PidController) DerivativeTerm() float64 {
	return c.derivative
}

// SetProportionalTerm changes Kp, effective on the next Read
func (c *PidController) SetProportionalTerm(value float64) {
	c.proportional = value
}

// SetIntegralTerm changes Ki, effective on the next Read
func (c *PidController) SetIntegralTerm(value float64) {
	c.integral = value
}

// SetDerivativeTerm changes Kd, effective on the next Read
func (c *PidController) SetDerivativeTerm(value float64) {
	c.derivative = value
}

// LastControlValue returns the most recent output, if any
func (c *PidController) LastControlValue() util.Optional[float64] {
	return c.lastControlValue
}

func (c *PidController) String() string {
	return fmt.Sprintf("PidController[setPoint=%g, p=%g, i=%g, d=%g]", c.setPoint, c.proportional, c.integral, c.derivative)
}
