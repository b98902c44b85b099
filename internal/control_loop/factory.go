package control_loop

import (
	"fmt"

	"github.com/markusressel/servo2go/internal/configuration"
	"github.com/markusressel/servo2go/internal/pid"
	"github.com/markusressel/servo2go/internal/servo"
)

// NewServo creates the control law described by the given configuration
func NewServo(config configuration.ControllerConfig) (servo.Servo, error) {
	switch config.Type {
	case configuration.PidControllerType:
		builder := pid.NewBuilder().SetPoint(config.SetPoint)
		if pidConfig := config.PID; pidConfig != nil {
			if pidConfig.P != nil {
				builder.Proportional(*pidConfig.P)
			}
			if pidConfig.I != nil {
				builder.Integral(*pidConfig.I)
			}
			if pidConfig.D != nil {
				builder.Derivative(*pidConfig.D)
			}
		}
		return builder.Build(), nil
	case configuration.DirectControllerType:
		var maxChangePerSecond *float64
		if config.Direct != nil {
			maxChangePerSecond = config.Direct.MaxChangePerSecond
		}
		return servo.NewDirectServo(config.SetPoint, maxChangePerSecond), nil
	case configuration.BangBangControllerType:
		if config.BangBang == nil {
			return nil, fmt.Errorf("missing bangBang configuration")
		}
		c := config.BangBang
		return servo.NewBangBangServo(config.SetPoint, c.Low, c.High, c.Hysteresis), nil
	}

	return nil, fmt.Errorf("no matching controller type: %s", config.Type)
}
