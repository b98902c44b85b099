package configuration

import (
	"fmt"
	"strings"

	"github.com/markusressel/servo2go/internal/ui"
	"golang.org/x/exp/slices"
)

var supportedControllerTypes = []ControllerType{
	PidControllerType,
	DirectControllerType,
	BangBangControllerType,
}

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	err := validateController(&config.Controller)
	if err != nil {
		return err
	}
	err = validateLoop(&config.Loop)
	if err != nil {
		return err
	}
	return validateProcess(&config.Process)
}

func validateController(config *ControllerConfig) error {
	if !slices.Contains(supportedControllerTypes, config.Type) {
		var options []string
		for _, t := range supportedControllerTypes {
			options = append(options, string(t))
		}
		return fmt.Errorf("controller: unsupported type '%s', use one of: %s", config.Type, strings.Join(options, " | "))
	}

	switch config.Type {
	case PidControllerType:
		pidConfig := config.PID
		if pidConfig == nil || (isZero(pidConfig.P) && isZero(pidConfig.I) && isZero(pidConfig.D)) {
			ui.Warning("controller: all PID constants are zero, the output will always be zero")
		}
	case DirectControllerType:
		if config.Direct != nil && config.Direct.MaxChangePerSecond != nil && *config.Direct.MaxChangePerSecond <= 0 {
			return fmt.Errorf("controller: maxChangePerSecond must be > 0, was %g", *config.Direct.MaxChangePerSecond)
		}
	case BangBangControllerType:
		bangBangConfig := config.BangBang
		if bangBangConfig == nil {
			return fmt.Errorf("controller: missing bangBang configuration")
		}
		if bangBangConfig.Low > bangBangConfig.High {
			return fmt.Errorf("controller: bangBang low (%g) must not be greater than high (%g)", bangBangConfig.Low, bangBangConfig.High)
		}
		if bangBangConfig.Hysteresis < 0 {
			return fmt.Errorf("controller: bangBang hysteresis must be >= 0, was %g", bangBangConfig.Hysteresis)
		}
	}

	return nil
}

func validateLoop(config *LoopConfig) error {
	if config.Interval <= 0 {
		return fmt.Errorf("loop: interval must be > 0, was %s", config.Interval)
	}
	if config.Iterations < 0 {
		return fmt.Errorf("loop: iterations must be >= 0, was %d", config.Iterations)
	}
	if config.RollingWindowSize < 1 {
		return fmt.Errorf("loop: rollingWindowSize must be >= 1, was %d", config.RollingWindowSize)
	}
	return nil
}

func validateProcess(config *ProcessConfig) error {
	if config.Noise.StdDev < 0 {
		return fmt.Errorf("process: noise stdDev must be >= 0, was %g", config.Noise.StdDev)
	}
	return nil
}

func isZero(value *float64) bool {
	return value == nil || *value == 0
}
