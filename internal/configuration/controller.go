package configuration

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

type ControllerType string

const (
	PidControllerType      ControllerType = "pid"
	DirectControllerType   ControllerType = "direct"
	BangBangControllerType ControllerType = "bangbang"
)

type ControllerConfig struct {
	Type     ControllerType  `json:"type"`
	SetPoint float64         `json:"setPoint"`
	PID      *PidConfig      `json:"pid,omitempty"`
	Direct   *DirectConfig   `json:"direct,omitempty"`
	BangBang *BangBangConfig `json:"bangBang,omitempty"`
}

// PidConfig holds the gains of a pid controller, a gain that is
// omitted defaults to zero.
type PidConfig struct {
	P *float64 `json:"p,omitempty"`
	I *float64 `json:"i,omitempty"`
	D *float64 `json:"d,omitempty"`
}

type DirectConfig struct {
	// limits the output per second of elapsed time, nil disables the limit
	MaxChangePerSecond *float64 `json:"maxChangePerSecond,omitempty"`
}

type BangBangConfig struct {
	Low        float64 `json:"low"`
	High       float64 `json:"high"`
	Hysteresis float64 `json:"hysteresis"`
}

// controllerTypeHookFunc returns a mapstructure decode hook that accepts
// controller types regardless of case and surrounding whitespace, e.g.
// "BangBang" or " PID ".
func controllerTypeHookFunc() mapstructure.DecodeHookFuncType {
	controllerTypeType := reflect.TypeOf(ControllerType(""))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != controllerTypeType {
			return data, nil
		}
		if value, ok := data.(string); ok {
			return ControllerType(strings.ToLower(strings.TrimSpace(value))), nil
		}
		return data, nil
	}
}
