package engine

import (
	"testing"
	"time"

	"github.com/markusressel/servo2go/internal/pid"
	"github.com/markusressel/servo2go/internal/servo"
	"github.com/markusressel/servo2go/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServo remembers every input it was invoked with
type recordingServo struct {
	inputs []servo.ServoInput
	err    error
}

func (s *recordingServo) Read(input servo.ServoInput) (servo.ControlValue, error) {
	s.inputs = append(s.inputs, input)
	if s.err != nil {
		return servo.ControlValue{}, s.err
	}
	return servo.ControlValue{Value: 0.0}, nil
}

func (s *recordingServo) String() string {
	return "recording"
}

func TestNewEngine(t *testing.T) {
	// WHEN
	engine := NewEngine(&recordingServo{})

	// THEN
	assert.False(t, engine.LastReadTimestamp().IsPresent())
	assert.Equal(t, uint64(0), engine.NumReads())
}

func TestEngine_Next(t *testing.T) {
	// GIVEN
	s := &recordingServo{}
	engine := NewEngine(s)
	measurement := NewMeasurement()
	now := time.Now()
	measurement.SetValue(100.0, now)

	// WHEN
	_, err := engine.Next(measurement)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, uint64(1), engine.NumReads())
	assert.Equal(t, util.Some(now), engine.LastReadTimestamp())
	require.Len(t, s.inputs, 1)
	assert.Equal(t, 100.0, s.inputs[0].ProcessValue)
	assert.False(t, s.inputs[0].DeltaT.IsPresent())
}

func TestEngine_Next_DerivesDeltaT(t *testing.T) {
	// GIVEN
	s := &recordingServo{}
	engine := NewEngine(s)
	measurement := NewMeasurement()
	start := time.Now()

	// WHEN
	measurement.SetValue(1.0, start)
	_, _ = engine.Next(measurement)
	measurement.SetValue(2.0, start.Add(250*time.Millisecond))
	_, _ = engine.Next(measurement)
	measurement.SetValue(3.0, start.Add(1*time.Second))
	_, _ = engine.Next(measurement)

	// THEN
	require.Len(t, s.inputs, 3)
	assert.False(t, s.inputs[0].DeltaT.IsPresent())
	assert.Equal(t, util.Some(250*time.Millisecond), s.inputs[1].DeltaT)
	assert.Equal(t, util.Some(750*time.Millisecond), s.inputs[2].DeltaT)
	assert.Equal(t, 3.0, s.inputs[2].ProcessValue)
}

func TestEngine_NextAndReset(t *testing.T) {
	// GIVEN
	engine := NewEngine(&recordingServo{})
	measurement := NewMeasurement()
	previousTimestamp := time.Now()
	measurement.SetValue(1.1, previousTimestamp)

	for i := 0; i < 5; i++ {
		// WHEN
		_, _ = engine.Next(measurement)

		// THEN
		assert.Equal(t, util.Some(previousTimestamp), engine.LastReadTimestamp())

		previousTimestamp = previousTimestamp.Add(time.Millisecond)
		measurement.SetValue(1.0, previousTimestamp)
	}
	assert.Equal(t, uint64(5), engine.NumReads())

	// WHEN
	engine.Reset()

	// THEN
	assert.Equal(t, uint64(0), engine.NumReads())
	assert.False(t, engine.LastReadTimestamp().IsPresent())
}

func TestEngine_Next_MissingTimestamp(t *testing.T) {
	// GIVEN
	s := &recordingServo{}
	engine := NewEngine(s)
	measurement := NewMeasurement()
	measurement.Value = 1.0

	// WHEN
	_, err := engine.Next(measurement)

	// THEN
	assert.EqualError(t, err, "Measurement needs a timestamp")
	assert.ErrorIs(t, err, servo.ErrInvalidInput)
	assert.Equal(t, uint64(0), engine.NumReads())
	assert.False(t, engine.LastReadTimestamp().IsPresent())
	assert.Empty(t, s.inputs)
}

func TestEngine_Next_OlderMeasurement(t *testing.T) {
	// GIVEN
	s := &recordingServo{}
	engine := NewEngine(s)

	older := time.Now()
	newer := older.Add(1 * time.Second)
	engine.lastReadTimestamp = util.Some(newer)

	measurement := NewMeasurement()
	measurement.SetValue(1.0, older)

	// WHEN
	_, err := engine.Next(measurement)

	// THEN
	assert.EqualError(t, err, "Failed to execute engine on new measurement that is older than the previous measurement.")
	assert.ErrorIs(t, err, servo.ErrInvalidInput)
	assert.Equal(t, uint64(0), engine.NumReads())
	assert.Equal(t, util.Some(newer), engine.LastReadTimestamp())
	assert.Empty(t, s.inputs)
}

func TestEngine_Next_EqualTimestamp(t *testing.T) {
	// GIVEN
	engine := NewEngine(&recordingServo{})
	measurement := NewMeasurement()
	measurement.SetValue(1.0, time.Now())
	_, err := engine.Next(measurement)
	require.NoError(t, err)

	// WHEN
	_, err = engine.Next(measurement)

	// THEN
	assert.EqualError(t, err, "Failed to execute engine on new measurement that is older than the previous measurement.")
	assert.Equal(t, uint64(1), engine.NumReads())
}

func TestEngine_Next_ServoErrorCountsAsRead(t *testing.T) {
	// GIVEN
	servoErr := servo.NewReadInputError("servo failed")
	engine := NewEngine(&recordingServo{err: servoErr})
	measurement := NewMeasurement()
	now := time.Now()
	measurement.SetValue(1.0, now)

	// WHEN
	_, err := engine.Next(measurement)

	// THEN
	assert.Same(t, servoErr, err)
	assert.Equal(t, uint64(1), engine.NumReads())
	assert.Equal(t, util.Some(now), engine.LastReadTimestamp())
}

func TestEngine_Reset_RestartsMonotonicRun(t *testing.T) {
	// GIVEN
	s := &recordingServo{}
	engine := NewEngine(s)
	measurement := NewMeasurement()
	now := time.Now()
	measurement.SetValue(1.0, now)
	_, _ = engine.Next(measurement)

	// WHEN
	engine.Reset()
	measurement.SetValue(2.0, now.Add(-time.Hour))
	_, err := engine.Next(measurement)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, uint64(1), engine.NumReads())
	require.Len(t, s.inputs, 2)
	assert.False(t, s.inputs[1].DeltaT.IsPresent())
}

func TestEngine_WithPidController(t *testing.T) {
	// GIVEN
	controller := pid.NewBuilder().SetPoint(15).Proportional(10).Build()
	engine := NewEngine(controller)
	measurement := NewMeasurement()
	start := time.Now()

	// WHEN
	measurement.SetValue(10, start)
	result, err := engine.Next(measurement)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Value)

	// WHEN
	controller.SetIntegralTerm(1)
	measurement.SetValue(10, start.Add(time.Second))
	result, err = engine.Next(measurement)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 55.0, result.Value)

	// WHEN
	controller.SetDerivativeTerm(2)
	measurement.SetValue(15, start.Add(2*time.Second))
	result, err = engine.Next(measurement)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, -5.0, result.Value)
	assert.Equal(t, uint64(3), engine.NumReads())
}

func TestEngine_Reset_KeepsPidHistory(t *testing.T) {
	// GIVEN
	controller := pid.NewBuilder().SetPoint(15).Proportional(10).Integral(1).Build()
	engine := NewEngine(controller)
	measurement := NewMeasurement()
	start := time.Now()
	measurement.SetValue(10, start)
	_, _ = engine.Next(measurement)

	// WHEN
	engine.Reset()

	// THEN
	assert.Equal(t, util.Some(50.0), controller.LastControlValue())
	assert.Equal(t, 10.0, controller.ProportionalTerm())
	assert.Equal(t, 1.0, controller.IntegralTerm())
	assert.Equal(t, 15.0, controller.SetPoint())
}

func TestEngine_String(t *testing.T) {
	// GIVEN
	engine := NewEngine(&recordingServo{})
	measurement := NewMeasurement()
	measurement.SetValue(1, time.Now())
	_, _ = engine.Next(measurement)

	// THEN
	assert.Equal(t, "Engine runner [recording] has 1 total read(s)", engine.String())
}
