package process

// Process is the system under control. It is read by the control loop
// and receives the control output.
type Process interface {
	// Value returns the current process value
	Value() float64
	// Apply applies the given control output and returns the new process value
	Apply(control float64) float64
}

// SimulatedProcess composes the control output additively:
// the next process value is the current value plus the control output
// plus an external disturbance.
type SimulatedProcess struct {
	value float64
	noise NoiseSource
}

func NewSimulatedProcess(initialValue float64, noise NoiseSource) *SimulatedProcess {
	if noise == nil {
		noise = NoNoise{}
	}
	return &SimulatedProcess{
		value: initialValue,
		noise: noise,
	}
}

func (p *SimulatedProcess) Value() float64 {
	return p.value
}

func (p *SimulatedProcess) Apply(control float64) float64 {
	p.value = p.value + control + p.noise.Sample()
	return p.value
}
