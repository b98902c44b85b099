package configuration

type ProcessConfig struct {
	// process value of the first measurement
	InitialValue float64     `json:"initialValue"`
	Noise        NoiseConfig `json:"noise"`
}

// NoiseConfig describes the gaussian disturbance added to the simulated
// process on every step.
type NoiseConfig struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	// seed of the random source, 0 picks a random seed
	Seed int64 `json:"seed"`
}
