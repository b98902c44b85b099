package process

import (
	"math/rand"
	"time"
)

// NoiseSource produces the external disturbance of a simulated process
type NoiseSource interface {
	Sample() float64
}

// NoNoise is a NoiseSource without any disturbance
type NoNoise struct{}

func (NoNoise) Sample() float64 {
	return 0
}

// GaussianNoise samples a normal distribution with the given mean and
// standard deviation
type GaussianNoise struct {
	mean   float64
	stdDev float64
	rng    *rand.Rand
}

// NewGaussianNoise creates a GaussianNoise source. A seed of 0 picks a
// time based seed.
func NewGaussianNoise(mean, stdDev float64, seed int64) *GaussianNoise {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &GaussianNoise{
		mean:   mean,
		stdDev: stdDev,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (n *GaussianNoise) Sample() float64 {
	return n.rng.NormFloat64()*n.stdDev + n.mean
}
