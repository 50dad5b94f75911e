package ui

import "math/rand/v2"

const ParticleCount = 50

// Particle parameters. X is a percentage of the hero width; Delay and
// Duration are seconds; Size is px.
type Particle struct {
	ID       int
	X        float64
	Delay    float64
	Duration float64
	Size     float64
}

// GenerateParticles draws n particles from rng. The same seed gives the
// same particles.
func GenerateParticles(rng *rand.Rand, n int) []Particle {
	if n <= 0 {
		return nil
	}
	out := make([]Particle, n)
	for i := range out {
		out[i] = Particle{
			ID:       i,
			X:        rng.Float64() * 100,
			Delay:    rng.Float64() * 15,
			Duration: 10 + rng.Float64()*20,
			Size:     1 + rng.Float64()*3,
		}
	}
	return out
}
