package force

import (
	"github.com/san-kum/chargesim/internal/engine"
)

const (
	// DefaultK is Coulomb's constant in SI units.
	DefaultK = 8.988e9

	// DefaultMinDistance is the floor on the effective pair separation.
	// Below it the force magnitude is computed as if the particles were
	// MinDistance apart, which keeps the pairwise term finite as the real
	// separation goes to zero.
	DefaultMinDistance = 1e-14
)

// Coulomb computes pairwise electrostatic forces over the active particles:
// F_i = k * sum_j q_i*q_j / r_ij^2 directed along the line from j to i.
// Each pair is evaluated once and applied symmetrically, so the force on i
// due to j is exactly the negation of the force on j due to i.
type Coulomb struct {
	K           float64
	MinDistance float64
}

func NewCoulomb(k, minDistance float64) *Coulomb {
	return &Coulomb{K: k, MinDistance: minDistance}
}

func (c *Coulomb) Compute(particles []engine.Particle, out []engine.Vec3) {
	for i := range out {
		out[i] = engine.Vec3{}
	}

	n := len(particles)
	for i := 0; i < n; i++ {
		if !particles[i].Active {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !particles[j].Active {
				continue
			}
			f := c.pair(&particles[i], &particles[j])
			out[i] = out[i].Add(f)
			out[j] = out[j].Sub(f)
		}
	}
}

// pair returns the force on a due to b.
func (c *Coulomb) pair(a, b *engine.Particle) engine.Vec3 {
	r := a.Position.Sub(b.Position)
	dist := r.Norm()
	if dist < c.MinDistance {
		dist = c.MinDistance
	}
	mag := c.K * a.Charge * b.Charge / (dist * dist * dist)
	return r.Scale(mag)
}
