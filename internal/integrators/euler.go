package integrators

import "github.com/san-kum/chargesim/internal/engine"

// SemiImplicit is symplectic Euler: the velocity update happens first and
// the position update uses the new velocity. This is the default scheme; it
// matches the original simulator's update order and keeps orbital
// configurations from gaining energy the way plain Euler does.
type SemiImplicit struct{}

func NewSemiImplicit() *SemiImplicit {
	return &SemiImplicit{}
}

func (si *SemiImplicit) Advance(particles []engine.Particle, forces []engine.Vec3, dt float64) {
	for i := range particles {
		p := &particles[i]
		if !p.Active {
			continue
		}
		p.Velocity = p.Velocity.Add(forces[i].Scale(dt / p.Mass))
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
	}
}

// Euler is the plain explicit scheme: position advances with the old
// velocity. Kept for side-by-side comparison; it drifts on orbits.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Advance(particles []engine.Particle, forces []engine.Vec3, dt float64) {
	for i := range particles {
		p := &particles[i]
		if !p.Active {
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.Velocity = p.Velocity.Add(forces[i].Scale(dt / p.Mass))
	}
}
