package integrators

import "github.com/san-kum/chargesim/internal/engine"

// VelocityVerlet completes each velocity update with the average of the
// accelerations at the old and new positions. Because the force at the new
// position only arrives on the next Advance call, the second half-kick is
// deferred: between steps the stored velocity carries half of the pending
// update. Position accuracy is second order.
type VelocityVerlet struct {
	primed bool
}

func NewVelocityVerlet() *VelocityVerlet {
	return &VelocityVerlet{}
}

func (v *VelocityVerlet) Advance(particles []engine.Particle, forces []engine.Vec3, dt float64) {
	halfDt := 0.5 * dt

	if v.primed {
		for i := range particles {
			p := &particles[i]
			if !p.Active {
				continue
			}
			p.Velocity = p.Velocity.Add(forces[i].Scale(halfDt / p.Mass))
		}
	}
	v.primed = true

	for i := range particles {
		p := &particles[i]
		if !p.Active {
			continue
		}
		acc := forces[i].Scale(1 / p.Mass)
		p.Position = p.Position.Add(p.Velocity.Scale(dt)).Add(acc.Scale(halfDt * dt))
		p.Velocity = p.Velocity.Add(acc.Scale(halfDt))
	}
}

// Reset clears the pending half-kick, for reuse after a simulation reset.
func (v *VelocityVerlet) Reset() {
	v.primed = false
}
