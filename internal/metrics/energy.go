package metrics

import "github.com/san-kum/chargesim/internal/engine"

// Energy tracks the total mechanical energy of the active particles:
// kinetic plus Coulomb potential, with the same distance floor the force
// model uses.
type Energy struct {
	K           float64
	MinDistance float64
	latest      float64
}

func NewEnergy(k, minDistance float64) *Energy {
	return &Energy{K: k, MinDistance: minDistance}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(snap *engine.Snapshot) {
	e.latest = e.total(snap)
}

func (e *Energy) Value() float64 { return e.latest }

func (e *Energy) Reset() { e.latest = 0 }

func (e *Energy) total(snap *engine.Snapshot) float64 {
	ke := 0.0
	pe := 0.0
	ps := snap.Particles

	for i := range ps {
		if !ps[i].Active {
			continue
		}
		ke += 0.5 * ps[i].Mass * ps[i].Velocity.NormSq()

		for j := i + 1; j < len(ps); j++ {
			if !ps[j].Active {
				continue
			}
			dist := ps[i].Position.Sub(ps[j].Position).Norm()
			if dist < e.MinDistance {
				dist = e.MinDistance
			}
			pe += e.K * ps[i].Charge * ps[j].Charge / dist
		}
	}

	return ke + pe
}
