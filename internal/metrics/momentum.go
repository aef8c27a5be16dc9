package metrics

import "github.com/san-kum/chargesim/internal/engine"

// MomentumDrift tracks the worst deviation of total momentum from its value
// at the first observed step. For a closed system with symmetric forces the
// drift stays at floating-point noise; deactivation of escaping particles
// shows up here as a jump.
type MomentumDrift struct {
	initial  engine.Vec3
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(snap *engine.Snapshot) {
	total := engine.Vec3{}
	for i := range snap.Particles {
		p := &snap.Particles[i]
		if p.Active {
			total = total.Add(p.Velocity.Scale(p.Mass))
		}
	}

	if m.samples == 0 {
		m.initial = total
	}
	m.samples++

	drift := total.Sub(m.initial).Norm()
	if drift > m.maxDrift {
		m.maxDrift = drift
	}
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = engine.Vec3{}
	m.maxDrift = 0
	m.samples = 0
}
