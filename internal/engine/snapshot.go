package engine

// ParticleView is the per-particle slice of a snapshot. Trail shares storage
// with the live trajectory: index order is time order, the last entry is the
// most recent position. Views are valid until the next Step; the rendering
// layer must not mutate them.
type ParticleView struct {
	Charge   float64
	Mass     float64
	Position Vec3
	Velocity Vec3
	Active   bool
	Size     float64
	Trail    []Vec3
}

// Snapshot is the per-step output handed to the rendering layer.
type Snapshot struct {
	Time      float64
	Step      int
	Particles []ParticleView
}

// Snapshot captures the current particle state without advancing it.
func (s *Simulation) Snapshot() *Snapshot {
	views := make([]ParticleView, len(s.particles))
	for i := range s.particles {
		p := &s.particles[i]
		views[i] = ParticleView{
			Charge:   p.Charge,
			Mass:     p.Mass,
			Position: p.Position,
			Velocity: p.Velocity,
			Active:   p.Active,
			Size:     p.Size,
			Trail:    p.Trajectory,
		}
	}
	return &Snapshot{Time: s.time, Step: s.steps, Particles: views}
}

// ActiveCount reports how many particles in the snapshot are still active.
func (snap *Snapshot) ActiveCount() int {
	n := 0
	for i := range snap.Particles {
		if snap.Particles[i].Active {
			n++
		}
	}
	return n
}
