package engine

// Recording accumulates per-step particle positions for later storage,
// plotting, or export. One row per step, one column per particle.
type Recording struct {
	Times     []float64
	Positions [][]Vec3
	Active    [][]bool
}

// Recorder is an Observer that appends every completed step to a Recording.
type Recorder struct {
	rec Recording
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnStep(snap *Snapshot) {
	pos := make([]Vec3, len(snap.Particles))
	act := make([]bool, len(snap.Particles))
	for i := range snap.Particles {
		pos[i] = snap.Particles[i].Position
		act[i] = snap.Particles[i].Active
	}
	r.rec.Times = append(r.rec.Times, snap.Time)
	r.rec.Positions = append(r.rec.Positions, pos)
	r.rec.Active = append(r.rec.Active, act)
}

func (r *Recorder) Recording() *Recording {
	return &r.rec
}
