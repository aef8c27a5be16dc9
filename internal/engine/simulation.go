package engine

import "fmt"

// DefaultDt is the initial time step when none is configured.
const DefaultDt = 0.005

// ForceModel computes the net force on every particle into out, indexed by
// particle. Inactive particles receive and contribute nothing. It must not
// mutate particle state.
type ForceModel interface {
	Compute(particles []Particle, out []Vec3)
}

// Integrator advances position and velocity of active particles in place,
// given the net force per particle and the time step. It must not touch
// Active or Trajectory.
type Integrator interface {
	Advance(particles []Particle, forces []Vec3, dt float64)
}

// Volume is the region a particle must stay inside to remain active.
type Volume interface {
	Contains(p Vec3) bool
}

// Observer is notified after each completed step with the fresh snapshot.
type Observer interface {
	OnStep(snap *Snapshot)
}

// Config carries the simulation-wide parameters owned by Simulation.
type Config struct {
	Dt       float64
	MaxTrail int // trajectory cap per particle; 0 means unbounded
}

// Simulation owns the particle set and drives one tick at a time. It is a
// pure state machine: no internal timer, no goroutines, and it is not safe
// for concurrent use. The host loop owns the stepping cadence.
type Simulation struct {
	force      ForceModel
	integrator Integrator
	volume     Volume
	observers  []Observer

	initial   []Descriptor
	particles []Particle
	forces    []Vec3

	dt       float64
	maxTrail int
	running  bool
	steps    int
	time     float64
}

// New validates the descriptors and constructs a running simulation.
// Malformed particle data fails fast with an error wrapping
// ErrInvalidParticle.
func New(descs []Descriptor, force ForceModel, integ Integrator, vol Volume, cfg Config) (*Simulation, error) {
	if len(descs) == 0 {
		return nil, fmt.Errorf("empty particle list: %w", ErrInvalidParticle)
	}
	if cfg.Dt <= 0 || !isFinite(cfg.Dt) {
		return nil, fmt.Errorf("dt %v: %w", cfg.Dt, ErrInvalidParameter)
	}

	particles, err := buildParticles(descs)
	if err != nil {
		return nil, err
	}

	initial := make([]Descriptor, len(descs))
	copy(initial, descs)

	return &Simulation{
		force:      force,
		integrator: integ,
		volume:     vol,
		initial:    initial,
		particles:  particles,
		forces:     make([]Vec3, len(particles)),
		dt:         cfg.Dt,
		maxTrail:   cfg.MaxTrail,
		running:    true,
	}, nil
}

// AddObserver registers an observer for completed steps.
func (s *Simulation) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Step runs one tick: force computation, integration, bounds check, and
// trajectory append for every still-active particle. It always runs to
// completion and returns the resulting snapshot.
func (s *Simulation) Step() *Snapshot {
	s.force.Compute(s.particles, s.forces)
	s.integrator.Advance(s.particles, s.forces, s.dt)

	for i := range s.particles {
		p := &s.particles[i]
		if p.Active && !s.volume.Contains(p.Position) {
			p.Active = false
		}
	}

	for i := range s.particles {
		p := &s.particles[i]
		if !p.Active {
			continue
		}
		p.Trajectory = append(p.Trajectory, p.Position)
		if s.maxTrail > 0 && len(p.Trajectory) > s.maxTrail {
			copy(p.Trajectory, p.Trajectory[len(p.Trajectory)-s.maxTrail:])
			p.Trajectory = p.Trajectory[:s.maxTrail]
		}
	}

	s.steps++
	s.time += s.dt

	snap := s.Snapshot()
	for _, o := range s.observers {
		o.OnStep(snap)
	}
	return snap
}

// SetDt updates the global time step. Non-positive or non-finite values are
// rejected with an error wrapping ErrInvalidParameter and the previous dt
// is kept.
func (s *Simulation) SetDt(dt float64) error {
	if dt <= 0 || !isFinite(dt) {
		return fmt.Errorf("dt %v: %w", dt, ErrInvalidParameter)
	}
	s.dt = dt
	return nil
}

func (s *Simulation) Dt() float64 { return s.dt }

// Pause and Resume toggle the running flag. The flag is advisory: the
// driving loop checks Running before calling Step.
func (s *Simulation) Pause()  { s.running = false }
func (s *Simulation) Resume() { s.running = true }

func (s *Simulation) Running() bool { return s.running }

// Steps reports how many ticks have completed since construction or the
// last Reset.
func (s *Simulation) Steps() int { return s.steps }

// Time reports elapsed simulation time.
func (s *Simulation) Time() float64 { return s.time }

// Reset rebuilds the particle set from the original descriptors, clears all
// trajectories and counters, and returns to the running state. The initial
// list was validated at construction, so Reset cannot fail.
func (s *Simulation) Reset() {
	particles, err := buildParticles(s.initial)
	if err != nil {
		// Unreachable: descriptors were validated in New.
		panic(err)
	}
	s.particles = particles
	s.forces = make([]Vec3, len(particles))
	s.steps = 0
	s.time = 0
	s.running = true

	if r, ok := s.integrator.(interface{ Reset() }); ok {
		r.Reset()
	}
}
