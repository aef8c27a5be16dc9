package engine_test

import (
	"math"
	"testing"

	"github.com/san-kum/chargesim/internal/bounds"
	"github.com/san-kum/chargesim/internal/engine"
	"github.com/san-kum/chargesim/internal/force"
	"github.com/san-kum/chargesim/internal/integrators"
)

func twoBody(t *testing.T, q0, q1 float64) *engine.Simulation {
	t.Helper()
	descs := []engine.Descriptor{
		{Charge: q0, Mass: 1.0, Position: engine.Vec3{X: -1}},
		{Charge: q1, Mass: 1.0, Position: engine.Vec3{X: 1}},
	}
	sim, err := engine.New(descs,
		force.NewCoulomb(1.0, 1e-6),
		integrators.NewSemiImplicit(),
		bounds.NewBox(bounds.DefaultLimit),
		engine.Config{Dt: 0.001},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return sim
}

func TestTwoBodyAttraction(t *testing.T) {
	sim := twoBody(t, +1, -1)
	snap := sim.Step()

	v0 := snap.Particles[0].Velocity
	v1 := snap.Particles[1].Velocity

	// Opposite charges: both accelerate toward the origin along x.
	if v0.X <= 0 {
		t.Errorf("particle 0 should move toward origin, vx=%g", v0.X)
	}
	if v1.X >= 0 {
		t.Errorf("particle 1 should move toward origin, vx=%g", v1.X)
	}
	if v0.Y != 0 || v0.Z != 0 || v1.Y != 0 || v1.Z != 0 {
		t.Error("velocities should stay on the x axis")
	}
	if math.Abs(v0.X+v1.X) > 1e-15 {
		t.Errorf("equal masses should gain equal and opposite speed: %g vs %g", v0.X, v1.X)
	}

	// |F| = k*|q0*q1|/r^2 = 1/4, so |v| after one step is dt/4.
	want := 0.001 / 4
	if math.Abs(v0.X-want) > 1e-12 {
		t.Errorf("expected speed %g, got %g", want, v0.X)
	}
}

func TestTwoBodyRepulsion(t *testing.T) {
	sim := twoBody(t, +1, +1)
	snap := sim.Step()

	v0 := snap.Particles[0].Velocity
	v1 := snap.Particles[1].Velocity

	if v0.X >= 0 {
		t.Errorf("particle 0 should move away from origin, vx=%g", v0.X)
	}
	if v1.X <= 0 {
		t.Errorf("particle 1 should move away from origin, vx=%g", v1.X)
	}
}

func TestMomentumConservation(t *testing.T) {
	// Asymmetric three-body system, everything comfortably in bounds.
	descs := []engine.Descriptor{
		{Charge: +2e-6, Mass: 0.5, Position: engine.Vec3{X: -1, Y: 0.3}},
		{Charge: -1e-6, Mass: 1.5, Position: engine.Vec3{X: 1, Z: -0.2}, Velocity: engine.Vec3{Y: 0.4}},
		{Charge: +1e-6, Mass: 2.0, Position: engine.Vec3{Y: 1.2}, Velocity: engine.Vec3{X: -0.1}},
	}
	sim, err := engine.New(descs,
		force.NewCoulomb(force.DefaultK, force.DefaultMinDistance),
		integrators.NewSemiImplicit(),
		bounds.NewBox(bounds.DefaultLimit),
		engine.Config{Dt: 0.0001},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	momentum := func(snap *engine.Snapshot) engine.Vec3 {
		total := engine.Vec3{}
		for _, p := range snap.Particles {
			total = total.Add(p.Velocity.Scale(p.Mass))
		}
		return total
	}

	initial := momentum(sim.Snapshot())
	var snap *engine.Snapshot
	for i := 0; i < 500; i++ {
		snap = sim.Step()
	}
	if snap.ActiveCount() != 3 {
		t.Fatal("system should stay closed for this test")
	}

	drift := momentum(snap).Sub(initial).Norm()
	if drift > 1e-9 {
		t.Errorf("momentum drift too large: %g", drift)
	}
}

func TestResetClearsIntegratorState(t *testing.T) {
	build := func() *engine.Simulation {
		sim, err := engine.New(
			[]engine.Descriptor{
				{Charge: +1, Mass: 1, Position: engine.Vec3{X: -1}},
				{Charge: -1, Mass: 1, Position: engine.Vec3{X: 1}},
			},
			force.NewCoulomb(1.0, 1e-6),
			integrators.NewVelocityVerlet(),
			bounds.NewBox(bounds.DefaultLimit),
			engine.Config{Dt: 0.001},
		)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		return sim
	}

	fresh := build()
	freshSnap := fresh.Step()

	reused := build()
	reused.Step()
	reused.Reset()
	reusedSnap := reused.Step()

	// Verlet defers half of each velocity update to the next call; a reset
	// must drop that pending half-kick so the first post-reset step matches
	// a fresh simulation exactly.
	for i := range freshSnap.Particles {
		if freshSnap.Particles[i].Velocity != reusedSnap.Particles[i].Velocity {
			t.Errorf("particle %d: post-reset velocity %v, fresh %v",
				i, reusedSnap.Particles[i].Velocity, freshSnap.Particles[i].Velocity)
		}
	}
}

func TestInactiveParticleExertsNoForce(t *testing.T) {
	// Particle 2 starts outside the box, so it deactivates on the first
	// step. From then on particles 0 and 1 must behave as a pure two-body
	// system.
	base := []engine.Descriptor{
		{Charge: +1, Mass: 1, Position: engine.Vec3{X: -1}},
		{Charge: -1, Mass: 1, Position: engine.Vec3{X: 1}},
	}
	withGhost := append([]engine.Descriptor{}, base...)
	withGhost = append(withGhost, engine.Descriptor{
		Charge: +5, Mass: 1, Position: engine.Vec3{X: 50},
	})

	build := func(descs []engine.Descriptor) *engine.Simulation {
		sim, err := engine.New(descs,
			force.NewCoulomb(1.0, 1e-6),
			integrators.NewSemiImplicit(),
			bounds.NewBox(10),
			engine.Config{Dt: 0.001},
		)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		return sim
	}

	pure := build(base)
	ghosted := build(withGhost)

	// First step: the ghost is still active and perturbs the pair, then
	// leaves the computation. Let both runs do one step, re-sync the pair
	// state, and compare evolution afterward.
	pure.Step()
	g := ghosted.Step()
	if g.Particles[2].Active {
		t.Fatal("ghost particle should be out of bounds")
	}

	pure.Reset()
	ghosted.Reset()
	// After reset the ghost deactivates again on step one with negligible
	// pair distortion at dt=0.001; compare several further steps.
	var ps, gs *engine.Snapshot
	for i := 0; i < 50; i++ {
		ps = pure.Step()
		gs = ghosted.Step()
	}

	for i := 0; i < 2; i++ {
		// The ghost only influenced the first step before deactivating;
		// any ongoing force contribution would compound well above this
		// tolerance over 50 steps.
		diff := ps.Particles[i].Position.Sub(gs.Particles[i].Position).Norm()
		if diff > 1e-3 {
			t.Errorf("particle %d diverged by %g; inactive particle still exerting force?", i, diff)
		}
	}
}
