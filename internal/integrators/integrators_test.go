package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/chargesim/internal/engine"
)

func single(mass float64) []engine.Particle {
	return []engine.Particle{{Mass: mass, Active: true}}
}

func TestSemiImplicitUsesUpdatedVelocity(t *testing.T) {
	ps := single(2.0)
	forces := []engine.Vec3{{X: 4.0}}

	NewSemiImplicit().Advance(ps, forces, 0.5)

	// v = 0 + (4/2)*0.5 = 1, then x = 0 + 1*0.5 = 0.5.
	if math.Abs(ps[0].Velocity.X-1.0) > 1e-15 {
		t.Errorf("velocity = %g, want 1", ps[0].Velocity.X)
	}
	if math.Abs(ps[0].Position.X-0.5) > 1e-15 {
		t.Errorf("position = %g, want 0.5", ps[0].Position.X)
	}
}

func TestEulerUsesOldVelocity(t *testing.T) {
	ps := single(2.0)
	forces := []engine.Vec3{{X: 4.0}}

	NewEuler().Advance(ps, forces, 0.5)

	// Position moves with the old (zero) velocity, then v updates.
	if ps[0].Position.X != 0 {
		t.Errorf("position = %g, want 0", ps[0].Position.X)
	}
	if math.Abs(ps[0].Velocity.X-1.0) > 1e-15 {
		t.Errorf("velocity = %g, want 1", ps[0].Velocity.X)
	}
}

func TestVelocityVerletExactForConstantForce(t *testing.T) {
	const (
		f, dt = 3.0, 0.1
		steps = 50
	)
	ps := single(1.0)
	forces := []engine.Vec3{{X: f}}

	vv := NewVelocityVerlet()
	for i := 0; i < steps; i++ {
		vv.Advance(ps, forces, dt)
	}

	// Under constant acceleration the positions are exact.
	elapsed := float64(steps) * dt
	want := 0.5 * f * elapsed * elapsed
	if math.Abs(ps[0].Position.X-want) > 1e-10 {
		t.Errorf("position = %g, want %g", ps[0].Position.X, want)
	}
}

func TestVelocityVerletReset(t *testing.T) {
	forces := []engine.Vec3{{X: 1.0}}

	vv := NewVelocityVerlet()
	first := single(1.0)
	vv.Advance(first, forces, 0.1)

	vv.Reset()
	second := single(1.0)
	vv.Advance(second, forces, 0.1)

	// After Reset the next call must behave like the very first step, with
	// no leftover half-kick applied.
	if second[0].Velocity != first[0].Velocity || second[0].Position != first[0].Position {
		t.Errorf("post-reset step %+v differs from first step %+v", second[0], first[0])
	}
}

func TestIntegratorsSkipInactive(t *testing.T) {
	schemes := []struct {
		name string
		in   engine.Integrator
	}{
		{"semi-implicit", NewSemiImplicit()},
		{"euler", NewEuler()},
		{"verlet", NewVelocityVerlet()},
	}
	for _, tc := range schemes {
		ps := []engine.Particle{{
			Mass:     1.0,
			Position: engine.Vec3{X: 7},
			Velocity: engine.Vec3{Y: 2},
			Active:   false,
		}}
		tc.in.Advance(ps, []engine.Vec3{{X: 100}}, 0.1)

		if ps[0].Position != (engine.Vec3{X: 7}) || ps[0].Velocity != (engine.Vec3{Y: 2}) {
			t.Errorf("%s moved an inactive particle: %+v", tc.name, ps[0])
		}
	}
}
