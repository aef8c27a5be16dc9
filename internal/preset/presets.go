// Package preset holds the built-in initial configurations. Each preset is
// a pure data producer: it returns the ordered particle descriptor list and
// knows nothing about how the engine or the UI consume it.
package preset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/chargesim/internal/engine"
)

// Generator produces the initial particle list for one named
// configuration. The seed only matters for randomized presets.
type Generator func(seed int64) []engine.Descriptor

var catalog = map[string]Generator{
	"orbital":  orbital,
	"dipole":   dipole,
	"ring":     ring,
	"ellipse":  ellipse,
	"spiral":   spiral,
	"scatter":  scatter,
	"binary":   binary,
	"circular": circular,
}

// names keeps the menu order stable.
var names = []string{"orbital", "dipole", "ring", "ellipse", "spiral", "scatter", "binary", "circular"}

func List() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func Load(name string, seed int64) ([]engine.Descriptor, error) {
	gen, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, names)
	}
	return gen(seed), nil
}

func particle(x, y, z, vx, vy, vz, q, m float64) engine.Descriptor {
	return engine.Descriptor{
		Charge:   q,
		Mass:     m,
		Position: engine.Vec3{X: x, Y: y, Z: z},
		Velocity: engine.Vec3{X: vx, Y: vy, Z: vz},
	}
}

// heavyCenter is the positive anchor shared by the satellite presets.
func heavyCenter() engine.Descriptor {
	return particle(5, 5, 5, 0, 0, 0, +8e-6, 5e-2)
}

func orbital(int64) []engine.Descriptor {
	return []engine.Descriptor{
		heavyCenter(),
		particle(7.0, 5.0, 5.0, 0, 40, 0, -2e-6, 1e-3),
		particle(3.0, 5.0, 5.0, 0, -40, 0, -2e-6, 1e-3),
		particle(7.5, 7.5, 5.0, -4.242, 4.242, 0, -3e-6, 3e-3),
		particle(2.5, 7.5, 5.0, -4.242, -4.242, 0, -3e-6, 3e-3),
		particle(2.5, 2.5, 5.0, 4.242, -4.242, 0, -3e-6, 3e-3),
		particle(7.5, 2.5, 5.0, 4.242, 4.242, 0, -3e-6, 3e-3),
		particle(7.0, 5.0, 7.0, 4.242, 0, -4.242, +4e-6, 4e-3),
		particle(3.0, 5.0, 3.0, -4.242, 0, 4.242, +4e-6, 4e-3),
	}
}

func dipole(int64) []engine.Descriptor {
	return []engine.Descriptor{
		particle(4, 5, 5, 0, 0, 0, +5e-6, 1e-2),
		particle(6, 5, 5, 0, 0, 0, -5e-6, 1e-2),
	}
}

func ring(int64) []engine.Descriptor {
	descs := []engine.Descriptor{heavyCenter()}
	for i := 0; i < 8; i++ {
		theta := 2 * math.Pi * float64(i) / 8
		descs = append(descs, particle(
			5+3*math.Cos(theta), 5+3*math.Sin(theta), 5,
			0, 0, 0,
			-1e-6, 1e-3,
		))
	}
	return descs
}

func ellipse(int64) []engine.Descriptor {
	descs := []engine.Descriptor{heavyCenter()}
	for i := 0; i < 12; i++ {
		theta := 2 * math.Pi * float64(i) / 12
		descs = append(descs, particle(
			5+5*math.Cos(theta), 5+3*math.Sin(theta), 5,
			-3*math.Sin(theta), 2*math.Cos(theta), 0,
			-1e-6, 1e-3,
		))
	}
	return descs
}

func spiral(int64) []engine.Descriptor {
	descs := []engine.Descriptor{heavyCenter()}
	for i := 0; i < 15; i++ {
		theta := 0.5 + (3*math.Pi-0.5)*float64(i)/14
		descs = append(descs, particle(
			5+theta*math.Cos(theta), 5+theta*math.Sin(theta), 5,
			-math.Sin(theta), math.Cos(theta), 0,
			-1e-6, 1e-3,
		))
	}
	return descs
}

// scatter places 20 particles of mixed sign randomly in a cube with random
// velocities. The seed is explicit so a given run is reproducible.
func scatter(seed int64) []engine.Descriptor {
	rng := rand.New(rand.NewSource(seed))
	descs := make([]engine.Descriptor, 0, 20)
	for i := 0; i < 20; i++ {
		q := +1e-6
		if rng.Float64() > 0.5 {
			q = -1e-6
		}
		descs = append(descs, particle(
			5+4*(rng.Float64()-0.5), 5+4*(rng.Float64()-0.5), 5+4*(rng.Float64()-0.5),
			2*(rng.Float64()-0.5), 2*(rng.Float64()-0.5), 2*(rng.Float64()-0.5),
			q, 1e-3,
		))
	}
	return descs
}

func binary(int64) []engine.Descriptor {
	return []engine.Descriptor{
		particle(4.5, 5, 5, 0, 5, 0, +4e-6, 1e-2),
		particle(5.5, 5, 5, 0, -5, 0, -4e-6, 1e-2),
	}
}

func circular(int64) []engine.Descriptor {
	descs := []engine.Descriptor{heavyCenter()}
	for i := 0; i < 4; i++ {
		theta := 2 * math.Pi * float64(i) / 4
		descs = append(descs, particle(
			5+3*math.Cos(theta), 5+3*math.Sin(theta), 5,
			-6*math.Sin(theta), 6*math.Cos(theta), 0,
			-1e-6, 1e-3,
		))
	}
	return descs
}
