// Package bounds defines the simulation volumes used to retire escaped
// particles. A particle whose position leaves the volume is permanently
// deactivated by the engine, which keeps the pairwise force computation
// bounded as unstable configurations eject particles.
package bounds

import "github.com/san-kum/chargesim/internal/engine"

// DefaultLimit matches the original simulator's escape boundary.
const DefaultLimit = 1e5

// Box is an axis-aligned volume: a point is inside while |x|, |y|, and |z|
// all stay within Limit.
type Box struct {
	Limit float64
}

func NewBox(limit float64) Box {
	return Box{Limit: limit}
}

func (b Box) Contains(p engine.Vec3) bool {
	return p.X >= -b.Limit && p.X <= b.Limit &&
		p.Y >= -b.Limit && p.Y <= b.Limit &&
		p.Z >= -b.Limit && p.Z <= b.Limit
}

// Sphere is a radial volume centered on the origin.
type Sphere struct {
	Radius float64
}

func NewSphere(radius float64) Sphere {
	return Sphere{Radius: radius}
}

func (s Sphere) Contains(p engine.Vec3) bool {
	return p.NormSq() <= s.Radius*s.Radius
}
