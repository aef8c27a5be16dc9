package engine

const (
	// Marker sizing for the rendering layer: base size plus a mass-weighted
	// term, computed once at load time.
	baseSize     = 20.0
	massSizeSpan = 40.0
)

// Descriptor is an initial particle as supplied by a preset: the structural
// fields only, before validation.
type Descriptor struct {
	Charge   float64
	Mass     float64
	Position Vec3
	Velocity Vec3
}

// Particle is a charged point mass. Position and velocity are mutated only
// by the integrator inside Step; Trajectory grows while the particle is
// active and is frozen once it is deactivated.
type Particle struct {
	Charge     float64
	Mass       float64
	Position   Vec3
	Velocity   Vec3
	Active     bool
	Size       float64
	Trajectory []Vec3
}

// buildParticles validates descriptors and produces the live particle set.
// Sizes are derived from mass relative to the heaviest particle.
func buildParticles(descs []Descriptor) ([]Particle, error) {
	maxMass := 0.0
	for i, d := range descs {
		if err := validateDescriptor(i, d); err != nil {
			return nil, err
		}
		if d.Mass > maxMass {
			maxMass = d.Mass
		}
	}

	particles := make([]Particle, len(descs))
	for i, d := range descs {
		particles[i] = Particle{
			Charge:   d.Charge,
			Mass:     d.Mass,
			Position: d.Position,
			Velocity: d.Velocity,
			Active:   true,
			Size:     baseSize + massSizeSpan*d.Mass/maxMass,
		}
	}
	return particles, nil
}

func validateDescriptor(i int, d Descriptor) error {
	switch {
	case !isFinite(d.Mass) || d.Mass <= 0:
		return &ParticleError{Index: i, Field: "mass", Value: d.Mass}
	case !isFinite(d.Charge):
		return &ParticleError{Index: i, Field: "charge", Value: d.Charge}
	case !d.Position.IsFinite():
		return &ParticleError{Index: i, Field: "position", Value: d.Position.Norm()}
	case !d.Velocity.IsFinite():
		return &ParticleError{Index: i, Field: "velocity", Value: d.Velocity.Norm()}
	}
	return nil
}
