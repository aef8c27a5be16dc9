package engine

import (
	"errors"
	"fmt"
)

// Domain errors for simulation construction and control.
var (
	// ErrInvalidParticle indicates preset data that violates structural
	// invariants (non-positive mass, non-finite numeric field).
	ErrInvalidParticle = errors.New("engine: invalid particle")

	// ErrInvalidParameter indicates a rejected runtime parameter change;
	// the previous value is retained.
	ErrInvalidParameter = errors.New("engine: invalid parameter")
)

// ParticleError reports which particle and field failed validation.
type ParticleError struct {
	Index int
	Field string
	Value float64
}

func (e *ParticleError) Error() string {
	return fmt.Sprintf("particle %d: %s=%v: %v", e.Index, e.Field, e.Value, ErrInvalidParticle)
}

func (e *ParticleError) Unwrap() error {
	return ErrInvalidParticle
}
