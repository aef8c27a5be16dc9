package metrics

import "github.com/san-kum/chargesim/internal/engine"

// DefaultSpeedLimit is the sanity threshold above which a particle speed
// counts as a numeric-instability warning.
const DefaultSpeedLimit = 1e4

// Instability counts particles whose speed exceeds a sanity threshold, the
// usual symptom of a too-large dt against a too-small distance floor. It is
// a soft signal: the step still completes, and runaway particles are
// retired by the bounds check rather than by any hard error.
type Instability struct {
	SpeedLimit float64
	warnings   int
}

func NewInstability(speedLimit float64) *Instability {
	return &Instability{SpeedLimit: speedLimit}
}

func (s *Instability) Name() string { return "instability_warnings" }

func (s *Instability) Observe(snap *engine.Snapshot) {
	for i := range snap.Particles {
		p := &snap.Particles[i]
		if p.Active && p.Velocity.Norm() > s.SpeedLimit {
			s.warnings++
		}
	}
}

func (s *Instability) Value() float64 { return float64(s.warnings) }

func (s *Instability) Reset() { s.warnings = 0 }
