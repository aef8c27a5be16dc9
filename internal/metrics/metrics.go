// Package metrics provides step-by-step observers over simulation
// snapshots: conserved-quantity tracking and soft numeric-instability
// accounting.
package metrics

import "github.com/san-kum/chargesim/internal/engine"

// Metric observes snapshots and reduces them to a single value.
type Metric interface {
	Name() string
	Observe(snap *engine.Snapshot)
	Value() float64
	Reset()
}

// ActiveCount reports the number of active particles in the latest
// snapshot.
type ActiveCount struct {
	latest int
}

func NewActiveCount() *ActiveCount {
	return &ActiveCount{}
}

func (a *ActiveCount) Name() string { return "active" }

func (a *ActiveCount) Observe(snap *engine.Snapshot) {
	a.latest = snap.ActiveCount()
}

func (a *ActiveCount) Value() float64 { return float64(a.latest) }

func (a *ActiveCount) Reset() { a.latest = 0 }
