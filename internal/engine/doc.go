// Package engine provides the core of the charged-particle simulator: the
// particle data model and the [Simulation] orchestrator that advances it.
//
// One tick runs force computation, integration, the bounds check, and
// trajectory bookkeeping, in that order:
//
//	sim, _ := engine.New(descs, forceModel, integrator, volume, cfg)
//	snap := sim.Step()
//
// The force, integration, and bounds strategies are supplied through the
// [ForceModel], [Integrator], and [Volume] interfaces, implemented by the
// force, integrators, and bounds packages.
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. All control operations (Step,
// SetDt, Pause, Resume, Reset) must come from a single goroutine; the UI
// layer reads snapshots and routes every mutation through these operations.
package engine
