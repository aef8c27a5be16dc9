package force

import (
	"runtime"
	"sync"

	"github.com/san-kum/chargesim/internal/engine"
)

// parallelThreshold is the particle count below which the serial path is
// cheaper than spawning workers.
const parallelThreshold = 64

// Parallel splits the O(N^2) summation across workers. Each worker owns a
// disjoint range of particle indices and writes only its own accumulators,
// and Compute does not return until every worker has finished: the full net
// force for all particles exists before the integrator runs.
type Parallel struct {
	Coulomb
	Workers int
}

func NewParallel(k, minDistance float64, workers int) *Parallel {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Parallel{
		Coulomb: Coulomb{K: k, MinDistance: minDistance},
		Workers: workers,
	}
}

func (p *Parallel) Compute(particles []engine.Particle, out []engine.Vec3) {
	n := len(particles)
	if p.Workers <= 1 || n < parallelThreshold {
		p.Coulomb.Compute(particles, out)
		return
	}

	for i := range out {
		out[i] = engine.Vec3{}
	}

	chunk := (n + p.Workers - 1) / p.Workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if !particles[i].Active {
					continue
				}
				sum := engine.Vec3{}
				for j := 0; j < n; j++ {
					if j == i || !particles[j].Active {
						continue
					}
					sum = sum.Add(p.pair(&particles[i], &particles[j]))
				}
				out[i] = sum
			}
		}(lo, hi)
	}
	wg.Wait()
}
