package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-minimal-raytracer/pkg/core"
)

// WorkerPool renders rows in parallel. Each row draws its jitter from its own
// stream seeded by (seed, pass, row), so output does not depend on scheduling.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// rowSeed derives the jitter seed for one row of one pass
func rowSeed(seed int64, pass, row int) int64 {
	return seed + int64(pass)*1_000_003 + int64(row)*7_919
}

// Render renders every row of buf and merges the per-row statistics.
// Rows never overlap, so workers write to buf without locking.
func (wp *WorkerPool) Render(buf *PixelBuffer, plane ImagePlane, hittables []core.Hittable, pass int) FrameStats {
	var (
		g     errgroup.Group
		mu    sync.Mutex
		total FrameStats
	)
	g.SetLimit(wp.numWorkers)

	seed := wp.raytracer.config.Seed
	for y := 0; y < buf.Height; y++ {
		y := y
		g.Go(func() error {
			var stats FrameStats
			random := rand.New(rand.NewSource(rowSeed(seed, pass, y)))
			wp.raytracer.renderRow(buf, y, plane, hittables, random, &stats)

			mu.Lock()
			total.merge(stats)
			mu.Unlock()
			return nil
		})
	}

	// Row rendering has no failure path
	_ = g.Wait()
	return total
}
