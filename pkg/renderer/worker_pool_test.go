package renderer

import (
	"testing"

	"github.com/df07/go-minimal-raytracer/pkg/core"
	"github.com/df07/go-minimal-raytracer/pkg/geometry"
)

func parallelTestScene() []core.Hittable {
	return []core.Hittable{
		geometry.NewSphere(core.NewVec3(0.3, 0, 2), 0.8),
		geometry.NewSphere(core.NewVec3(-0.5, 0.4, 3), 1),
	}
}

func TestWorkerPool_MatchesSequentialWithoutJitter(t *testing.T) {
	sequential := NewRaytracer(DefaultRenderConfig())
	seqBuf := NewPixelBuffer(16, 12)
	seqStats := sequential.Render(seqBuf, unitPlane, parallelTestScene())

	config := DefaultRenderConfig()
	config.NumWorkers = 4
	parallel := NewRaytracer(config)
	parBuf := NewPixelBuffer(16, 12)
	parStats := parallel.Render(parBuf, unitPlane, parallelTestScene())

	for i := range seqBuf.Pix {
		if seqBuf.Pix[i] != parBuf.Pix[i] {
			t.Fatalf("Pixel %d: expected %v, got %v", i, seqBuf.Pix[i], parBuf.Pix[i])
		}
	}
	if seqStats != parStats {
		t.Errorf("Expected merged stats %+v, got %+v", seqStats, parStats)
	}
}

func TestWorkerPool_Deterministic(t *testing.T) {
	config := DefaultRenderConfig()
	config.AntiAliasing = true
	config.NumWorkers = 3

	render := func() *PixelBuffer {
		rt := NewRaytracer(config)
		buf := NewPixelBuffer(10, 10)
		rt.Render(buf, unitPlane, parallelTestScene())
		return buf
	}

	a, b := render(), render()
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("Pixel %d differs between identical parallel renders: %v vs %v", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	pool := NewWorkerPool(NewRaytracer(DefaultRenderConfig()), 0)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected CPU count workers, got %d", pool.GetNumWorkers())
	}
}

func TestRowSeed_Distinct(t *testing.T) {
	seen := make(map[int64]bool)
	for pass := 1; pass <= 3; pass++ {
		for row := 0; row < 100; row++ {
			seed := rowSeed(42, pass, row)
			if seen[seed] {
				t.Fatalf("Duplicate seed for pass %d row %d", pass, row)
			}
			seen[seed] = true
		}
	}
}
