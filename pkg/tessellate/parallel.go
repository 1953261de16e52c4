package tessellate

import (
	"runtime"
	"sync"

	"github.com/bverret/parasurf/pkg/mesh"
	"github.com/bverret/parasurf/pkg/surface"
)

// GenerateParallel is Generate with the vertex grid filled by several
// goroutines. Grid nodes are independent and every node has a fixed,
// pre-determined buffer slot, so rows are split into contiguous bands with
// no locking and no write collisions. Output is bit-identical to Generate.
//
// workers <= 0 uses GOMAXPROCS. Expensive Evaluate implementations benefit;
// for trivial surfaces Generate is usually faster.
func GenerateParallel(segsU, segsV int, s surface.Surface, workers int) (*mesh.Mesh, error) {
	if err := validate(segsU, segsV, s); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	rows := segsV + 1
	if workers > rows {
		workers = rows
	}

	m := newGridMesh(segsU, segsV)

	if workers == 1 {
		fillRows(m, 0, rows, segsU, segsV, s)
	} else {
		var wg sync.WaitGroup
		band := (rows + workers - 1) / workers
		for from := 0; from < rows; from += band {
			to := from + band
			if to > rows {
				to = rows
			}
			wg.Add(1)
			go func(from, to int) {
				defer wg.Done()
				fillRows(m, from, to, segsU, segsV, s)
			}(from, to)
		}
		wg.Wait()
	}

	fillIndices(m, segsU, segsV)
	return m, nil
}
