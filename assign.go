package grpf

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/EP-Guy/grpf/geom"
	"github.com/EP-Guy/grpf/tess"
)

// Func is the user-supplied complex function being analyzed. Per
// spec.md §6 it must be pure, total on the domain and, when
// Params.Multithreading is set, callable concurrently from multiple
// goroutines without data races.
type Func func(complex128) complex128

// assignQuadrants evaluates f at every newly inserted point (identified
// by index, in scaled coordinates, via st.Inverse) and records its
// quadrant on t. When multithreaded is true the work is partitioned
// across GOMAXPROCS goroutines, each one owning a disjoint slice of
// indices — no shared mutable state crosses goroutine boundaries, so
// the only contract placed on f is that it tolerates concurrent calls.
func assignQuadrants(t *tess.Tessellation, st geom.ScalingTransform, f Func, indices []int, multithreaded bool) Status {
	assign := func(idx int) Status {
		p := t.Point(idx)
		unscaled := st.Inverse(p.Z)
		w := f(unscaled)
		if !isClassifiable(w) {
			return Unclassifiable
		}
		t.SetQuadrant(idx, geom.Classify(w))
		return 0
	}

	if !multithreaded || len(indices) < 2 {
		var status Status
		for _, idx := range indices {
			if s := assign(idx); s != 0 {
				status |= s
			}
		}
		return status
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(indices) {
		workers = len(indices)
	}
	chunks := splitIndices(indices, workers)

	statuses := make([]Status, len(chunks))
	var g errgroup.Group
	for ci, chunk := range chunks {
		ci, chunk := ci, chunk
		g.Go(func() error {
			var s Status
			for _, idx := range chunk {
				s |= assign(idx)
			}
			statuses[ci] = s
			return nil
		})
	}
	_ = g.Wait() // assign never returns an error; only accumulates Status bits

	var status Status
	for _, s := range statuses {
		status |= s
	}
	return status
}

func splitIndices(indices []int, workers int) [][]int {
	chunks := make([][]int, workers)
	base := len(indices) / workers
	rem := len(indices) % workers
	offset := 0
	for i := 0; i < workers; i++ {
		n := base
		if i < rem {
			n++
		}
		chunks[i] = indices[offset : offset+n]
		offset += n
	}
	return chunks
}

func isClassifiable(z complex128) bool {
	r, i := real(z), imag(z)
	return !math.IsNaN(r) && !math.IsInf(r, 0) && !math.IsNaN(i) && !math.IsInf(i, 0)
}
