package grpf

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/EP-Guy/grpf/geom"
	"github.com/EP-Guy/grpf/tess"
)

func newAssignFixture(t *testing.T) (*tess.Tessellation, geom.ScalingTransform, []int) {
	t.Helper()
	seeds := []complex128{complex(-1, -1), complex(1, 1), complex(-1, 1)}
	st, ok := geom.NewScalingTransform(seeds, tess.MinCoord, tess.MaxCoord)
	if !ok {
		t.Fatalf("NewScalingTransform() ok = false")
	}
	ts := tess.NewTessellation(8)
	scaled := make([]complex128, len(seeds))
	for i, z := range seeds {
		scaled[i] = st.Forward(z)
	}
	added, err := ts.Insert(scaled)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	indices := make([]int, len(added))
	for i, p := range added {
		indices[i] = p.Index
	}
	return ts, st, indices
}

func identityFunc(z complex128) complex128 { return z }

func TestAssignQuadrantsSequential(t *testing.T) {
	ts, st, indices := newAssignFixture(t)
	status := assignQuadrants(ts, st, identityFunc, indices, false)
	if status != 0 {
		t.Fatalf("assignQuadrants() status = %v, want 0", status)
	}
	if ts.Point(indices[0]).Quad != 3 {
		t.Fatalf("point %d quadrant = %v, want 3 (-1,-1)", indices[0], ts.Point(indices[0]).Quad)
	}
	if ts.Point(indices[1]).Quad != 1 {
		t.Fatalf("point %d quadrant = %v, want 1 (1,1)", indices[1], ts.Point(indices[1]).Quad)
	}
}

func TestAssignQuadrantsMultithreaded(t *testing.T) {
	seeds := make([]complex128, 64)
	for i := range seeds {
		angle := 2 * math.Pi * float64(i) / float64(len(seeds))
		seeds[i] = cmplx.Rect(0.5, angle)
	}
	st, ok := geom.NewScalingTransform(seeds, tess.MinCoord, tess.MaxCoord)
	if !ok {
		t.Fatalf("NewScalingTransform() ok = false")
	}
	ts := tess.NewTessellation(len(seeds))
	scaled := make([]complex128, len(seeds))
	for i, z := range seeds {
		scaled[i] = st.Forward(z)
	}
	added, err := ts.Insert(scaled)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	indices := make([]int, len(added))
	for i, p := range added {
		indices[i] = p.Index
	}

	seq := tess.NewTessellation(len(seeds))
	addedSeq, err := seq.Insert(scaled)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	indicesSeq := make([]int, len(addedSeq))
	for i, p := range addedSeq {
		indicesSeq[i] = p.Index
	}

	if status := assignQuadrants(ts, st, identityFunc, indices, true); status != 0 {
		t.Fatalf("assignQuadrants() multithreaded status = %v, want 0", status)
	}
	if status := assignQuadrants(seq, st, identityFunc, indicesSeq, false); status != 0 {
		t.Fatalf("assignQuadrants() sequential status = %v, want 0", status)
	}

	for i, idx := range indices {
		got := ts.Point(idx).Quad
		want := seq.Point(indicesSeq[i]).Quad
		if got != want {
			t.Fatalf("point %d: multithreaded quadrant = %v, sequential = %v", idx, got, want)
		}
	}
}

func TestAssignQuadrantsUnclassifiable(t *testing.T) {
	ts, st, indices := newAssignFixture(t)
	nanFunc := func(complex128) complex128 { return cmplx.NaN() }
	status := assignQuadrants(ts, st, nanFunc, indices, false)
	if status&Unclassifiable == 0 {
		t.Fatalf("assignQuadrants() status = %v, want Unclassifiable bit set", status)
	}
}

func TestSplitIndices(t *testing.T) {
	chunks := splitIndices([]int{0, 1, 2, 3, 4}, 3)
	if len(chunks) != 3 {
		t.Fatalf("splitIndices() returned %d chunks, want 3", len(chunks))
	}
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	if total != 5 {
		t.Fatalf("splitIndices() chunks cover %d indices, want 5", total)
	}
}
