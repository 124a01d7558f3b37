package grpf

import (
	"testing"

	"github.com/EP-Guy/grpf/geom"
	"github.com/EP-Guy/grpf/tess"
)

func tessWithQuadrants(t *testing.T, zs []complex128, quads []geom.Quadrant) *tess.Tessellation {
	t.Helper()
	ts := tess.NewTessellation(8)
	added, err := ts.Insert(zs)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	for i, p := range added {
		ts.SetQuadrant(p.Index, quads[i])
	}
	return ts
}

func TestClassifyRegionQuadrantCycle(t *testing.T) {
	zs := []complex128{complex(1, 1), complex(-1, 1), complex(-1, -1), complex(1, -1)}
	quads := []geom.Quadrant{1, 2, 3, 4}
	ts := tessWithQuadrants(t, zs, quads)

	r := Region{0, 1, 2, 3, 0} // closes back on vertex 0
	q, _ := classifyRegion(ts, r)
	if q != -1 {
		t.Fatalf("classifyRegion() q = %v, want -1 for a full 1->2->3->4->1 quadrant cycle", q)
	}
}

func TestClassifyRegionDiscardsAmbiguousJump(t *testing.T) {
	zs := []complex128{complex(1, 1), complex(-1, -1), complex(0.5, 1)}
	quads := []geom.Quadrant{1, 3, 1}
	ts := tessWithQuadrants(t, zs, quads)

	r := Region{0, 1, 2}
	q, _ := classifyRegion(ts, r)
	if q != 0 {
		t.Fatalf("classifyRegion() q = %v, want 0 (|ΔQ|=2 jumps are discarded)", q)
	}
}

func TestClassifyRegionCentroid(t *testing.T) {
	zs := []complex128{complex(0, 0), complex(2, 0), complex(1, 1)}
	quads := []geom.Quadrant{1, 1, 1}
	ts := tessWithQuadrants(t, zs, quads)

	r := Region{0, 1, 2, 0}
	_, centroid := classifyRegion(ts, r)
	want := (zs[0] + zs[1] + zs[2] + zs[0]) / 4
	if centroid != want {
		t.Fatalf("classifyRegion() centroid = %v, want %v", centroid, want)
	}
}

func TestClassifyRegionTooShort(t *testing.T) {
	ts := tessWithQuadrants(t, []complex128{complex(1, 1), complex(-1, 1), complex(-1, -1)}, []geom.Quadrant{1, 2, 3})
	q, c := classifyRegion(ts, Region{0})
	if q != 0 || c != 0 {
		t.Fatalf("classifyRegion() on a single-vertex region should be (0, 0), got (%v, %v)", q, c)
	}
}
