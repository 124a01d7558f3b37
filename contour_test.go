package grpf

import (
	"testing"

	"github.com/EP-Guy/grpf/geom"
)

func TestExtractContoursCancelsInteriorEdges(t *testing.T) {
	// two triangles sharing edge (1,2)/(2,1): {0,1,2} and {1,3,2}
	// (oriented so the shared edge appears as (1,2) in the first and
	// (2,1) in the second, cancelling).
	triangles := []geom.Triangle{
		{A: 0, B: 1, C: 2},
		{A: 1, B: 3, C: 2},
	}
	candidates := []geom.Edge{{A: 1, B: 2}} // the shared edge: both triangles touch it

	c := extractContours(triangles, candidates)

	for _, e := range c {
		if e.A == 1 && e.B == 2 {
			t.Fatalf("shared interior edge (1,2) should have cancelled, found in contour: %v", c)
		}
		if e.A == 2 && e.B == 1 {
			t.Fatalf("shared interior edge (2,1) should have cancelled, found in contour: %v", c)
		}
	}
	if len(c) != 4 {
		t.Fatalf("expected 4 boundary edges (outer quad), got %d: %v", len(c), c)
	}
}

func TestExtractContoursNoTouchingTriangles(t *testing.T) {
	triangles := []geom.Triangle{{A: 0, B: 1, C: 2}}
	candidates := []geom.Edge{{A: 5, B: 6}} // doesn't touch the triangle
	c := extractContours(triangles, candidates)
	if len(c) != 0 {
		t.Fatalf("expected no contour edges, got %v", c)
	}
}
