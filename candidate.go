package grpf

import (
	"github.com/EP-Guy/grpf/geom"
	"github.com/EP-Guy/grpf/tess"
)

// candidateEdges returns every solid edge of t whose endpoints differ
// by quadrant 2 mod 4 (spec.md §4.3). Endpoint order is irrelevant:
// mod-4 subtraction makes the ΔQ=2 test symmetric in its arguments.
func candidateEdges(t *tess.Tessellation) []geom.Edge {
	var out []geom.Edge
	for _, e := range t.Edges() {
		if isCandidate(t.Point(e.A), t.Point(e.B)) {
			out = append(out, e)
		}
	}
	return out
}

func isCandidate(a, b geom.Point) bool {
	return a.Quad.Diff(b.Quad) == 2
}
