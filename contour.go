package grpf

import "github.com/EP-Guy/grpf/geom"

// extractContours implements spec.md §4.5. It takes the full candidate
// edge set (not the tolerance-filtered subset refinement used) and the
// tessellation's current triangles, and returns the outer closed
// boundary of every region those candidate edges bound: it emits every
// directed edge of every triangle touching the candidate set, then
// cancels edges that appear with both orientations (interior edges
// shared between two emitted triangles), leaving only edges that appear
// with a single orientation — the boundary.
func extractContours(triangles []geom.Triangle, candidates []geom.Edge) []geom.Edge {
	inCandidates := make(map[unorderedEdge]bool, len(candidates))
	for _, e := range candidates {
		inCandidates[unordered(e)] = true
	}

	var w []geom.Edge
	for _, tr := range triangles {
		touches := false
		for _, e := range tr.Edges() {
			if inCandidates[unordered(e)] {
				touches = true
				break
			}
		}
		if touches {
			te := tr.Edges()
			w = append(w, te[:]...)
		}
	}

	counts := make(map[geom.Edge]int, len(w))
	for _, e := range w {
		counts[e]++
	}

	var c []geom.Edge
	for _, e := range w {
		if counts[e.Reverse()] == 0 {
			c = append(c, e)
		}
	}
	return c
}
