package grpf

import (
	"sort"

	"github.com/EP-Guy/grpf/geom"
	"github.com/EP-Guy/grpf/tess"
)

// refinementStep is one pass of spec.md §4.4: given the full candidate
// set, it selects the edges still over tolerance, classifies every
// triangle touching their endpoints into zone-1/zone-2, and returns the
// new sample points (in scaled coordinates) those triangles produce.
// A nil return with converged=true means refinement has converged:
// selectE was empty.
func refinementStep(t *tess.Tessellation, candidates []geom.Edge, tolerance, skinnyThreshold float64) (newPoints []complex128, converged bool) {
	selectE := make([]geom.Edge, 0, len(candidates))
	for _, e := range candidates {
		if scaledLength(t, e) > tolerance {
			selectE = append(selectE, e)
		}
	}
	if len(selectE) == 0 {
		return nil, true
	}

	u := uniquePoints(selectE)

	zone1, zone2 := partitionTriangles(t, u)

	seenMidpoint := make(map[unorderedEdge]bool)
	for _, tr := range zone1 {
		for _, e := range tr.Edges() {
			ue := unordered(e)
			if seenMidpoint[ue] {
				continue
			}
			seenMidpoint[ue] = true
			if scaledLength(t, e) <= tolerance {
				continue
			}
			mp := geom.Midpoint(t.Point(e.A), t.Point(e.B))
			newPoints = append(newPoints, mp)
		}
	}

	for _, tr := range zone2 {
		pts := map[int]geom.Point{
			tr.A: t.Point(tr.A),
			tr.B: t.Point(tr.B),
			tr.C: t.Point(tr.C),
		}
		if tr.Skinniness(pts) > skinnyThreshold {
			c := geom.Centroid(pts[tr.A], pts[tr.B], pts[tr.C])
			newPoints = append(newPoints, c)
		}
	}

	return newPoints, false
}

func scaledLength(t *tess.Tessellation, e geom.Edge) float64 {
	return geom.Distance(t.Point(e.A), t.Point(e.B))
}

// unorderedEdge is an edge identity that ignores direction, used to
// deduplicate midpoint emission per spec.md §4.4 step 4.
type unorderedEdge struct{ Lo, Hi int }

func unordered(e geom.Edge) unorderedEdge {
	if e.A <= e.B {
		return unorderedEdge{e.A, e.B}
	}
	return unorderedEdge{e.B, e.A}
}

// uniquePoints returns the deduplicated endpoint set of edges, as a set.
// partitionTriangles ranges over it through sortedKeys, so that later
// passes (and ultimately which midpoints/centroids get emitted in which
// order) are reproducible from one run to the next, per spec.md §8's
// idempotence and monotone-refinement properties — ranging the map
// directly would make emission order depend on Go's randomized map
// iteration.
func uniquePoints(edges []geom.Edge) map[int]bool {
	u := make(map[int]bool)
	for _, e := range edges {
		u[e.A] = true
		u[e.B] = true
	}
	return u
}

func sortedKeys(u map[int]bool) []int {
	keys := make([]int, 0, len(u))
	for v := range u {
		keys = append(keys, v)
	}
	sort.Ints(keys)
	return keys
}

// partitionTriangles visits every triangle incident to any point in u
// and buckets it into zone-1 (>=2 vertices in u) or zone-2 (exactly 1).
// Each triangle is visited at most once even if several of its vertices
// are in u, since Adjacent(v) for multiple v in the same triangle would
// otherwise return it more than once.
func partitionTriangles(t *tess.Tessellation, u map[int]bool) (zone1, zone2 []geom.Triangle) {
	seen := make(map[geom.Triangle]bool)
	for _, v := range sortedKeys(u) {
		for _, tr := range t.Adjacent(v) {
			if seen[tr] {
				continue
			}
			seen[tr] = true

			count := 0
			for _, vx := range [3]int{tr.A, tr.B, tr.C} {
				if u[vx] {
					count++
				}
			}
			switch {
			case count >= 2:
				zone1 = append(zone1, tr)
			case count == 1:
				zone2 = append(zone2, tr)
			}
		}
	}
	return zone1, zone2
}
