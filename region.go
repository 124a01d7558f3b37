package grpf

import (
	"math"

	"github.com/EP-Guy/grpf/geom"
	"github.com/EP-Guy/grpf/tess"
)

// Region is a cyclic ordered list of point indices describing one
// closed boundary extracted from the contour edge set (spec.md §3).
type Region []int

// walkRegions implements spec.md §4.6: it consumes the bag of directed
// contour edges c, tracing them into ordered closed loops. The walk
// consumes a private copy of c; the caller's slice is left unchanged.
func walkRegions(t *tess.Tessellation, c []geom.Edge) []Region {
	remaining := append([]geom.Edge(nil), c...)

	var regions []Region
	for len(remaining) > 0 {
		e0 := remaining[0]
		remaining = remaining[1:]

		region := Region{e0.A}
		ref := e0.B

		for {
			matches, idxs := matchingTails(remaining, ref)
			if len(matches) == 0 {
				region = append(region, ref)
				break
			}

			var chosen geom.Edge
			var chosenIdx int
			if len(matches) == 1 {
				chosen, chosenIdx = matches[0], idxs[0]
			} else {
				prev := region[len(region)-1]
				chosen, chosenIdx = findNextNode(t, prev, ref, matches, idxs)
			}
			region = append(region, ref)
			ref = chosen.B
			remaining = removeAt(remaining, chosenIdx)
		}
		regions = append(regions, region)
	}
	return regions
}

func matchingTails(edges []geom.Edge, tail int) ([]geom.Edge, []int) {
	var matches []geom.Edge
	var idxs []int
	for i, e := range edges {
		if e.A == tail {
			matches = append(matches, e)
			idxs = append(idxs, i)
		}
	}
	return matches, idxs
}

func removeAt(edges []geom.Edge, i int) []geom.Edge {
	edges[i] = edges[len(edges)-1]
	return edges[:len(edges)-1]
}

// findNextNode disambiguates a junction (spec.md §4.6 step 2, "more than
// one match"): given prev (the previously appended region vertex) and S
// = ref (the junction vertex), it picks the candidate whose head N
// minimizes φ(N) = (arg(prev-S) - arg(N-S)) mod 2π, the "leftmost"
// (smallest positive turn) next edge. This keeps loop orientation
// consistent, matching the teacher's nodequeue priority pop: consume
// from a bag by a single deterministic comparison until it is empty.
func findNextNode(t *tess.Tessellation, prev, s int, candidates []geom.Edge, idxs []int) (geom.Edge, int) {
	sZ := t.Point(s).Z
	prevAngle := phaseOf(t.Point(prev).Z - sZ)

	bestPhi := math.Inf(1)
	best := 0
	for i, e := range candidates {
		nAngle := phaseOf(t.Point(e.B).Z - sZ)
		phi := math.Mod(prevAngle-nAngle, 2*math.Pi)
		if phi < 0 {
			phi += 2 * math.Pi
		}
		if phi < bestPhi {
			bestPhi = phi
			best = i
		}
	}
	return candidates[best], idxs[best]
}

func phaseOf(z complex128) float64 {
	return math.Atan2(imag(z), real(z))
}
