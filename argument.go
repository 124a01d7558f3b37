package grpf

import (
	"github.com/EP-Guy/grpf/geom"
	"github.com/EP-Guy/grpf/tess"
)

// classifyRegion implements spec.md §4.7, the discretized Cauchy
// argument principle. R is a closed loop as produced by walkRegions,
// where the last vertex duplicates the first (the walker closes the
// loop by re-appending it), so summing n-1 forward differences over n
// vertices already covers the full cycle without double counting.
//
// It returns the winding number q and the region's centroid in scaled
// coordinates. The caller decides zero/pole/discard from q, and
// inverse-scales the centroid before returning it to the user.
func classifyRegion(t *tess.Tessellation, r Region) (q int, centroid complex128) {
	n := len(r)
	if n < 2 {
		return 0, 0
	}

	quads := make([]geom.Quadrant, n)
	for i, v := range r {
		quads[i] = t.Point(v).Quad
	}

	sum := 0
	for k := 0; k < n-1; k++ {
		d := -(int(quads[k+1]) - int(quads[k]))
		switch {
		case d == 3:
			d = -1
		case d == -3:
			d = 1
		case d == 2 || d == -2:
			d = 0
		}
		sum += d
	}
	// q is sum/4; spec.md guarantees sum is a multiple of 4 for a
	// properly closed loop, so integer division is exact.
	q = sum / 4

	var z complex128
	for _, v := range r {
		z += t.Point(v).Z
	}
	centroid = z / complex(float64(n), 0)

	return q, centroid
}
