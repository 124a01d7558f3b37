package geom

// Quadrant labels where a complex value lies in the plane, 1..4, with 0
// reserved to mean "unassigned".
type Quadrant int

// Unassigned marks a Point whose quadrant has not yet been computed.
const Unassigned Quadrant = 0

// Classify maps a complex value to its quadrant using the boundary
// convention below. The convention is load-bearing: any variation can
// spuriously widen the quadrant difference across axis-crossing edges
// and destabilize refinement.
//
//	r > 0  and i >= 0  -> 1
//	r <= 0 and i >  0  -> 2
//	r <  0 and i <= 0  -> 3
//	r >= 0 and i <  0  -> 4
//
// z == 0 is the one point the four clauses above do not jointly cover by
// construction; by convention it classifies as quadrant 1.
func Classify(z complex128) Quadrant {
	r, i := real(z), imag(z)
	switch {
	case r == 0 && i == 0:
		return 1
	case r > 0 && i >= 0:
		return 1
	case r <= 0 && i > 0:
		return 2
	case r < 0 && i <= 0:
		return 3
	default:
		return 4
	}
}

// Diff returns (a - b) mod 4, the test the candidate-edge detector keys
// off and the phase-difference tag GrpfWithPlotData reports.
func (a Quadrant) Diff(b Quadrant) int {
	d := (int(a) - int(b)) % 4
	if d < 0 {
		d += 4
	}
	return d
}
