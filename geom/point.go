package geom

import "math"

// Point is a 2-D point representing a complex number, carrying the
// mutable Quadrant tag the rest of the pipeline classifies it by and the
// insertion index that is its sole notion of identity: two Points are
// equal when, and only when, their Index matches, never by comparing
// coordinates.
type Point struct {
	Z     complex128 // value in the *scaled* coordinate system
	Quad  Quadrant
	Index int
}

// NewPoint returns an unassigned Point at z with the given index.
func NewPoint(z complex128, index int) Point {
	return Point{Z: z, Quad: Unassigned, Index: index}
}

// Equal reports whether p and q are the same point, by index.
func (p Point) Equal(q Point) bool {
	return p.Index == q.Index
}

// Distance returns the Euclidean distance between p and q in whatever
// coordinate system their Z values are expressed in.
func Distance(p, q Point) float64 {
	d := p.Z - q.Z
	return math.Hypot(real(d), imag(d))
}

// Midpoint returns the complex value halfway between p and q. It is a
// bare value with no index; the caller assigns one on insertion.
func Midpoint(p, q Point) complex128 {
	return (p.Z + q.Z) / 2
}

// Centroid returns the arithmetic mean of pts as a complex value. It is
// a bare value with no index; the caller assigns one on insertion.
func Centroid(pts ...Point) complex128 {
	var sum complex128
	for _, p := range pts {
		sum += p.Z
	}
	return sum / complex(float64(len(pts)), 0)
}
