package geom

import "math"

// ScalingTransform is the affine map (ra, rb, ia, ib) between a caller's
// domain and the triangulation library's required coordinate span
// [minCoord, maxCoord]:
//
//	x -> ra*x + rb
//	y -> ia*y + ib
//
// f is always evaluated at the unscaled complex value; every geometric
// predicate in the refinement loop (distances, the tolerance test)
// operates in the scaled system the transform maps into.
type ScalingTransform struct {
	Ra, Rb float64
	Ia, Ib float64
}

// NewScalingTransform derives the affine coefficients mapping the
// bounding box of seeds into [minCoord, maxCoord]. It returns the zero
// transform and false if seeds is empty.
func NewScalingTransform(seeds []complex128, minCoord, maxCoord float64) (ScalingTransform, bool) {
	if len(seeds) == 0 {
		return ScalingTransform{}, false
	}

	rmin, rmax := real(seeds[0]), real(seeds[0])
	imin, imax := imag(seeds[0]), imag(seeds[0])
	for _, z := range seeds[1:] {
		r, i := real(z), imag(z)
		rmin = math.Min(rmin, r)
		rmax = math.Max(rmax, r)
		imin = math.Min(imin, i)
		imax = math.Max(imax, i)
	}

	w := maxCoord - minCoord

	var st ScalingTransform
	if rmax == rmin {
		st.Ra, st.Rb = 1, minCoord-rmin
	} else {
		st.Ra = w / (rmax - rmin)
		st.Rb = maxCoord - st.Ra*rmax
	}
	if imax == imin {
		st.Ia, st.Ib = 1, minCoord-imin
	} else {
		st.Ia = w / (imax - imin)
		st.Ib = maxCoord - st.Ia*imax
	}
	return st, true
}

// Forward maps a user-coordinate complex value into scaled coordinates.
func (s ScalingTransform) Forward(z complex128) complex128 {
	x := s.Ra*real(z) + s.Rb
	y := s.Ia*imag(z) + s.Ib
	return complex(x, y)
}

// Inverse maps a scaled complex value back into user coordinates.
func (s ScalingTransform) Inverse(z complex128) complex128 {
	x := (real(z) - s.Rb) / s.Ra
	y := (imag(z) - s.Ib) / s.Ia
	return complex(x, y)
}

// InRange reports whether z's components both lie within [minCoord,
// maxCoord]; violation after a Forward pass is a precondition failure.
func InRange(z complex128, minCoord, maxCoord float64) bool {
	r, i := real(z), imag(z)
	return r >= minCoord && r <= maxCoord && i >= minCoord && i <= maxCoord
}
