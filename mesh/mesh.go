package mesh

import (
	"math"
	"math/cmplx"
)

// RectangularDomain returns a hexagonal close-packed sampling of the
// axis-aligned rectangle with corners zLo and zHi, at spacing r. Rows
// are spaced r*sqrt(3)/2 apart, with alternating rows offset by r/2,
// the standard hex-packing lattice.
func RectangularDomain(zLo, zHi complex128, r float64) []complex128 {
	xLo, xHi := math.Min(real(zLo), real(zHi)), math.Max(real(zLo), real(zHi))
	yLo, yHi := math.Min(imag(zLo), imag(zHi)), math.Max(imag(zLo), imag(zHi))

	rowStep := r * math.Sqrt(3) / 2

	var pts []complex128
	row := 0
	for y := yLo; y <= yHi+1e-12; y += rowStep {
		xOffset := 0.0
		if row%2 == 1 {
			xOffset = r / 2
		}
		for x := xLo + xOffset; x <= xHi+1e-12; x += r {
			pts = append(pts, complex(x, y))
		}
		row++
	}
	return pts
}

// DiskDomain returns a hexagonal close-packed sampling of the disk of
// radius R centered at the origin, at spacing r.
func DiskDomain(R, r float64) []complex128 {
	rowStep := r * math.Sqrt(3) / 2

	var pts []complex128
	row := 0
	for y := -R; y <= R+1e-12; y += rowStep {
		xOffset := 0.0
		if row%2 == 1 {
			xOffset = r / 2
		}
		// x ranges over [-R, R] shifted by xOffset; clip to the disk below.
		for x := -R + xOffset; x <= R+1e-12; x += r {
			z := complex(x, y)
			if cmplx.Abs(z) <= R+1e-12 {
				pts = append(pts, z)
			}
		}
		row++
	}
	return pts
}
