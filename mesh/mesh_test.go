package mesh

import (
	"math/cmplx"
	"testing"
)

func TestRectangularDomainWithinBounds(t *testing.T) {
	zLo, zHi := complex(-2, -2), complex(2, 2)
	pts := RectangularDomain(zLo, zHi, 0.5)

	if len(pts) == 0 {
		t.Fatalf("RectangularDomain produced no points")
	}
	for _, z := range pts {
		if real(z) < real(zLo)-1e-9 || real(z) > real(zHi)+1e-9 {
			t.Fatalf("point %v out of x bounds [%v, %v]", z, real(zLo), real(zHi))
		}
		if imag(z) < imag(zLo)-1e-9 || imag(z) > imag(zHi)+1e-9 {
			t.Fatalf("point %v out of y bounds [%v, %v]", z, imag(zLo), imag(zHi))
		}
	}
}

func TestDiskDomainWithinRadius(t *testing.T) {
	R, r := 1.0, 0.2
	pts := DiskDomain(R, r)

	if len(pts) == 0 {
		t.Fatalf("DiskDomain produced no points")
	}
	for _, z := range pts {
		if cmplx.Abs(z) > R+1e-9 {
			t.Fatalf("point %v outside disk of radius %v", z, R)
		}
	}
}

func TestRectangularDomainDenserWithSmallerSpacing(t *testing.T) {
	zLo, zHi := complex(-1, -1), complex(1, 1)
	coarse := RectangularDomain(zLo, zHi, 0.5)
	fine := RectangularDomain(zLo, zHi, 0.1)

	if len(fine) <= len(coarse) {
		t.Fatalf("finer spacing should produce more points: coarse=%d fine=%d", len(coarse), len(fine))
	}
}
