package cmd

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/EP-Guy/grpf"
	"github.com/EP-Guy/grpf/mesh"
)

// Preset bundles a named test function with the domain and settings it
// is run against by the CLI. The grpf package's own tests define their
// own copies of the rational, empty and single-pole functions rather
// than using these presets.
type Preset struct {
	Name        string
	Description string
	Func        grpf.Func
	InitialMesh func() []complex128
	Params      func() grpf.Params
}

func ratioFunc(z complex128) complex128 {
	return (z - 1) * (z - 1i) * (z - 1i) * (z + 1) * (z + 1) * (z + 1) / (z + 1i)
}

func waveguideFunc(z complex128) complex128 {
	const (
		epsR = complex(5, -2)
		muR  = complex(1, -2)
		d    = 1e-2
		f0   = 1e9 // 1 GHz
	)
	k0 := 2 * math.Pi * f0 / 299792458.0
	c := epsR * epsR * complex((k0*d)*(k0*d), 0) * (epsR*muR - 1)
	return epsR*epsR*z*z + z*z*cmplx.Tan(z)*cmplx.Tan(z) - c
}

// grapheneFunc is a single-sheet stand-in for the 4-Riemann-sheet
// surface-plasmon dispersion of a graphene sheet: the sum
// eps1/q1 + eps2/q2 + i*sigma/k0^2, with each square root evaluated on
// its principal sheet only. The exact branch bookkeeping used to generate the
// published test vectors isn't reproduced here; this keeps the same
// pole/zero structure (four quasi-TM surface modes) the preset is named
// for, without claiming bit-for-bit agreement with any particular
// reference implementation.
func grapheneFunc(z complex128) complex128 {
	k0 := complex(1.0, 0)
	eps1, eps2 := complex(1, 0), complex(2.25, 0)
	sigma := complex(6e-4, -6e-5) * z

	q1 := cmplx.Sqrt(z*z - eps1*k0*k0)
	q2 := cmplx.Sqrt(z*z - eps2*k0*k0)

	return eps1/q1 + eps2/q2 + complex(0, 1)*sigma/(k0*k0)
}

var presets = []Preset{
	{
		Name:        "rational",
		Description: "(z-1)(z-i)^2(z+1)^3/(z+i) on [-2,2]^2, three zeros, one pole",
		Func:        ratioFunc,
		InitialMesh: func() []complex128 {
			return mesh.RectangularDomain(complex(-2, -2), complex(2, 2), 0.1)
		},
		Params: func() grpf.Params {
			p := grpf.NewParams()
			p.Tolerance = 1e-9
			return p
		},
	},
	{
		Name:        "waveguide",
		Description: "dielectric waveguide dispersion relation on [-2,2]^2, six zeros, two poles",
		Func:        waveguideFunc,
		InitialMesh: func() []complex128 {
			return mesh.RectangularDomain(complex(-2, -2), complex(2, 2), 0.2)
		},
		Params: func() grpf.Params {
			p := grpf.NewParams()
			p.Tolerance = 1e-9
			return p
		},
	},
	{
		Name:        "graphene",
		Description: "graphene surface-plasmon transmission-line dispersion on [-100,400]^2",
		Func:        grapheneFunc,
		InitialMesh: func() []complex128 {
			return mesh.RectangularDomain(complex(-100, -100), complex(400, 400), 18)
		},
		Params: func() grpf.Params {
			p := grpf.NewParams()
			p.Tolerance = 1e-9
			p.MaxNodes = 1000000
			return p
		},
	},
	{
		Name:        "empty",
		Description: "f(z) = 1 on [-2,2]^2, no zeros, no poles",
		Func:        func(complex128) complex128 { return 1 },
		InitialMesh: func() []complex128 {
			return mesh.RectangularDomain(complex(-2, -2), complex(2, 2), 0.5)
		},
		Params: grpf.NewParams,
	},
	{
		Name:        "single-pole",
		Description: "f(z) = 1/z on [-1,1]^2, one pole at the origin",
		Func:        func(z complex128) complex128 { return 1 / z },
		InitialMesh: func() []complex128 {
			return mesh.RectangularDomain(complex(-1, -1), complex(1, 1), 0.2)
		},
		Params: func() grpf.Params {
			p := grpf.NewParams()
			p.Tolerance = 1e-6
			return p
		},
	},
}

func findPreset(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}
