package grpf

// Params specifies the budgets and tolerances controlling one Grpf
// call. Field tags let the CLI round-trip a Params through YAML the
// same way the teacher's sample/solomesh settings and cmd/recast build
// settings do.
type Params struct {
	// MaxIterations caps the number of refinement passes.
	// [Limit: >= 1]
	MaxIterations int `yaml:"max_iterations"`

	// MaxNodes caps the total number of points ever inserted.
	// [Limit: >= 3]
	MaxNodes int `yaml:"max_nodes"`

	// SkinnyTriangle is the skinniness ratio above which a zone-2
	// triangle is split by centroid insertion.
	// [Limit: > 1]
	SkinnyTriangle float64 `yaml:"skinny_triangle"`

	// TessSizeHint pre-sizes the triangulation's point storage.
	// [Limit: >= 0, should be <= MaxNodes]
	TessSizeHint int `yaml:"tess_size_hint"`

	// Tolerance is the scaled-coordinate edge length below which
	// refinement of that edge stops.
	// [Limit: > 0]
	Tolerance float64 `yaml:"tolerance"`

	// Multithreading permits the quadrant-assignment phase to
	// evaluate f across worker goroutines.
	Multithreading bool `yaml:"multithreading"`
}

// NewParams returns a Params filled with the defaults from spec.md §6.
func NewParams() Params {
	return Params{
		MaxIterations:  100,
		MaxNodes:       500000,
		SkinnyTriangle: 3,
		TessSizeHint:   5000,
		Tolerance:      1e-9,
		Multithreading: false,
	}
}

// Validate checks Params for internal consistency. It never fails the
// call outright (per spec.md §7, a too-large TessSizeHint is a warning,
// not a precondition failure) but reports the detail bits a caller
// should be told about.
func (p Params) Validate() Status {
	var s Status
	if p.TessSizeHint > p.MaxNodes {
		s |= HintExceedsBudget
	}
	return s
}
