// Package tess is the thin facade over the external Delaunay
// triangulation library (internal/delaunay) that spec.md's Design Notes
// describe as a capability set, not an inheritance hierarchy: bulk
// insert, directed-edge iteration, triangle iteration, and per-vertex
// adjacency are the only four triangulation operations the GRPF engine
// needs, so those are the only four this package exposes, alongside
// plain accessors for the stored points. Swapping the underlying
// triangulation library only touches this file.
package tess

import (
	"github.com/EP-Guy/grpf/geom"
	"github.com/EP-Guy/grpf/internal/delaunay"
)

// MinCoord and MaxCoord are read once per grpf.Grpf call and cached on
// the BuildContext, never hard-coded into the pipeline.
const (
	MinCoord = delaunay.MinCoord
	MaxCoord = delaunay.MaxCoord
)

// Tessellation is the full Delaunay triangulation of every point
// inserted so far. It owns its point storage exclusively for the
// duration of one grpf.Grpf call.
type Tessellation struct {
	points []geom.Point
	tri    *delaunay.Triangulation

	// adjacency, keyed by point index, is rebuilt whenever tri changes.
	adjacency map[int][]int // vertex -> triangle indices touching it
}

// NewTessellation returns an empty Tessellation, pre-sized per the
// tess_size_hint the caller plans to insert.
func NewTessellation(sizeHint int) *Tessellation {
	return &Tessellation{
		points: make([]geom.Point, 0, sizeHint),
	}
}

// Insert bulk-inserts pts (already in scaled coordinates) and returns
// the Points created for them, indices continuing on from whatever was
// already present. It re-triangulates the full accumulated point set:
// internal/delaunay has no incremental-insert primitive, only a
// from-scratch static-set algorithm, so each Insert pays for a full
// retriangulation. No existing point's Index is ever reassigned.
func (t *Tessellation) Insert(pts []complex128) ([]geom.Point, error) {
	base := len(t.points)
	added := make([]geom.Point, 0, len(pts))
	for i, z := range pts {
		p := geom.NewPoint(z, base+i)
		t.points = append(t.points, p)
		added = append(added, p)
	}

	dpts := make([]complex128, len(t.points))
	for i, p := range t.points {
		dpts[i] = p.Z
	}

	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, err
	}
	t.tri = tri
	t.rebuildAdjacency()
	return added, nil
}

// NumPoints returns how many points are currently in the tessellation.
func (t *Tessellation) NumPoints() int {
	return len(t.points)
}

// Point returns the point at index i.
func (t *Tessellation) Point(i int) geom.Point {
	return t.points[i]
}

// SetQuadrant records the quadrant of the point at index i.
func (t *Tessellation) SetQuadrant(i int, q geom.Quadrant) {
	t.points[i].Quad = q
}

// Points returns every point currently in the tessellation, in
// insertion order.
func (t *Tessellation) Points() []geom.Point {
	return t.points
}

// Edges returns every directed solid edge of every triangle in the
// tessellation, as it currently stands.
func (t *Tessellation) Edges() []geom.Edge {
	if t.tri == nil {
		return nil
	}
	n := t.tri.NumTriangles()
	edges := make([]geom.Edge, 0, n*3)
	for i := 0; i < n; i++ {
		a, b, c := t.tri.Triangle(i)
		tr := geom.Triangle{A: a, B: b, C: c}
		te := tr.Edges()
		edges = append(edges, te[:]...)
	}
	return edges
}

// Triangles returns every solid triangle in the tessellation.
func (t *Tessellation) Triangles() []geom.Triangle {
	if t.tri == nil {
		return nil
	}
	n := t.tri.NumTriangles()
	out := make([]geom.Triangle, n)
	for i := 0; i < n; i++ {
		a, b, c := t.tri.Triangle(i)
		out[i] = geom.Triangle{A: a, B: b, C: c}
	}
	return out
}

// Adjacent returns every triangle incident to vertex v.
func (t *Tessellation) Adjacent(v int) []geom.Triangle {
	idxs := t.adjacency[v]
	out := make([]geom.Triangle, 0, len(idxs))
	n := t.tri.NumTriangles()
	for _, ti := range idxs {
		if ti >= n {
			continue
		}
		a, b, c := t.tri.Triangle(ti)
		out = append(out, geom.Triangle{A: a, B: b, C: c})
	}
	return out
}

func (t *Tessellation) rebuildAdjacency() {
	t.adjacency = make(map[int][]int)
	n := t.tri.NumTriangles()
	for i := 0; i < n; i++ {
		a, b, c := t.tri.Triangle(i)
		for _, v := range [3]int{a, b, c} {
			t.adjacency[v] = append(t.adjacency[v], i)
		}
	}
}
