// Package delaunay is the external Delaunay triangulation primitive
// spec.md §6 treats as an out-of-scope collaborator: given a static set
// of points it builds their Delaunay triangulation by sorting points
// around a seed circumcenter, advancing a convex hull represented as a
// hashed doubly-linked list, and legalizing edges (flipping them until
// the empty-circumcircle property holds).
//
// It never re-triangulates incrementally: Triangulate recomputes the
// whole triangulation from the point set handed to it. tess.Tessellation
// is the facade that gives callers bulk-insert semantics on top of that.
package delaunay

import (
	"errors"
	"math"
	"sort"
)

// MinCoord and MaxCoord are the coordinate span this triangulator
// requires its input points to lie within. grpf reads these once per
// run rather than hard-coding them (spec.md §9, "Global constants from
// the triangulation library").
const (
	MinCoord = -1.0
	MaxCoord = 1.0
)

const epsilon = 1e-14

var unreached = math.Inf(1)

// Triangulation is the result of triangulating a point set: Triangles
// holds vertex indices in groups of three, and Halfedges holds, for
// each directed triangle edge, the index of its opposite directed edge
// (or -1 on the hull boundary).
type Triangulation struct {
	Points    []complex128
	Triangles []int
	Halfedges []int
}

// Triangulate computes the Delaunay triangulation of pts. It returns an
// error if pts has fewer than 3 entries or if every candidate third
// point for the seed triangle produces a degenerate (zero-area)
// circumcircle, meaning no triangulation exists for the input (e.g. all
// points collinear).
func Triangulate(pts []complex128) (*Triangulation, error) {
	if len(pts) < 3 {
		return nil, errors.New("delaunay: need at least 3 points to triangulate")
	}
	b := newBuilder(pts)
	if err := b.build(); err != nil {
		return nil, err
	}
	return &Triangulation{
		Points:    pts,
		Triangles: b.triangles,
		Halfedges: b.halfedges,
	}, nil
}

// NumTriangles returns the number of triangles in the triangulation.
func (t *Triangulation) NumTriangles() int {
	return len(t.Triangles) / 3
}

// Triangle returns the three point indices of triangle i.
func (t *Triangulation) Triangle(i int) (a, b, c int) {
	return t.Triangles[i*3], t.Triangles[i*3+1], t.Triangles[i*3+2]
}

// hullEntry is one vertex of the advancing-front convex hull, kept in a
// circular doubly-linked list so the sweep can splice entries in and
// out in O(1) as it walks around the point currently being inserted.
type hullEntry struct {
	point      int
	edge       int
	prev, next *hullEntry
}

func linkHullEntry(store []hullEntry, point int, after *hullEntry) *hullEntry {
	e := &store[point]
	e.point = point
	if after == nil {
		e.prev, e.next = e, e
		return e
	}
	e.next = after.next
	e.prev = after
	after.next.prev = e
	after.next = e
	return e
}

func (e *hullEntry) unlink() *hullEntry {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.point = -1
	return e.prev
}

// builder holds the mutable state of one triangulation run: the
// sweep order, the advancing hull, the spatial hash used to seed hull
// walks in O(1) amortized, and the growing triangle/halfedge arrays.
type builder struct {
	points []complex128

	order   []int     // point indices, sorted by distance to center
	distSq  []float64 // squared distance of each point to center
	center  complex128

	triangles []int
	halfedges []int
	numAdded  int

	hullHead *hullEntry
	hash     []*hullEntry
}

func newBuilder(pts []complex128) *builder {
	return &builder{points: pts}
}

func (b *builder) Len() int { return len(b.order) }
func (b *builder) Swap(i, j int) { b.order[i], b.order[j] = b.order[j], b.order[i] }
func (b *builder) Less(i, j int) bool {
	pi, pj := b.order[i], b.order[j]
	if d1, d2 := b.distSq[pi], b.distSq[pj]; d1 != d2 {
		return d1 < d2
	}
	zi, zj := b.points[pi], b.points[pj]
	if real(zi) != real(zj) {
		return real(zi) < real(zj)
	}
	return imag(zi) < imag(zj)
}

func (b *builder) build() error {
	i0, i1, i2, err := b.seedTriangle()
	if err != nil {
		return err
	}

	if orientation(b.points[i0], b.points[i1], b.points[i2]) < 0 {
		i1, i2 = i2, i1
	}
	b.center = circumcenter(b.points[i0], b.points[i1], b.points[i2])

	n := len(b.points)
	b.distSq = make([]float64, n)
	b.order = make([]int, n)
	for i, p := range b.points {
		b.order[i] = i
		b.distSq[i] = sqDist(p, b.center)
	}
	sort.Sort(b)

	b.hash = make([]*hullEntry, int(math.Ceil(math.Sqrt(float64(n)))))
	hullStore := make([]hullEntry, n)

	e := linkHullEntry(hullStore, i0, nil)
	e.edge = 0
	b.seedHash(e)
	e = linkHullEntry(hullStore, i1, e)
	e.edge = 1
	b.seedHash(e)
	e = linkHullEntry(hullStore, i2, e)
	e.edge = 2
	b.seedHash(e)
	b.hullHead = e

	maxTriangles := 2*n - 5
	if maxTriangles < 1 {
		maxTriangles = 1
	}
	b.triangles = make([]int, maxTriangles*3)
	b.halfedges = make([]int, maxTriangles*3)
	b.addFace(i0, i1, i2, -1, -1, -1)

	var lastInserted complex128 = complex(unreached, unreached)
	for _, i := range b.order {
		p := b.points[i]
		if sqDist(p, lastInserted) < epsilon {
			continue
		}
		lastInserted = p
		if i == i0 || i == i1 || i == i2 {
			continue
		}
		b.insert(i, p, hullStore)
	}

	b.triangles = b.triangles[:b.numAdded]
	b.halfedges = b.halfedges[:b.numAdded]
	return nil
}

// seedTriangle picks the three starting vertices: the point nearest the
// bounding-box center, its nearest neighbor, and whichever remaining
// point gives the smallest circumradius over those two — the smallest
// well-formed triangle to grow the hull from.
func (b *builder) seedTriangle() (i0, i1, i2 int, err error) {
	pts := b.points
	x0, x1 := real(pts[0]), real(pts[0])
	y0, y1 := imag(pts[0]), imag(pts[0])
	for _, p := range pts {
		x0, x1 = math.Min(x0, real(p)), math.Max(x1, real(p))
		y0, y1 = math.Min(y0, imag(p)), math.Max(y1, imag(p))
	}
	mid := complex((x0+x1)/2, (y0+y1)/2)

	best := unreached
	for i, p := range pts {
		if d := sqDist(p, mid); d < best {
			i0, best = i, d
		}
	}

	best = unreached
	for i, p := range pts {
		if i == i0 {
			continue
		}
		if d := sqDist(p, pts[i0]); d > 0 && d < best {
			i1, best = i, d
		}
	}

	best = unreached
	for i, p := range pts {
		if i == i0 || i == i1 {
			continue
		}
		if r := circumRadius(pts[i0], pts[i1], p); r < best {
			i2, best = i, r
		}
	}
	if best == unreached {
		return 0, 0, 0, errors.New("delaunay: no triangulation exists for this input")
	}
	return i0, i1, i2, nil
}

// insert adds point i (at p) to the hull, fanning new triangles over
// every hull edge p can see, on both sides of the entry point found via
// the spatial hash, then legalizing every new edge.
func (b *builder) insert(i int, p complex128, hullStore []hullEntry) {
	start := b.hullWalkStart(p)
	e := start
	for orientation(p, b.points[e.point], b.points[e.next.point]) >= 0 {
		e = e.next
		if e == start {
			return // p is inside the current hull; nothing to do
		}
	}
	wrapped := e == start

	tri := b.addFace(e.point, i, e.next.point, -1, -1, e.edge)
	e.edge = b.legalize(tri + 2)
	e = linkHullEntry(hullStore, i, e)

	fwd := e.next
	for orientation(p, b.points[fwd.point], b.points[fwd.next.point]) < 0 {
		tri = b.addFace(fwd.point, i, fwd.next.point, fwd.prev.edge, -1, fwd.edge)
		fwd.prev.edge = b.legalize(tri + 2)
		b.hullHead = fwd.unlink()
		fwd = fwd.next
	}

	if wrapped {
		back := e.prev
		for orientation(p, b.points[back.prev.point], b.points[back.point]) < 0 {
			tri = b.addFace(back.prev.point, i, back.point, -1, back.edge, back.prev.edge)
			b.legalize(tri + 2)
			back.prev.edge = tri
			b.hullHead = back.unlink()
			back = back.prev
		}
	}

	b.seedHash(e)
	b.seedHash(e.prev)
}

// hullWalkStart returns a hull entry near p, found via the spatial
// hash, that's guaranteed to have been seen by a previous seedHash call
// (its point index is still live) so the caller can start its visibility
// walk from a nearby entry instead of the whole hull.
func (b *builder) hullWalkStart(p complex128) *hullEntry {
	key := b.hashKey(p)
	var e *hullEntry
	for j := 0; j < len(b.hash); j++ {
		e = b.hash[key]
		if e != nil && e.point >= 0 {
			break
		}
		key++
		if key >= len(b.hash) {
			key = 0
		}
	}
	return e.prev
}

func (b *builder) hashKey(p complex128) int {
	return int(pseudoAngle(p-b.center)*float64(len(b.hash))) % len(b.hash)
}

func (b *builder) seedHash(e *hullEntry) {
	b.hash[b.hashKey(b.points[e.point])] = e
}

func (b *builder) addFace(p0, p1, p2, opp0, opp1, opp2 int) int {
	i := b.numAdded
	b.triangles[i] = p0
	b.triangles[i+1] = p1
	b.triangles[i+2] = p2
	b.glue(i, opp0)
	b.glue(i+1, opp1)
	b.glue(i+2, opp2)
	b.numAdded += 3
	return i
}

func (b *builder) glue(a, bHalf int) {
	b.halfedges[a] = bHalf
	if bHalf >= 0 {
		b.halfedges[bHalf] = a
	}
}

// legalize walks the edge a shares with its neighbor, flipping it when
// the neighbor's opposite vertex lies inside a's circumcircle, and
// recurses onto the two new edges that flip exposes. It's written
// iteratively with an explicit stack (the shape the canonical
// Delaunator sweep uses) rather than recursively, to keep stack depth
// bounded independent of how many flips cascade.
func (b *builder) legalize(a int) int {
	var stack []int
	ar := 0

	for {
		opp := b.halfedges[a]
		a0 := a - a%3
		ar = a0 + (a+2)%3

		if opp < 0 {
			if len(stack) == 0 {
				return ar
			}
			a, stack = stack[len(stack)-1], stack[:len(stack)-1]
			continue
		}

		opp0 := opp - opp%3
		al := a0 + (a+1)%3
		oppLeft := opp0 + (opp+2)%3

		p0 := b.triangles[ar]
		pr := b.triangles[a]
		pl := b.triangles[al]
		p1 := b.triangles[oppLeft]

		if inCircle(b.points[p0], b.points[pr], b.points[pl], b.points[p1]) {
			b.triangles[a] = p1
			b.triangles[opp] = p0

			if b.halfedges[oppLeft] < 0 {
				e := b.hullHead
				for {
					if e.edge == oppLeft {
						e.edge = a
						break
					}
					e = e.next
					if e == b.hullHead {
						break
					}
				}
			}

			b.glue(a, b.halfedges[oppLeft])
			b.glue(opp, b.halfedges[ar])
			b.glue(ar, oppLeft)

			oppRight := opp0 + (opp+1)%3
			stack = append(stack, oppRight)
		} else {
			if len(stack) == 0 {
				return ar
			}
			a, stack = stack[len(stack)-1], stack[:len(stack)-1]
		}
	}
}

// orientation is twice the signed area of triangle (p, q, r): positive
// when p, q, r turn clockwise, negative when they turn counterclockwise.
func orientation(p, q, r complex128) float64 {
	return imag(q-p)*real(r-q) - real(q-p)*imag(r-q)
}

func sqDist(p, q complex128) float64 {
	d := p - q
	return real(d)*real(d) + imag(d)*imag(d)
}

func circumRadius(a, b, c complex128) float64 {
	d, e := b-a, c-a
	dx, dy := real(d), imag(d)
	ex, ey := real(e), imag(e)

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	cross := dx*ey - dy*ex
	if cross == 0 {
		return unreached
	}

	x := (ey*bl - dy*cl) * 0.5 / cross
	y := (dx*cl - ex*bl) * 0.5 / cross
	return x*x + y*y
}

func circumcenter(a, b, c complex128) complex128 {
	d, e := b-a, c-a
	dx, dy := real(d), imag(d)
	ex, ey := real(e), imag(e)

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	cross := dx*ey - dy*ex

	x := real(a) + (ey*bl-dy*cl)*0.5/cross
	y := imag(a) + (dx*cl-ex*bl)*0.5/cross
	return complex(x, y)
}

func inCircle(a, b, c, p complex128) bool {
	d, e, f := a-p, b-p, c-p
	dx, dy := real(d), imag(d)
	ex, ey := real(e), imag(e)
	fx, fy := real(f), imag(f)

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	det := dx*(ey*cp-bp*fy) - dy*(ex*cp-bp*fx) + ap*(ex*fy-ey*fx)
	return det > 0
}

// pseudoAngle returns a monotonic pseudo-angle in [0, 1] for d (1 only
// through rounding, which hashKey wraps back to 0), cheaper
// than atan2 and sufficient for the hash-table ordering it feeds.
func pseudoAngle(d complex128) float64 {
	dx, dy := real(d), imag(d)
	p := dx / (math.Abs(dx) + math.Abs(dy))
	if dy > 0 {
		return (3 - p) / 4
	}
	return (1 + p) / 4
}
