// Package geom defines the geometric primitives shared by the GRPF
// pipeline: complex-valued points carrying a quadrant tag, edges and
// triangles described as ordered index tuples, and the affine scaling
// transform between a caller's domain and the triangulation library's
// required coordinate span.
//
// Identity of a Point is its Index, never its coordinates; two Points
// compare equal only when their indices match.
package geom
