// Package grpf implements the core of a Global complex Roots and Poles
// Finding engine: given a complex-valued function f and a bounded
// region of the plane, Grpf returns the points where f has a zero or a
// pole, by sampling f on an adaptively refined Delaunay triangulation,
// classifying samples by quadrant, finding triangulation edges whose
// endpoints sit in diagonally opposite quadrants, refining the mesh
// around those edges, extracting the closed contours they bound, and
// applying the discretized Cauchy argument principle along each
// contour.
//
// The triangulation primitive, the initial-mesh generator and the
// geometric primitives live in sibling packages (tess, mesh, geom);
// this package holds the four algorithms that are this engine's reason
// for existing: candidate-edge detection, adaptive refinement, contour
// extraction and region walking, and the argument-principle evaluator.
package grpf
