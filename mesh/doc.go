// Package mesh produces the initial seed points GRPF triangulates
// before refinement begins. Both producers are straightforward
// geometric samplers, the out-of-scope collaborator spec.md §1 calls
// "the initial mesh generator for rectangles and disks" — the
// interesting algorithms live in the grpf package, not here.
package mesh
