// Package voxel implements the sparse three-dimensional grid of typed cells
// that placement and routing stamp blocks into (SPEC_FULL.md §3, "Voxel
// grid"). Conceptually the grid is an infinite mapping from (x,y,z) ∈ ℕ³ to
// Cell, defaulting to Empty everywhere; concretely it is a lazily-grown
// nested slice indexed z,y,x, the same growable-vector-of-vector-of-vector
// shape the original implementation's Space<T> used, adapted to Go's
// append-based growth.
//
// Grid is grounded on this module's teacher's gridgraph package (a 2-D
// integer grid treated as a graph) for its doc-comment density, generalized
// here to three dimensions and to a grid whose payload is a tagged Cell
// rather than a bare int. Grid takes no options.
package voxel
