// Package openset implements the priority structure package astar uses to
// pick the next node to expand: pop the index with the smallest f-score in
// O(log n), and decrease-key an index already present without duplicating
// it (SPEC_FULL.md §4.2).
//
// This module's teacher, lvlath/dijkstra, solves the analogous problem with
// a lazy-decrease-key container/heap: pushing a fresh heap entry on every
// relaxation and ignoring stale pops once a vertex is marked visited. The
// router's A* has no such "visited" bookkeeping to lean on — the same index
// can legitimately be pushed, popped, and reinserted many times while a
// cheaper route is still being discovered — so this package instead follows
// the two-map design SPEC_FULL.md names explicitly: a map from index to its
// current f-score, and an ordered map from f-score to the bucket of indices
// currently at that score. Update removes an index from its old bucket (if
// present) and inserts it into the new one; Pop takes the first index from
// the lowest-scored bucket.
//
// The "ordered map from score to bucket" is realized with a small score-only
// min-heap (container/heap, the same toolbox lvlath/dijkstra reaches for)
// tracking the distinct scores currently in use, paired with a plain Go map
// from score to bucket — Go has no built-in ordered map, and a binary heap
// of O(log n) distinct scores is the idiomatic substitute the ecosystem
// reaches for in this situation.
package openset
