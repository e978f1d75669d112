package openset

import "container/heap"

// OpenSet is a priority set of comparable indices ordered by an int64
// f-score, supporting O(log n) pop-minimum and decrease-key-style Update.
//
// The zero value is not usable; construct with New.
type OpenSet[I comparable] struct {
	scoreOf map[I]int64
	buckets map[int64][]I
	scores  *scoreHeap
}

// New returns an empty OpenSet.
func New[I comparable]() *OpenSet[I] {
	sh := scoreHeap{}
	heap.Init(&sh)

	return &OpenSet[I]{
		scoreOf: make(map[I]int64),
		buckets: make(map[int64][]I),
		scores:  &sh,
	}
}

// Len returns the number of distinct items currently tracked.
func (s *OpenSet[I]) Len() int {
	return len(s.scoreOf)
}

// Contains reports whether item is currently tracked.
func (s *OpenSet[I]) Contains(item I) bool {
	_, ok := s.scoreOf[item]
	return ok
}

// Score returns item's current f-score, if tracked.
func (s *OpenSet[I]) Score(item I) (int64, bool) {
	score, ok := s.scoreOf[item]
	return score, ok
}

// Update sets item's f-score to score, inserting it if new or moving it out
// of its previous bucket if already present — the decrease-key operation
// A* needs on every edge relaxation that improves a neighbor's cost.
// Calling Update with a worse (larger) score than item's current one still
// moves it; callers (package astar) are expected to only call Update when
// score strictly improves on the previous value, per SPEC_FULL.md §4.2.
func (s *OpenSet[I]) Update(item I, score int64) {
	if old, ok := s.scoreOf[item]; ok {
		s.removeFromBucket(old, item)
	}

	s.scoreOf[item] = score
	bucket, exists := s.buckets[score]
	if !exists {
		s.buckets[score] = []I{item}
		heap.Push(s.scores, score)
		return
	}
	for _, existing := range bucket {
		if existing == item {
			return
		}
	}
	s.buckets[score] = append(bucket, item)
}

// removeFromBucket removes item from the bucket at score, deleting the
// bucket entirely if it becomes empty. The now-empty score is left in the
// heap; Pop lazily discards stale (bucket-less) scores when it encounters
// them, the same lazy-deletion trick lvlath/dijkstra uses for stale heap
// entries instead of paying for an explicit heap-removal operation.
func (s *OpenSet[I]) removeFromBucket(score int64, item I) {
	bucket := s.buckets[score]
	for i, existing := range bucket {
		if existing == item {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(s.buckets, score)
	} else {
		s.buckets[score] = bucket
	}
}

// Pop removes and returns the item with the smallest current f-score.
// ok is false if the set is empty.
func (s *OpenSet[I]) Pop() (item I, ok bool) {
	for s.scores.Len() > 0 {
		score := (*s.scores)[0]
		bucket, exists := s.buckets[score]
		if !exists || len(bucket) == 0 {
			heap.Pop(s.scores) // stale score left over from a since-emptied bucket
			continue
		}

		item = bucket[0]
		bucket = bucket[1:]
		if len(bucket) == 0 {
			delete(s.buckets, score)
			heap.Pop(s.scores)
		} else {
			s.buckets[score] = bucket
		}
		delete(s.scoreOf, item)

		return item, true
	}

	return item, false
}

// scoreHeap is a min-heap of int64 f-scores, possibly containing stale
// entries for scores whose bucket has since emptied; Pop discards those.
type scoreHeap []int64

func (h scoreHeap) Len() int            { return len(h) }
func (h scoreHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h scoreHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoreHeap) Push(x interface{}) { *h = append(*h, x.(int64)) }
func (h *scoreHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
