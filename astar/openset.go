package astar

import (
	"container/heap"
	"slices"

	"github.com/katalvlaran/tilepath/searchgraph"
)

// openSet holds node ids discovered but not yet expanded.
type openSet interface {
	Len() int
	// add inserts id; id must not already be present.
	add(id int)
	// best returns the id with the lowest f-score without removing it,
	// or searchgraph.NoNode when empty.
	best() int
	// remove deletes id if present.
	remove(id int)
	// fix restores ordering after id's f-score decreased.
	fix(id int)
	clear()
}

// newOpenSet builds the open set chosen by kind over the shared scratch table.
func newOpenSet(kind OpenSetKind, state []nodeState) openSet {
	if kind == OpenSetHeap {
		return newHeapSet(state)
	}

	return &linearSet{state: state, ids: make([]int, 0, 16)}
}

// linearSet keeps ids in insertion order and scans for the minimum.
type linearSet struct {
	state []nodeState
	ids   []int
}

func (s *linearSet) Len() int { return len(s.ids) }

func (s *linearSet) add(id int) { s.ids = append(s.ids, id) }

// best returns the first id holding the minimum f-score.
func (s *linearSet) best() int {
	if len(s.ids) == 0 {
		return searchgraph.NoNode
	}
	bestID := s.ids[0]
	bestF := s.state[bestID].distanceToGoal
	for _, id := range s.ids[1:] {
		if f := s.state[id].distanceToGoal; f < bestF {
			bestID, bestF = id, f
		}
	}

	return bestID
}

// remove deletes id and keeps the remaining order, which decides ties.
func (s *linearSet) remove(id int) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
	}
}

func (s *linearSet) fix(int) {}

func (s *linearSet) clear() { s.ids = s.ids[:0] }

// heapItem is one open node. seq orders equal f-scores by insertion.
type heapItem struct {
	id  int
	seq int
}

// heapSet is a min-heap of open nodes ordered by (f-score, seq).
// pos[id] is the heap index of id, or -1.
type heapSet struct {
	state []nodeState
	items []heapItem
	pos   []int
	seq   int
}

func newHeapSet(state []nodeState) *heapSet {
	pos := make([]int, len(state))
	for i := range pos {
		pos[i] = -1
	}

	return &heapSet{state: state, pos: pos}
}

// Len returns the number of items in the heap.
func (h *heapSet) Len() int { return len(h.items) }

// Less orders by f-score, then by insertion.
func (h *heapSet) Less(i, j int) bool {
	fi, fj := h.state[h.items[i].id].distanceToGoal, h.state[h.items[j].id].distanceToGoal
	if fi != fj {
		return fi < fj
	}

	return h.items[i].seq < h.items[j].seq
}

// Swap swaps two items and their recorded positions.
func (h *heapSet) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].id] = i
	h.pos[h.items[j].id] = j
}

// Push appends x; called by heap.Push.
func (h *heapSet) Push(x any) {
	it := x.(heapItem)
	h.pos[it.id] = len(h.items)
	h.items = append(h.items, it)
}

// Pop removes the last item; called by heap.Pop and heap.Remove.
func (h *heapSet) Pop() any {
	n := len(h.items)
	it := h.items[n-1]
	h.items = h.items[:n-1]
	h.pos[it.id] = -1

	return it
}

func (h *heapSet) add(id int) {
	heap.Push(h, heapItem{id: id, seq: h.seq})
	h.seq++
}

func (h *heapSet) best() int {
	if len(h.items) == 0 {
		return searchgraph.NoNode
	}

	return h.items[0].id
}

func (h *heapSet) remove(id int) {
	if i := h.pos[id]; i >= 0 {
		heap.Remove(h, i)
	}
}

func (h *heapSet) fix(id int) {
	if i := h.pos[id]; i >= 0 {
		heap.Fix(h, i)
	}
}

func (h *heapSet) clear() {
	for _, it := range h.items {
		h.pos[it.id] = -1
	}
	h.items = h.items[:0]
	h.seq = 0
}
