// Package pqueue implements a binary min-heap priority queue over grid cell
// indices, the planner's open set. Membership testing (FindIndexOfCell) is
// linear by design, matching the original firmware's array scan rather than
// adding a side index: the planner scores at most a few hundred cells per
// run, so the O(n) scan never dominates runtime, and keeping the heap as the
// single source of truth avoids a second structure that could drift out of
// sync with it.
package pqueue

// entry pairs a cell index with its priority (the planner's F-score).
type entry struct {
	cell     int
	priority uint32
}

// Queue is a binary min-heap ordered by ascending priority.
type Queue struct {
	items []entry
}

// New returns an empty queue with capacity hint preallocated.
func New(capacityHint int) *Queue {
	return &Queue{items: make([]entry, 0, capacityHint)}
}

// Len reports the number of cells currently queued.
func (q *Queue) Len() int {
	return len(q.items)
}

// Insert adds cell with the given priority and restores heap order.
func (q *Queue) Insert(cell int, priority uint32) {
	q.items = append(q.items, entry{cell: cell, priority: priority})
	q.SiftUp(len(q.items) - 1)
}

// Peek returns the cell with the lowest priority without removing it.
func (q *Queue) Peek() (cell int, priority uint32, ok bool) {
	if len(q.items) == 0 {
		return 0, 0, false
	}
	return q.items[0].cell, q.items[0].priority, true
}

// PopMin removes and returns the cell with the lowest priority.
func (q *Queue) PopMin() (cell int, priority uint32, ok bool) {
	if len(q.items) == 0 {
		return 0, 0, false
	}
	min := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items = q.items[:last]
	if len(q.items) > 0 {
		q.SiftDown(0)
	}
	return min.cell, min.priority, true
}

// FindIndexOfCell returns the heap-array index holding cell, or (0, false)
// if cell is not queued. Callers needing to reprioritize a cell already in
// the queue use this to locate it first.
func (q *Queue) FindIndexOfCell(cell int) (int, bool) {
	for i, e := range q.items {
		if e.cell == cell {
			return i, true
		}
	}
	return 0, false
}

// Reprioritize lowers (or raises) the priority of the cell at heap index i
// and restores heap order by calling SiftUp or SiftDown as appropriate.
// Callers obtain i from FindIndexOfCell.
func (q *Queue) Reprioritize(i int, priority uint32) {
	old := q.items[i].priority
	q.items[i].priority = priority
	if priority < old {
		q.SiftUp(i)
	} else if priority > old {
		q.SiftDown(i)
	}
}

// SiftUp restores heap order upward from index i, for callers that have
// just lowered the priority at i directly (e.g. A*/flood-fill updating an
// existing open-set entry's score in place before resorting it) rather
// than going through Reprioritize.
func (q *Queue) SiftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.items[parent].priority <= q.items[i].priority {
			break
		}
		q.items[parent], q.items[i] = q.items[i], q.items[parent]
		i = parent
	}
}

// SiftDown restores heap order downward from index i, for callers that
// have just raised the priority at i directly.
func (q *Queue) SiftDown(i int) {
	n := len(q.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && q.items[left].priority < q.items[smallest].priority {
			smallest = left
		}
		if right < n && q.items[right].priority < q.items[smallest].priority {
			smallest = right
		}
		if smallest == i {
			break
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
