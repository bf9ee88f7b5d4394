package cdcl

import "github.com/rhartert/yagh"

// frequencyOrder selects the next unassigned variable with the maximum
// literal-occurrence frequency across the clause database, breaking ties
// by smallest variable index.
//
// Scores live in a decrease/increase-key binary heap instead of being
// recomputed by rescanning all variables on every decision. Variables
// are registered in index order, and yagh.IntMap breaks equal-priority
// ties by insertion order, which gives the smallest-index tie-break for
// free. Keys are stored negated because the heap pops its minimum and
// this selects the maximum frequency.
type frequencyOrder struct {
	heap *yagh.IntMap[int]
}

func newFrequencyOrder() *frequencyOrder {
	return &frequencyOrder{heap: yagh.New[int](0)}
}

// addVariable registers variable v (in increasing index order) with its
// initial frequency.
func (o *frequencyOrder) addVariable(v, freq int) {
	o.heap.GrowBy(1)
	o.heap.Put(v, -freq)
}

// bump updates v's key after its frequency changed while it is still
// unassigned. It is a no-op if v is not currently in the heap, i.e. it was
// popped by selectNext and has not been reinserted yet (see selectNext).
func (o *frequencyOrder) bump(v, freq int) {
	if o.heap.Contains(v) {
		o.heap.Put(v, -freq)
	}
}

// reinsert returns v to the pool of selectable variables after it has
// been unassigned, keyed by its restored frequency.
func (o *frequencyOrder) reinsert(v, freq int) {
	o.heap.Put(v, -freq)
}

// selectNext pops variables in max-frequency, smallest-index order,
// discarding any that isAssigned reports as already assigned. A variable
// becomes assigned either by being returned from selectNext (a decision)
// or by unit propagation; in the latter case its heap entry is simply
// stale until the next time it is popped, at which point it is dropped
// here rather than returned. It is restored via reinsert when the
// variable is later unassigned. selectNext reports false if every
// variable is assigned.
func (o *frequencyOrder) selectNext(isAssigned func(v int) bool) (int, bool) {
	for {
		item, ok := o.heap.Pop()
		if !ok {
			return 0, false
		}
		if isAssigned(item.Elem) {
			continue
		}
		return item.Elem, true
	}
}
