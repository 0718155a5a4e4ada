package colour

import "container/heap"

// boxQueue is a max-priority queue of vbox pointers ordered by volume
// descending, tiebroken by ordinal ascending so that iteration order across
// runs does not influence output for tied-volume boxes. It implements
// container/heap.Interface — Go's off-the-shelf priority queue, the
// standard way to get a binary heap without pulling in a third-party
// collection library (see DESIGN.md).
type boxQueue []*vbox

func (q boxQueue) Len() int { return len(q) }

func (q boxQueue) Less(i, j int) bool {
	vi, vj := q[i].volume(), q[j].volume()
	if vi != vj {
		return vi > vj // max-heap on volume
	}
	return q[i].ordinal < q[j].ordinal
}

func (q boxQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *boxQueue) Push(x any) {
	*q = append(*q, x.(*vbox)) //nolint:forcetypeassert
}

func (q *boxQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// popMax removes and returns the box with the largest volume.
func popMax(q *boxQueue) *vbox {
	return heap.Pop(q).(*vbox) //nolint:forcetypeassert
}

// pushBox inserts a box into the queue, preserving heap order.
func pushBox(q *boxQueue, b *vbox) {
	heap.Push(q, b)
}
