package sweep

import "container/heap"

// eventQueue is a min-heap of event handles in sweep order.
type eventQueue struct {
	a *arena
	h []int
}

func (q *eventQueue) Len() int           { return len(q.h) }
func (q *eventQueue) Less(i, j int) bool { return q.a.compareEvents(q.h[i], q.h[j]) < 0 }
func (q *eventQueue) Swap(i, j int)      { q.h[i], q.h[j] = q.h[j], q.h[i] }
func (q *eventQueue) Push(x any)         { q.h = append(q.h, x.(int)) }
func (q *eventQueue) Pop() any {
	old := q.h
	n := len(old)
	x := old[n-1]
	q.h = old[:n-1]

	return x
}

// push adds handle h.
func (q *eventQueue) push(h int) { heap.Push(q, h) }

// pop removes and returns the first handle in sweep order.
func (q *eventQueue) pop() int { return heap.Pop(q).(int) }

// clear drops every queued event.
func (q *eventQueue) clear() { q.h = q.h[:0] }
