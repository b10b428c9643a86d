// SPDX-License-Identifier: MIT

// Package heapq is the min-priority queue shared by dijkstra and astar.
//
// It follows the lazy decrease-key pattern: callers push a fresh entry when
// a priority improves and discard stale entries on pop. Entries with equal
// priority pop in insertion order, which keeps search results deterministic.
package heapq

import "container/heap"

type entry[T any] struct {
	value T
	prio  int64
	seq   uint64
}

type entries[T any] []entry[T]

func (e entries[T]) Len() int { return len(e) }

func (e entries[T]) Less(i, j int) bool {
	if e[i].prio != e[j].prio {
		return e[i].prio < e[j].prio
	}
	return e[i].seq < e[j].seq
}

func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[T]) Push(x any) { *e = append(*e, x.(entry[T])) }

func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	it := old[n-1]
	*e = old[:n-1]
	return it
}

// Queue is a min-heap of values keyed by int64 priority.
// The zero value is ready to use.
type Queue[T any] struct {
	items entries[T]
	seq   uint64
}

// Len is the number of queued entries, stale ones included.
func (q *Queue[T]) Len() int { return len(q.items) }

// Push adds v with priority prio.
// Complexity: O(log n)
func (q *Queue[T]) Push(v T, prio int64) {
	heap.Push(&q.items, entry[T]{value: v, prio: prio, seq: q.seq})
	q.seq++
}

// Pop removes the entry with the lowest priority. It panics on an empty queue.
// Complexity: O(log n)
func (q *Queue[T]) Pop() (T, int64) {
	it := heap.Pop(&q.items).(entry[T])
	return it.value, it.prio
}
