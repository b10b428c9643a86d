package heapq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/advent/internal/heapq"
)

func TestQueue_OrderAndTies(t *testing.T) {
	var q heapq.Queue[string]
	q.Push("c", 3)
	q.Push("a1", 1)
	q.Push("b", 2)
	q.Push("a2", 1)
	q.Push("a3", 1)
	assert.Equal(t, 5, q.Len())

	var got []string
	for q.Len() > 0 {
		v, _ := q.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "b", "c"}, got)
}

func TestQueue_PopPriority(t *testing.T) {
	var q heapq.Queue[int]
	q.Push(7, -4)
	v, p := q.Pop()
	assert.Equal(t, 7, v)
	assert.EqualValues(t, -4, p)
	assert.Panics(t, func() { q.Pop() })
}
