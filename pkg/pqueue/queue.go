package pqueue

import (
	"math"
	"sort"
)

func WithCap(size uint) Option {
	return func(q *Queue) {
		q.cap = int(size)
	}
}

type Option func(*Queue)

type item struct {
	value interface{}
	prior float64
}

// New returns a queue kept in ascending priority order. Items with equal
// priority keep their push order. A queue created WithCap drops whatever falls
// past the cap.
func New(opts ...Option) *Queue {
	p := &Queue{cap: -1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type Queue struct {
	cap   int
	items []item
}

// Push inserts val after every item whose priority is not greater than
// priority. It reports whether val was kept.
func (q *Queue) Push(val interface{}, priority float64) bool {
	idx := sort.Search(len(q.items), func(i int) bool {
		return q.items[i].prior > priority
	})
	if q.cap >= 0 && idx >= q.cap {
		return false
	}
	q.items = append(q.items, item{})
	copy(q.items[idx+1:], q.items[idx:])
	q.items[idx] = item{value: val, prior: priority}
	if q.cap >= 0 && len(q.items) > q.cap {
		q.items = q.items[:q.cap]
	}
	return true
}

// Full reports whether a capped queue holds cap items.
func (q *Queue) Full() bool {
	return q.cap >= 0 && len(q.items) >= q.cap
}

// Worst returns the largest priority held, +Inf when the queue is empty.
func (q *Queue) Worst() float64 {
	if len(q.items) == 0 {
		return math.Inf(1)
	}
	return q.items[len(q.items)-1].prior
}

func (q *Queue) Len() int { return len(q.items) }

func (q *Queue) Seek(idx int) (interface{}, float64) {
	item := q.items[idx]
	return item.value, item.prior
}
