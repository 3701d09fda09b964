// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import "fmt"

// queue is a growable double-ended ring buffer. The backing slice length is
// always a power of two so positions wrap with a mask. It is not safe for
// concurrent use.
type queue[T any] struct {
	buf   []T
	head  int
	count int
}

const minQueueCap = 16

func newQueue[T any](capacity int) *queue[T] {
	queueCap := minQueueCap
	for queueCap < capacity {
		queueCap <<= 1
	}

	return &queue[T]{
		buf: make([]T, queueCap),
	}
}

func (q *queue[T]) index(i int) int {
	return (q.head + i) & (len(q.buf) - 1)
}

func (q *queue[T]) size() int {
	return q.count
}

func (q *queue[T]) empty() bool {
	return q.count == 0
}

func (q *queue[T]) pushBack(ele T) {
	q.growIfFull()
	q.buf[q.index(q.count)] = ele
	q.count++
}

func (q *queue[T]) popFront() T {
	if q.count <= 0 {
		panic("popFront() called on empty queue")
	}

	var zeroVal T
	ele := q.buf[q.head]
	q.buf[q.head] = zeroVal
	q.head = q.index(1)
	q.count--

	return ele
}

// popBack removes the most recently pushed element.
func (q *queue[T]) popBack() T {
	if q.count <= 0 {
		panic("popBack() called on empty queue")
	}

	var zeroVal T
	last := q.index(q.count - 1)
	ele := q.buf[last]
	q.buf[last] = zeroVal
	q.count--

	return ele
}

func (q *queue[T]) front() T {
	if q.count <= 0 {
		panic("front() called on empty queue")
	}

	return q.buf[q.head]
}

func (q *queue[T]) at(i int) T {
	if i < 0 || i >= q.count {
		panic(fmt.Sprintf("index %d out of range %d", i, q.count))
	}

	return q.buf[q.index(i)]
}

// drain removes every element and returns them oldest first.
func (q *queue[T]) drain() []T {
	out := q.copyOut(make([]T, q.count))

	clear(q.buf)
	q.head = 0
	q.count = 0

	return out
}

// copyOut copies the elements in order into dst, which must hold q.count of them.
func (q *queue[T]) copyOut(dst []T) []T {
	if end := q.head + q.count; end <= len(q.buf) {
		copy(dst, q.buf[q.head:end])
	} else {
		n := copy(dst, q.buf[q.head:])
		copy(dst[n:], q.buf[:q.count-n])
	}

	return dst
}

func (q *queue[T]) growIfFull() {
	if q.count < len(q.buf) {
		return
	}

	q.buf = q.copyOut(make([]T, len(q.buf)<<1))
	q.head = 0
}
