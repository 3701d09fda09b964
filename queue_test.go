// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	queu := newQueue[int](32)
	assert.Zero(t, queu.size())
	assert.True(t, queu.empty())

	// test push & pop
	for i := 1; i < 33; i++ {
		queu.pushBack(i)
	}
	assert.Equal(t, 32, queu.size())
	assert.Equal(t, 5, queu.at(4))
	for i := 1; i < 33; i++ {
		assert.Equal(t, i, queu.front())
		assert.Equal(t, i, queu.popFront())
	}
	assert.Zero(t, queu.size())

	queu.pushBack(10)
	queu.pushBack(11)
	assert.Equal(t, 2, queu.size())
	assert.Equal(t, 11, queu.at(1))
	assert.Equal(t, 10, queu.front())
	assert.Equal(t, 10, queu.popFront())
	assert.Equal(t, 11, queu.popFront())

	// test grow capacity
	for i := 0; i < 64; i++ {
		queu.pushBack(i)
	}
	assert.Equal(t, 64, queu.size())
	assert.Equal(t, 2, queu.at(2))
	for i := 0; i < 64; i++ {
		assert.Equal(t, i, queu.front())
		assert.Equal(t, i, queu.popFront())
	}
}

func TestQueue_Drain(t *testing.T) {
	queu := newQueue[string](0)
	queu.pushBack("a")
	queu.pushBack("b")
	queu.popFront()
	queu.pushBack("c")

	assert.Equal(t, []string{"b", "c"}, queu.drain())
	assert.True(t, queu.empty())
	assert.Empty(t, queu.drain())
}

func TestQueue_PanicsWhenEmpty(t *testing.T) {
	queu := newQueue[int](0)

	assert.Panics(t, func() { queu.popFront() })
	assert.Panics(t, func() { queu.front() })
	assert.Panics(t, func() { queu.at(0) })
}

func TestQueue_PopBack(t *testing.T) {
	queu := newQueue[int](0)
	// Wrap the head past the end of the buffer before pushing from the back.
	for i := 0; i < minQueueCap-2; i++ {
		queu.pushBack(-1)
		queu.popFront()
	}
	for i := 0; i < 5; i++ {
		queu.pushBack(i)
	}

	assert.Equal(t, 4, queu.popBack())
	assert.Equal(t, 3, queu.popBack())
	assert.Equal(t, []int{0, 1, 2}, queu.drain())

	assert.Panics(t, func() { queu.popBack() })
}

func TestQueue_GrowWrapped(t *testing.T) {
	queu := newQueue[int](0)
	for i := 0; i < 10; i++ {
		queu.pushBack(-1)
		queu.popFront()
	}

	// Fill past capacity while the live region wraps around the buffer end.
	for i := 0; i < minQueueCap*2+1; i++ {
		queu.pushBack(i)
	}
	for i := 0; i < minQueueCap*2+1; i++ {
		assert.Equal(t, i, queu.at(i))
	}
	assert.Equal(t, minQueueCap*2+1, len(queu.drain()))
}
