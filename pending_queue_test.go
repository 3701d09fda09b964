// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	noFragment = iota
	fragBegin
	fragMiddle
	fragEnd
)

func makeDataChunk(tsn uint32, unordered bool, frag int) *chunkPayloadData {
	var begin, end bool
	switch frag {
	case noFragment:
		begin = true
		end = true
	case fragBegin:
		begin = true
	case fragEnd:
		end = true
	}

	return &chunkPayloadData{
		tsn:               tsn,
		unordered:         unordered,
		beginningFragment: begin,
		endingFragment:    end,
		userData:          make([]byte, 10), // always 10 bytes
	}
}

func TestPendingQueue(t *testing.T) {
	t.Run("push and pop", func(t *testing.T) {
		pq := newPendingQueue()
		pq.push(makeDataChunk(0, false, noFragment))
		pq.push(makeDataChunk(1, false, noFragment))
		pq.push(makeDataChunk(2, false, noFragment))
		assert.Equal(t, 30, pq.getNumBytes())
		assert.Equal(t, 3, pq.size())

		for i := uint32(0); i < 3; i++ {
			c := pq.peek()
			require.NotNil(t, c)
			assert.Equal(t, i, c.tsn, "TSN should match")
			require.NoError(t, pq.pop(c))
		}

		assert.Nil(t, pq.peek())
		assert.Zero(t, pq.getNumBytes())
	})

	t.Run("unordered wins", func(t *testing.T) {
		pq := newPendingQueue()
		pq.push(makeDataChunk(0, false, noFragment))
		pq.push(makeDataChunk(1, true, noFragment))

		c := pq.peek()
		require.NotNil(t, c)
		assert.Equal(t, uint32(1), c.tsn)
		require.NoError(t, pq.pop(c))

		c = pq.peek()
		require.NotNil(t, c)
		assert.Equal(t, uint32(0), c.tsn)
		require.NoError(t, pq.pop(c))
	})

	t.Run("fragments stay together", func(t *testing.T) {
		pq := newPendingQueue()
		pq.push(makeDataChunk(0, false, fragBegin))
		pq.push(makeDataChunk(1, false, fragMiddle))

		c := pq.peek()
		require.NoError(t, pq.pop(c))

		// An unordered message queued mid-way must wait for the END fragment.
		pq.push(makeDataChunk(10, true, noFragment))
		pq.push(makeDataChunk(2, false, fragEnd))

		for _, want := range []uint32{1, 2, 10} {
			c = pq.peek()
			require.NotNil(t, c)
			assert.Equal(t, want, c.tsn)
			require.NoError(t, pq.pop(c))
		}
	})

	t.Run("pop out of turn", func(t *testing.T) {
		pq := newPendingQueue()
		first := makeDataChunk(0, false, noFragment)
		second := makeDataChunk(1, false, noFragment)
		pq.push(first)
		pq.push(second)

		assert.ErrorIs(t, pq.pop(second), ErrUnexpectedChunkPoppedOrdered)

		middle := makeDataChunk(5, true, fragMiddle)
		assert.ErrorIs(t, pq.pop(middle), ErrUnexpectedQState)
	})

	t.Run("unpush", func(t *testing.T) {
		pq := newPendingQueue()
		first := makeDataChunk(0, false, noFragment)
		begin := makeDataChunk(1, false, fragBegin)
		end := makeDataChunk(2, false, fragEnd)
		pq.push(first)
		pq.push(begin)
		pq.push(end)

		assert.False(t, pq.unpush(begin), "only the last chunk can be taken back")
		assert.True(t, pq.unpush(end))
		assert.True(t, pq.unpush(begin))
		assert.Equal(t, 10, pq.getNumBytes())
		assert.Same(t, first, pq.peek())

		assert.False(t, pq.unpush(makeDataChunk(3, true, noFragment)))
	})
}
