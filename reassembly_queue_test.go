// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeStreamChunk(sid, ssn uint16, tsn uint32, frag int, data string) *chunkPayloadData {
	c := makeDataChunk(tsn, false, frag)
	c.streamIdentifier = sid
	c.streamSequenceNumber = ssn
	c.payloadType = PayloadTypeWebRTCString
	c.userData = []byte(data)

	return c
}

func tsnsOf(chunks []*chunkPayloadData) []uint32 {
	out := make([]uint32, len(chunks))
	for i, c := range chunks {
		out[i] = c.tsn
	}

	return out
}

func TestReassemblyQueue_Ordered(t *testing.T) {
	t.Run("single chunk", func(t *testing.T) {
		rq := newReassemblyQueue(0)
		assert.True(t, rq.push(makeStreamChunk(0, 0, 10, noFragment, "abc")))
		assert.Equal(t, 3, rq.getNumBytes())

		sets := rq.popComplete()
		require.Len(t, sets, 1)
		assert.Equal(t, []uint32{10}, tsnsOf(sets[0]))
		assert.Zero(t, rq.getNumBytes())
	})

	t.Run("fragments out of order", func(t *testing.T) {
		rq := newReassemblyQueue(0)
		assert.True(t, rq.push(makeStreamChunk(0, 0, 12, fragEnd, "c")))
		assert.True(t, rq.push(makeStreamChunk(0, 0, 10, fragBegin, "a")))
		assert.Empty(t, rq.popComplete())

		assert.True(t, rq.push(makeStreamChunk(0, 0, 11, fragMiddle, "b")))
		sets := rq.popComplete()
		require.Len(t, sets, 1)
		assert.Equal(t, []uint32{10, 11, 12}, tsnsOf(sets[0]))
	})

	t.Run("released in SSN order", func(t *testing.T) {
		rq := newReassemblyQueue(0)
		assert.True(t, rq.push(makeStreamChunk(0, 1, 11, noFragment, "second")))
		assert.Empty(t, rq.popComplete(), "SSN 1 waits for SSN 0")

		assert.True(t, rq.push(makeStreamChunk(0, 0, 10, noFragment, "first")))
		sets := rq.popComplete()
		require.Len(t, sets, 2)
		assert.Equal(t, []uint32{10}, tsnsOf(sets[0]))
		assert.Equal(t, []uint32{11}, tsnsOf(sets[1]))
	})

	t.Run("duplicates and stale SSNs", func(t *testing.T) {
		rq := newReassemblyQueue(0)
		assert.True(t, rq.push(makeStreamChunk(0, 0, 10, fragBegin, "a")))
		assert.False(t, rq.push(makeStreamChunk(0, 0, 10, fragBegin, "a")), "duplicate TSN")
		assert.True(t, rq.push(makeStreamChunk(0, 0, 11, fragEnd, "b")))
		require.Len(t, rq.popComplete(), 1)

		assert.False(t, rq.push(makeStreamChunk(0, 0, 12, noFragment, "late")), "SSN 0 was delivered")
		assert.False(t, rq.push(makeStreamChunk(1, 1, 13, noFragment, "x")), "other stream")
	})

	t.Run("SSN wraps", func(t *testing.T) {
		rq := newReassemblyQueue(0)
		rq.nextSSN = 0xffff
		assert.True(t, rq.push(makeStreamChunk(0, 0, 2, noFragment, "b")))
		assert.True(t, rq.push(makeStreamChunk(0, 0xffff, 1, noFragment, "a")))

		sets := rq.popComplete()
		require.Len(t, sets, 2)
		assert.Equal(t, []uint32{1}, tsnsOf(sets[0]))
		assert.Equal(t, []uint32{2}, tsnsOf(sets[1]))
		assert.Equal(t, uint16(1), rq.nextSSN)
	})

	t.Run("TSN wraps", func(t *testing.T) {
		rq := newReassemblyQueue(0)
		assert.True(t, rq.push(makeStreamChunk(0, 0, 0, fragEnd, "b")))
		assert.True(t, rq.push(makeStreamChunk(0, 0, 0xffffffff, fragBegin, "a")))

		sets := rq.popComplete()
		require.Len(t, sets, 1)
		assert.Equal(t, []uint32{0xffffffff, 0}, tsnsOf(sets[0]))
	})
}

func TestReassemblyQueue_Unordered(t *testing.T) {
	rq := newReassemblyQueue(0)

	u := func(tsn uint32, frag int) *chunkPayloadData {
		c := makeStreamChunk(0, 0, tsn, frag, "x")
		c.unordered = true

		return c
	}

	assert.True(t, rq.push(u(21, fragEnd)))
	assert.True(t, rq.push(u(30, noFragment)))

	sets := rq.popComplete()
	require.Len(t, sets, 1, "a complete unordered message does not wait for others")
	assert.Equal(t, []uint32{30}, tsnsOf(sets[0]))

	assert.True(t, rq.push(u(20, fragBegin)))
	assert.False(t, rq.push(u(20, fragBegin)))

	sets = rq.popComplete()
	require.Len(t, sets, 1)
	assert.Equal(t, []uint32{20, 21}, tsnsOf(sets[0]))
	assert.Zero(t, rq.getNumBytes())
}
