// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkShutdown(t *testing.T) {
	raw := []byte{0x07, 0x00, 0x00, 0x08, 0x12, 0x34, 0x56, 0x78}

	c := &chunkShutdown{}
	require.NoError(t, c.unmarshal(raw))
	assert.Equal(t, uint32(0x12345678), c.cumulativeTSNAck)

	out, err := c.marshal()
	require.NoError(t, err)
	assert.Equal(t, raw, out)

	assert.ErrorIs(t, (&chunkShutdown{}).unmarshal([]byte{0x07, 0x00, 0x00, 0x04}), ErrInvalidChunkSize)
	assert.ErrorIs(t, (&chunkShutdown{}).unmarshal([]byte{0x08, 0x00, 0x00, 0x04}), ErrChunkTypeNotShutdown)
}

func TestChunkShutdownAck(t *testing.T) {
	raw := []byte{0x08, 0x00, 0x00, 0x04}

	c := &chunkShutdownAck{}
	require.NoError(t, c.unmarshal(raw))

	out, err := c.marshal()
	require.NoError(t, err)
	assert.Equal(t, raw, out)

	assert.ErrorIs(t, (&chunkShutdownAck{}).unmarshal([]byte{0x08, 0x00, 0x00, 0x05, 0x01}), ErrInvalidChunkSize)
	assert.ErrorIs(t, (&chunkShutdownAck{}).unmarshal([]byte{0x07, 0x00, 0x00, 0x04}), ErrChunkTypeNotShutdownAck)
}

func TestChunkShutdownComplete(t *testing.T) {
	for _, reflected := range []bool{false, true} {
		c := &chunkShutdownComplete{tagReflected: reflected}

		raw, err := c.marshal()
		require.NoError(t, err)

		parsed := &chunkShutdownComplete{}
		require.NoError(t, parsed.unmarshal(raw))
		assert.Equal(t, reflected, parsed.tagReflected)
	}

	assert.ErrorIs(t, (&chunkShutdownComplete{}).unmarshal([]byte{0x0e, 0x00, 0x00, 0x05, 0x01}), ErrInvalidChunkSize)
	assert.ErrorIs(t, (&chunkShutdownComplete{}).unmarshal([]byte{0x08, 0x00, 0x00, 0x04}),
		ErrChunkTypeNotShutdownComplete)
}
