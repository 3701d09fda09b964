// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkForwardTSN_Success(t *testing.T) {
	tt := [][]byte{
		{0xc0, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x03},
		{0xc0, 0x00, 0x00, 0x0c, 0x00, 0x00, 0x00, 0x03, 0x00, 0x04, 0x00, 0x05},
		{0xc0, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x03, 0x00, 0x04, 0x00, 0x05, 0x00, 0x06, 0x00, 0x07},
	}

	for i, binary := range tt {
		actual := &chunkForwardTSN{}
		require.NoError(t, actual.unmarshal(binary), "failed to unmarshal #%d", i)
		assert.Equal(t, uint32(3), actual.newCumulativeTSN)

		b, err := actual.marshal()
		require.NoError(t, err, "failed to marshal #%d", i)
		assert.Equal(t, binary, b)
	}
}

func TestChunkForwardTSN_Failure(t *testing.T) {
	tt := []struct {
		name   string
		binary []byte
		err    error
	}{
		{"chunk header too short", []byte{0xc0}, ErrChunkHeaderTooSmall},
		{"missing cumulative tsn", []byte{0xc0, 0x00, 0x00, 0x05, 0x00}, ErrTruncatedChunk},
		{"partial stream block", []byte{0xc0, 0x00, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x03, 0x00, 0x04}, ErrForwardTSNInvalidStreamBlock},
		{"wrong type", []byte{0x07, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x03}, ErrChunkTypeNotForwardTSN},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			actual := &chunkForwardTSN{}
			assert.ErrorIs(t, actual.unmarshal(tc.binary), tc.err)
		})
	}
}
