// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testResetRequest = []byte{
		0x00, 0x0d, 0x00, 0x14,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x04, 0x00, 0x05,
	}
	testResetRequestOneStream = []byte{
		0x00, 0x0d, 0x00, 0x12,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x04,
	}
	testReconfigResponse = []byte{
		0x00, 0x10, 0x00, 0x0c,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x01,
	}
)

func TestChunkReconfig_Success(t *testing.T) {
	tt := []struct {
		name   string
		binary []byte
		params int
	}{
		{"single request", append([]byte{0x82, 0x00, 0x00, 0x18}, padByte(append([]byte{}, testResetRequestOneStream...), 2)...), 1},
		{"request and response", append(append([]byte{0x82, 0x00, 0x00, 0x24}, testResetRequest...), testReconfigResponse...), 2},
		{"response only", append([]byte{0x82, 0x00, 0x00, 0x10}, testReconfigResponse...), 1},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			actual := &chunkReconfig{}
			require.NoError(t, actual.unmarshal(tc.binary))
			assert.Len(t, actual.params, tc.params)

			abort, err := actual.check()
			assert.False(t, abort)
			assert.NoError(t, err)

			b, err := actual.marshal()
			require.NoError(t, err)
			assert.Equal(t, tc.binary, b)
		})
	}
}

func TestChunkReconfig_Fields(t *testing.T) {
	raw := append(append([]byte{0x82, 0x00, 0x00, 0x24}, testResetRequest...), testReconfigResponse...)

	c, err := parseChunk(raw)
	require.NoError(t, err)
	reconfig, ok := c.(*chunkReconfig)
	require.True(t, ok)

	requests := reconfig.resetRequests()
	require.Len(t, requests, 1)
	assert.Equal(t, uint32(1), requests[0].reconfigRequestSequenceNumber)
	assert.Equal(t, uint32(2), requests[0].reconfigResponseSequenceNumber)
	assert.Equal(t, uint32(3), requests[0].senderLastTSN)
	assert.Equal(t, []uint16{4, 5}, requests[0].streamIdentifiers)

	resp, ok := reconfig.params[1].(*paramReconfigResponse)
	require.True(t, ok)
	assert.Equal(t, uint32(1), resp.reconfigResponseSequenceNumber)
	assert.Equal(t, reconfigResultSuccessPerformed, resp.result)
	assert.Nil(t, resp.senderNextTSN)

	// The final parameter may arrive without its padding.
	unpadded := append([]byte{0x82, 0x00, 0x00, 0x16}, testResetRequestOneStream...)
	c, err = parseChunk(unpadded)
	require.NoError(t, err)
	assert.Equal(t, []uint16{4}, c.(*chunkReconfig).resetRequests()[0].streamIdentifiers) //nolint:forcetypeassert
}

func TestChunkReconfig_Failure(t *testing.T) {
	tt := []struct {
		name   string
		binary []byte
		err    error
	}{
		{"chunk header too short", []byte{0x82}, ErrChunkHeaderTooSmall},
		{"wrong type", append([]byte{0x07, 0x00, 0x00, 0x10}, testReconfigResponse...), ErrChunkTypeNotReconfig},
		{"no parameters", []byte{0x82, 0x00, 0x00, 0x04}, ErrReconfigNoParams},
		{"foreign parameter", []byte{0x82, 0x00, 0x00, 0x0c, 0x00, 0x07, 0x00, 0x08, 0x01, 0x02, 0x03, 0x04}, ErrReconfigParamUnexpected},
		{"request too short", []byte{0x82, 0x00, 0x00, 0x0c, 0x00, 0x0d, 0x00, 0x08, 0x00, 0x00, 0x00, 0x01}, ErrSSNResetRequestParamTooShort},
		{
			"odd stream list",
			append([]byte{0x82, 0x00, 0x00, 0x18, 0x00, 0x0d, 0x00, 0x11}, append(make([]byte, 13), 0x00, 0x00, 0x00)...),
			ErrSSNResetRequestParamInvalidLength,
		},
		{
			"response bad length",
			append([]byte{0x82, 0x00, 0x00, 0x14, 0x00, 0x10, 0x00, 0x0e}, make([]byte, 12)...),
			ErrReconfigRespParamInvalidLength,
		},
		{"truncated parameter", []byte{0x82, 0x00, 0x00, 0x08, 0x00, 0x0d, 0x00, 0x14}, ErrMalformedParameter},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			actual := &chunkReconfig{}
			assert.ErrorIs(t, actual.unmarshal(tc.binary), tc.err)
		})
	}
}

func TestChunkReconfig_MarshalFailure(t *testing.T) {
	_, err := (&chunkReconfig{}).marshal()
	assert.ErrorIs(t, err, ErrReconfigNoParams)

	tsn := uint32(9)
	bad := &chunkReconfig{params: []param{&paramReconfigResponse{receiverNextTSN: &tsn}}}
	_, err = bad.marshal()
	assert.ErrorIs(t, err, ErrReconfigRespParamInvalidCombo)

	many := &chunkReconfig{params: []param{
		&paramOutgoingResetRequest{}, &paramOutgoingResetRequest{}, &paramReconfigResponse{},
	}}
	_, err = many.check()
	assert.ErrorIs(t, err, ErrReconfigTooManyParams)
}

func TestParamReconfigResponse_OptionalTSNs(t *testing.T) {
	sender, receiver := uint32(0x10), uint32(0x20)
	resp := &paramReconfigResponse{
		reconfigResponseSequenceNumber: 5,
		result:                         reconfigResultInProgress,
		senderNextTSN:                  &sender,
		receiverNextTSN:                &receiver,
	}

	raw, err := resp.marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x10, 0x00, 0x14,
		0x00, 0x00, 0x00, 0x05,
		0x00, 0x00, 0x00, 0x06,
		0x00, 0x00, 0x00, 0x10,
		0x00, 0x00, 0x00, 0x20,
	}, raw)

	parsed := &paramReconfigResponse{}
	_, err = parsed.unmarshal(raw)
	require.NoError(t, err)
	require.NotNil(t, parsed.receiverNextTSN)
	assert.Equal(t, receiver, *parsed.receiverNextTSN)
	assert.Equal(t, "6: In progress", parsed.result.String())
	assert.Equal(t, "Unknown reconfigResult: 9", reconfigResult(9).String())
}
