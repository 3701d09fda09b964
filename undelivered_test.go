// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndeliveredLog_Retention(t *testing.T) {
	log := NewUndeliveredLog(2)

	for i := 0; i < 5; i++ {
		log.record(UndeliveredMessage{StreamSequenceNumber: uint16(i), Reason: "no listener"}) //nolint:gosec // G115
	}

	assert.Equal(t, uint64(5), log.Count())
	records := log.Records()
	require.Len(t, records, 2)
	assert.Equal(t, uint16(3), records[0].StreamSequenceNumber)
	assert.Equal(t, uint16(4), records[1].StreamSequenceNumber)
}

func TestUndeliveredLog_Export(t *testing.T) {
	log := NewUndeliveredLog(0)
	rec := UndeliveredMessage{
		StreamIdentifier:     3,
		Label:                "chat",
		StreamSequenceNumber: 7,
		PayloadType:          uint32(PayloadTypeWebRTCString),
		Length:               12,
		Reason:               "listener does not accept string",
	}
	log.record(rec)

	raw, err := log.Export()
	require.NoError(t, err)

	count, records, err := DecodeUndelivered(raw)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
	assert.Equal(t, []UndeliveredMessage{rec}, records)

	_, _, err = DecodeUndelivered([]byte{0xc1})
	assert.Error(t, err)
}
