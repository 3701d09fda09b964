// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorChunk(t *testing.T) {
	t.Run("Many error causes", func(t *testing.T) {
		errChunk := &chunkError{
			errorCauses: []*errorCause{
				newProtocolViolationCause("bad"),
				{code: invalidMandatoryParameter},
				newUserInitiatedAbortCause("bye"),
			},
		}
		raw, err := errChunk.marshal()
		require.NoError(t, err)

		parsed := &chunkError{}
		require.NoError(t, parsed.unmarshal(raw))
		require.Len(t, parsed.errorCauses, 3)
		for i, cause := range errChunk.errorCauses {
			assert.Equal(t, cause.code, parsed.errorCauses[i].code)
			assert.Equal(t, len(cause.raw), len(parsed.errorCauses[i].raw))
		}
		assert.Equal(t, []byte("bye"), parsed.errorCauses[2].raw)
	})

	t.Run("No causes", func(t *testing.T) {
		_, err := (&chunkError{}).marshal()
		assert.ErrorIs(t, err, ErrNoErrorCauses)

		assert.ErrorIs(t, (&chunkError{}).unmarshal([]byte{0x09, 0x00, 0x00, 0x04}), ErrNoErrorCauses)
	})

	t.Run("Malformed cause", func(t *testing.T) {
		raw := []byte{0x09, 0x00, 0x00, 0x08, 0x00, 0x0d, 0x00, 0x10}
		assert.ErrorIs(t, (&chunkError{}).unmarshal(raw), ErrMalformedParameter)
	})
}

func TestReportUnrecognizedParams(t *testing.T) {
	raw := append([]byte{}, initChunkFixedFields...)
	raw = append(raw, byte(paramHeaderUnrecognizedActionSkipAndReport), 0x42, 0x00, 0x06, 0xaa, 0xbb, 0x00, 0x00)
	raw = append(raw, byte(paramHeaderUnrecognizedActionSkip), 0x43, 0x00, 0x04)

	i := &chunkInitCommon{}
	require.NoError(t, i.unmarshal(raw))
	require.Len(t, i.unrecognizedParams, 2)

	report, err := reportUnrecognizedParams(i)
	require.NoError(t, err)

	out, err := report.marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x09, 0x00, 0x00, 0x10,
		0x00, 0x08, 0x00, 0x0c,
		0xc0, 0x42, 0x00, 0x06, 0xaa, 0xbb, 0x00, 0x00,
	}, out, "only the parameter asking for a report is echoed")

	silent := &chunkInitCommon{unrecognizedParams: i.unrecognizedParams[1:]}
	_, err = reportUnrecognizedParams(silent)
	assert.ErrorIs(t, err, ErrUnrecognizedNotFound)
}
