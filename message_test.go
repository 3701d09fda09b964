// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxChunkSizeFor returns the chunk size that leaves room for exactly capacity user data bytes.
func maxChunkSizeFor(capacity int) uint32 {
	return uint32(chunkHeaderSize + payloadDataHeaderSize + capacity) //nolint:gosec // G115
}

func newTestStream(t *testing.T, opts ...StreamOption) *Stream {
	t.Helper()

	s, err := NewStream(1, opts...)
	require.NoError(t, err)

	return s
}

// fillAll drives fill until the message is exhausted and returns the chunks.
func fillAll(t *testing.T, s *Stream, m *Message) []*chunkPayloadData {
	t.Helper()

	var chunks []*chunkPayloadData
	for m.HasMoreData() {
		c := newDataChunk(s.streamIdentifier, s.maxChunkSize)
		require.NoError(t, m.fill(c))
		chunks = append(chunks, c)
	}

	return chunks
}

func assignTSNs(chunks []*chunkPayloadData, first uint32) {
	for i, c := range chunks {
		c.tsn = first + uint32(i) //nolint:gosec // G115
	}
}

func TestMessage_FillHelloWorld(t *testing.T) {
	s := newTestStream(t, WithMaxChunkSize(maxChunkSizeFor(5)))
	m := NewStringMessage(s, "hello world")

	chunks := fillAll(t, s, m)
	require.Len(t, chunks, 3)

	assert.Equal(t, []byte("hello"), chunks[0].userData)
	assert.Equal(t, fragmentBegin, chunks[0].fragmentFlags())
	assert.Equal(t, []byte(" worl"), chunks[1].userData)
	assert.Equal(t, fragmentMiddle, chunks[1].fragmentFlags())
	assert.Equal(t, []byte("d"), chunks[2].userData)
	assert.Equal(t, fragmentEnd, chunks[2].fragmentFlags())

	for _, c := range chunks {
		assert.Equal(t, PayloadTypeWebRTCString, c.payloadType)
		assert.Equal(t, m.StreamSequenceNumber(), c.streamSequenceNumber)
	}
	assert.False(t, m.HasMoreData())
	assert.Equal(t, 3, s.pendingQueue.size(), "every filled chunk goes to the stream")
}

func TestMessage_FillChunkCount(t *testing.T) {
	for _, capacity := range []int{1, 5, 7, 1200} {
		for _, length := range []int{1, 4, 5, 6, 7, 8, 14, 100, 1201} {
			s := newTestStream(t, WithMaxChunkSize(maxChunkSizeFor(capacity)))
			data := make([]byte, length)
			for i := range data {
				data[i] = byte(i)
			}

			chunks := fillAll(t, s, NewBinaryMessage(s, data))
			want := (length + capacity - 1) / capacity
			require.Len(t, chunks, want, "L=%d C=%d", length, capacity)

			var begins, ends int
			var joined []byte
			for i, c := range chunks {
				assert.LessOrEqual(t, len(c.userData), capacity)
				assert.NotEmpty(t, c.userData)
				if c.beginningFragment {
					begins++
					assert.Equal(t, 0, i)
				}
				if c.endingFragment {
					ends++
					assert.Equal(t, len(chunks)-1, i)
				}
				joined = append(joined, c.userData...)
			}
			assert.Equal(t, 1, begins)
			assert.Equal(t, 1, ends)
			assert.Equal(t, data, joined)

			if want == 1 {
				assert.Equal(t, fragmentSingle, chunks[0].fragmentFlags())
			}
		}
	}
}

func TestMessage_FillDoesNotCopy(t *testing.T) {
	s := newTestStream(t, WithMaxChunkSize(maxChunkSizeFor(4)))
	data := []byte("0123456789")

	chunks := fillAll(t, s, NewBinaryMessage(s, data))
	require.Len(t, chunks, 3)

	assert.Same(t, &data[0], &chunks[0].userData[0])
	assert.Same(t, &data[4], &chunks[1].userData[0])
	assert.Equal(t, len(chunks[0].userData), cap(chunks[0].userData), "fragments cannot grow into the next one")
}

func TestMessage_FillErrors(t *testing.T) {
	s := newTestStream(t)
	m := NewBinaryMessage(s, []byte{1, 2, 3})

	assert.ErrorIs(t, m.fill(newDataChunk(1, chunkHeaderSize+payloadDataHeaderSize)), ErrZeroChunkCapacity)
	assert.True(t, m.HasMoreData(), "a failed fill does not move the cursor")

	require.NoError(t, m.fill(newDataChunk(1, s.maxChunkSize)))
	assert.False(t, m.HasMoreData())
	assert.ErrorIs(t, m.fill(newDataChunk(1, s.maxChunkSize)), ErrMessageFullySent)
}

func TestMessage_Empty(t *testing.T) {
	tt := []struct {
		name string
		msg  func(*Stream) *Message
		ppi  PayloadProtocolIdentifier
	}{
		{"string", func(s *Stream) *Message { return NewStringMessage(s, "") }, PayloadTypeWebRTCStringEmpty},
		{"binary", func(s *Stream) *Message { return NewBinaryMessage(s, nil) }, PayloadTypeWebRTCBinaryEmpty},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStream(t)
			m := tc.msg(s)
			assert.True(t, m.HasMoreData(), "the placeholder byte still has to be sent")
			assert.Empty(t, m.Data())
			assert.NotNil(t, m.Data())

			chunks := fillAll(t, s, m)
			require.Len(t, chunks, 1)
			assert.Equal(t, fragmentSingle, chunks[0].fragmentFlags())
			assert.Len(t, chunks[0].userData, 1)
			assert.Equal(t, tc.ppi, chunks[0].payloadType)

			_, err := chunks[0].marshal()
			assert.NoError(t, err)
		})
	}
}

func TestMessage_Reassemble(t *testing.T) {
	s := newTestStream(t, WithMaxChunkSize(maxChunkSizeFor(3)))
	data := []byte("reassembly is the inverse of fill")

	out := NewBinaryMessage(s, data)
	chunks := fillAll(t, s, out)
	assignTSNs(chunks, 0xfffffffe)

	in, err := reassemble(s, chunks)
	require.NoError(t, err)
	assert.Equal(t, data, in.Data())
	assert.Equal(t, PayloadTypeWebRTCBinary, in.PayloadType())
	assert.Equal(t, out.StreamSequenceNumber(), in.StreamSequenceNumber())
	assert.NotSame(t, &data[0], &in.Data()[0], "fragments are copied into one buffer")

	single := makeStreamChunk(1, 4, 7, noFragment, "solo")
	in, err = reassemble(s, []*chunkPayloadData{single})
	require.NoError(t, err)
	assert.Equal(t, []byte("solo"), in.Data())
	assert.Equal(t, uint16(4), in.StreamSequenceNumber())
}

func TestNewInboundMessage_Failure(t *testing.T) {
	b := func(tsn uint32) *chunkPayloadData { return makeStreamChunk(1, 0, tsn, fragBegin, "b") }
	m := func(tsn uint32) *chunkPayloadData { return makeStreamChunk(1, 0, tsn, fragMiddle, "m") }
	e := func(tsn uint32) *chunkPayloadData { return makeStreamChunk(1, 0, tsn, fragEnd, "e") }

	other := e(3)
	other.payloadType = PayloadTypeWebRTCBinary

	tt := []struct {
		name   string
		chunks []*chunkPayloadData
		err    error
	}{
		{"empty", nil, ErrInvalidFragmentSequence},
		{"no begin", []*chunkPayloadData{m(1), e(2)}, ErrInvalidFragmentSequence},
		{"no end", []*chunkPayloadData{b(1), m(2)}, ErrInvalidFragmentSequence},
		{"stray begin", []*chunkPayloadData{b(1), b(2), e(3)}, ErrInvalidFragmentSequence},
		{"stray end", []*chunkPayloadData{b(1), e(2), e(3)}, ErrInvalidFragmentSequence},
		{"tsn order", []*chunkPayloadData{b(2), m(1), e(3)}, ErrInvalidFragmentSequence},
		{"ppid mismatch", []*chunkPayloadData{b(1), m(2), other}, ErrPayloadIDMismatch},
	}

	s := newTestStream(t)
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newInboundMessage(s, tc.chunks)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := newInboundMessage(s, []*chunkPayloadData{b(1), other})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "53 vs 51")

	_, err = newSingleChunkMessage(s, m(1))
	assert.ErrorIs(t, err, ErrExpectedSingleFlag)
}

func TestMessage_Deliver(t *testing.T) {
	s := newTestStream(t)

	var got []string
	l := &Listener{OnString: func(_ *Stream, msg string) { got = append(got, msg) }}

	in, err := reassemble(s, []*chunkPayloadData{makeStreamChunk(1, 0, 1, noFragment, "hi")})
	require.NoError(t, err)

	require.NoError(t, in.Deliver(l))
	assert.True(t, in.Delivered())
	assert.ErrorIs(t, in.Deliver(l), ErrMessageDispatched)
	assert.Equal(t, []string{"hi"}, got, "a message is dispatched once")

	// Acked has nothing to release but must be callable.
	in.Acked()
}

func TestMessage_DataLargePayload(t *testing.T) {
	s := newTestStream(t)
	data := bytes.Repeat([]byte{0xab}, 64*1024)

	chunks := fillAll(t, s, NewBinaryMessage(s, data))
	assignTSNs(chunks, 1)

	in, err := reassemble(s, chunks)
	require.NoError(t, err)
	assert.Equal(t, data, in.Data())
}

func TestMessage_NoStream(t *testing.T) {
	m := NewBinaryMessage(nil, []byte{1, 2})

	assert.ErrorIs(t, m.fill(newDataChunk(1, defaultMaxChunkSize)), ErrMessageNoStream)
	assert.Equal(t, 0, m.offset)
	assert.ErrorIs(t, m.Deliver(&Listener{}), ErrMessageNoStream)
	assert.False(t, m.dispatched.Load(), "a refused delivery does not use up the message")
}
