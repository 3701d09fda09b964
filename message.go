// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"fmt"
	"sync/atomic"
)

// Message is one application message of a Stream.
//
// An outbound Message is cut into DATA chunks by repeated fills; the caller
// must not modify the payload until every chunk has been acknowledged, since
// chunks reference it without copying. An inbound Message is built once from
// a complete TSN-ordered fragment set and dispatched at most once.
//
// A Message is not safe for concurrent use.
type Message struct {
	stream *Stream

	data                 []byte
	payloadType          PayloadProtocolIdentifier
	streamSequenceNumber uint16

	// offset is the fill cursor, it only moves forward up to len(data).
	offset int

	listener   *Listener
	dispatched atomic.Bool
	delivered  atomic.Bool
}

// NewBinaryMessage creates an outbound binary message for s. s must not be
// nil; a message without a stream cannot be filled or delivered.
func NewBinaryMessage(s *Stream, data []byte) *Message {
	return newOutboundMessage(s, data, payloadBinary)
}

// NewStringMessage creates an outbound string message for s.
func NewStringMessage(s *Stream, msg string) *Message {
	return newOutboundMessage(s, []byte(msg), payloadString)
}

// newOutboundMessage swaps an empty payload for a single placeholder byte:
// a DATA chunk may not be empty, and the Empty PPID tells the receiver to
// throw the byte away.
func newOutboundMessage(s *Stream, data []byte, kind payloadKind) *Message {
	ppi := payloadTypeFor(kind, len(data))
	if len(data) == 0 {
		data = []byte{0}
	}

	return &Message{
		stream:      s,
		data:        data,
		payloadType: ppi,
	}
}

// reassemble builds an inbound message from a complete fragment set sorted by TSN.
func reassemble(s *Stream, chunks []*chunkPayloadData) (*Message, error) {
	if len(chunks) == 1 {
		return newSingleChunkMessage(s, chunks[0])
	}

	return newInboundMessage(s, chunks)
}

// newSingleChunkMessage takes the payload of an unfragmented chunk as is.
func newSingleChunkMessage(s *Stream, c *chunkPayloadData) (*Message, error) {
	if c.fragmentFlags() != fragmentSingle {
		return nil, fmt.Errorf("%w: tsn=%d flags=%s", ErrExpectedSingleFlag, c.tsn, c.fragmentFlags())
	}

	return &Message{
		stream:               s,
		data:                 c.userData,
		payloadType:          c.payloadType,
		streamSequenceNumber: c.streamSequenceNumber,
	}, nil
}

// newInboundMessage concatenates a fragmented message. chunks must be in TSN
// order, start with a BEGIN chunk and end with an END chunk.
func newInboundMessage(s *Stream, chunks []*chunkPayloadData) (*Message, error) { //nolint:cyclop
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: no chunks", ErrInvalidFragmentSequence)
	}

	first, last := chunks[0], chunks[len(chunks)-1]
	if !first.beginningFragment {
		return nil, fmt.Errorf("%w: must start with 'begin' chunk, tsn=%d", ErrInvalidFragmentSequence, first.tsn)
	}
	if !last.endingFragment {
		return nil, fmt.Errorf("%w: must end with 'end' chunk, tsn=%d", ErrInvalidFragmentSequence, last.tsn)
	}

	ppi := first.payloadType
	total := 0
	for i, c := range chunks {
		if c.payloadType != ppi {
			return nil, fmt.Errorf("%w: %d vs %d", ErrPayloadIDMismatch, c.payloadType, ppi)
		}
		if i > 0 && !sna32LT(chunks[i-1].tsn, c.tsn) {
			return nil, fmt.Errorf("%w: tsn %d after %d", ErrInvalidFragmentSequence, c.tsn, chunks[i-1].tsn)
		}
		if (i > 0 && c.beginningFragment) || (i < len(chunks)-1 && c.endingFragment) {
			return nil, fmt.Errorf("%w: stray %s flag at tsn=%d", ErrInvalidFragmentSequence, c.fragmentFlags(), c.tsn)
		}
		total += len(c.userData)
	}

	data := make([]byte, total)
	offset := 0
	for _, c := range chunks {
		offset += copy(data[offset:], c.userData)
	}

	return &Message{
		stream:               s,
		data:                 data,
		payloadType:          ppi,
		streamSequenceNumber: first.streamSequenceNumber,
	}, nil
}

// HasMoreData reports whether fill still has bytes to hand out.
func (m *Message) HasMoreData() bool {
	return m.offset < len(m.data)
}

// fill loads the next fragment of the message into c and passes c to the
// owning stream. Calls must be serialized.
func (m *Message) fill(c *chunkPayloadData) error {
	if m.stream == nil {
		return ErrMessageNoStream
	}
	if !m.HasMoreData() {
		return ErrMessageFullySent
	}

	capacity := c.capacity()
	if capacity == 0 {
		return ErrZeroChunkCapacity
	}

	remain := len(m.data) - m.offset
	n := min(remain, capacity)

	switch {
	case m.offset == 0 && remain <= capacity:
		c.setFlags(fragmentSingle)
	case m.offset == 0:
		c.setFlags(fragmentBegin)
	case remain <= capacity:
		c.setFlags(fragmentEnd)
	default:
		c.setFlags(fragmentMiddle)
	}

	// The full slice expression keeps appends on a fragment away from the rest of the payload.
	c.setData(m.data[m.offset : m.offset+n : m.offset+n])
	m.offset += n

	c.setPayloadType(m.payloadType)
	c.setStreamSequenceNumber(m.streamSequenceNumber)

	return m.stream.outbound(c)
}

// Deliver hands the message to l through its stream, either inline or on the
// stream's dispatcher. A message can be delivered once.
func (m *Message) Deliver(l *Listener) error {
	if m.stream == nil {
		return ErrMessageNoStream
	}
	if !m.dispatched.CompareAndSwap(false, true) {
		return ErrMessageDispatched
	}
	m.listener = l

	return m.stream.deliverMessage(m)
}

// run performs the dispatch claimed by Deliver.
func (m *Message) run() {
	class, ok := classifyPayload(m.payloadType)
	switch {
	case !ok:
		m.stream.recordUndelivered(m, "unclassified payload type")
	case m.listener == nil:
		m.stream.recordUndelivered(m, "no listener")
	case m.listener.dispatch(m.stream, class, m.data):
		m.delivered.Store(true)
	default:
		m.stream.recordUndelivered(m, "listener does not accept "+class.kind.String())
	}
}

// Acked is called once every chunk of the message has been acknowledged by
// the peer. There is nothing to release yet.
func (m *Message) Acked() {}

// Data returns the message payload. Messages with an Empty PPID return a
// zero-length slice.
func (m *Message) Data() []byte {
	if isEmptyPayload(m.payloadType) {
		return []byte{}
	}

	return m.data
}

// PayloadType returns the Payload Protocol Identifier of the message.
func (m *Message) PayloadType() PayloadProtocolIdentifier {
	return m.payloadType
}

// StreamSequenceNumber returns the SSN stamped on every fragment of the message.
func (m *Message) StreamSequenceNumber() uint16 {
	return m.streamSequenceNumber
}

// Delivered reports whether a listener callback accepted the message.
func (m *Message) Delivered() bool {
	return m.delivered.Load()
}
