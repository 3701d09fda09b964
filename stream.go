// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/pion/logging"
)

// Stream represents an SCTP stream. It cuts outbound messages into DATA
// chunks and reassembles inbound DATA chunks into messages.
type Stream struct {
	lock sync.RWMutex

	streamIdentifier uint16
	label            string
	maxChunkSize     uint32
	unordered        bool
	sequenceNumber   uint16

	pendingQueue    *pendingQueue
	reassemblyQueue *reassemblyQueue

	listener    *Listener
	dispatcher  *Dispatcher
	undelivered *UndeliveredLog

	closed bool

	log logging.LeveledLogger
}

// NewStream creates a stream with the given identifier.
func NewStream(streamIdentifier uint16, opts ...StreamOption) (*Stream, error) {
	cfg := streamConfig{
		maxChunkSize: defaultMaxChunkSize,
	}
	for _, opt := range opts {
		if err := opt.applyStream(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.loggerFactory == nil {
		cfg.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	if cfg.label == "" {
		cfg.label = fmt.Sprintf("stream %d", streamIdentifier)
	}

	s := &Stream{
		streamIdentifier: streamIdentifier,
		label:            cfg.label,
		maxChunkSize:     cfg.maxChunkSize,
		unordered:        cfg.unordered,
		pendingQueue:     newPendingQueue(),
		reassemblyQueue:  newReassemblyQueue(streamIdentifier),
		listener:         cfg.listener,
		dispatcher:       cfg.dispatcher,
		undelivered:      cfg.undelivered,
		log:              cfg.loggerFactory.NewLogger("sctp"),
	}
	s.log.Debugf("[%s] stream created, maxChunkSize=%d unordered=%v", s.label, s.maxChunkSize, s.unordered)

	return s, nil
}

// StreamIdentifier returns the Stream identifier associated to the stream.
func (s *Stream) StreamIdentifier() uint16 {
	return s.streamIdentifier
}

// Label returns the label used to tell this stream apart in logs.
func (s *Stream) Label() string {
	return s.label
}

// SetListener replaces the listener inbound messages are delivered to.
// A nil listener leaves every message undelivered.
func (s *Stream) SetListener(l *Listener) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.listener = l
}

// WriteBinary sends data as one binary message.
func (s *Stream) WriteBinary(data []byte) (int, error) {
	if err := s.SendMessage(NewBinaryMessage(s, data)); err != nil {
		return 0, err
	}

	return len(data), nil
}

// WriteString sends msg as one string message.
func (s *Stream) WriteString(msg string) (int, error) {
	if err := s.SendMessage(NewStringMessage(s, msg)); err != nil {
		return 0, err
	}

	return len(msg), nil
}

// SendMessage assigns m its SSN and queues all of its fragments. The
// fragments of one message are queued under a single lock so no other
// message on this stream can take an SSN in between.
func (s *Stream) SendMessage(m *Message) error {
	if m.stream != s {
		return ErrMessageWrongStream
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	if m.offset != 0 {
		return ErrMessageAlreadyQueued
	}

	ssn := s.sequenceNumber
	m.streamSequenceNumber = ssn
	if !s.unordered {
		s.sequenceNumber++
	}

	var queued []*chunkPayloadData
	for m.HasMoreData() {
		c := newDataChunk(s.streamIdentifier, s.maxChunkSize)
		c.unordered = s.unordered
		if err := m.fill(c); err != nil {
			s.unqueue(m, ssn, queued)

			return err
		}
		queued = append(queued, c)
	}

	return nil
}

// unqueue withdraws the fragments of a message whose fill failed part way
// and gives its SSN back. The caller holds the lock.
func (s *Stream) unqueue(m *Message, ssn uint16, queued []*chunkPayloadData) {
	for i := len(queued) - 1; i >= 0; i-- {
		if !s.pendingQueue.unpush(queued[i]) {
			s.log.Errorf("[%s] fragment ssn=%d already left the pending queue", s.label, ssn)
		}
	}
	s.sequenceNumber = ssn
	m.offset = 0
	s.log.Debugf("[%s] withdrew %d fragments of ssn=%d", s.label, len(queued), ssn)
}

// outbound queues a filled chunk for transmission. The caller should hold the lock.
func (s *Stream) outbound(c *chunkPayloadData) error {
	if c.streamIdentifier != s.streamIdentifier {
		return fmt.Errorf("%w: chunk for stream %d on stream %d",
			ErrMessageWrongStream, c.streamIdentifier, s.streamIdentifier)
	}

	s.pendingQueue.push(c)
	s.log.Tracef("[%s] queued DATA ssn=%d flags=%s len=%d",
		s.label, c.streamSequenceNumber, c.fragmentFlags(), len(c.userData))

	return nil
}

// popPending removes the next chunk to put on the wire, or returns nil when
// nothing is pending.
func (s *Stream) popPending() *chunkPayloadData {
	s.lock.Lock()
	defer s.lock.Unlock()

	c := s.pendingQueue.peek()
	if c == nil {
		return nil
	}
	if err := s.pendingQueue.pop(c); err != nil {
		s.log.Errorf("[%s] failed to pop pending chunk: %v", s.label, err)

		return nil
	}

	return c
}

// BufferedAmount returns the number of user data bytes waiting to be sent.
func (s *Stream) BufferedAmount() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.pendingQueue.getNumBytes()
}

// handleData accepts an inbound DATA chunk and delivers every message it
// completes.
func (s *Stream) handleData(c *chunkPayloadData) error {
	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()

		return ErrStreamClosed
	}

	if !s.reassemblyQueue.push(c) {
		s.lock.Unlock()
		s.log.Debugf("[%s] dropped DATA tsn=%d ssn=%d", s.label, c.tsn, c.streamSequenceNumber)

		return nil
	}

	var (
		msgs []*Message
		errs []error
	)
	for _, set := range s.reassemblyQueue.popComplete() {
		m, err := reassemble(s, set)
		if err != nil {
			errs = append(errs, err)

			continue
		}
		msgs = append(msgs, m)
	}
	listener := s.listener
	s.lock.Unlock()

	for _, m := range msgs {
		if err := m.Deliver(listener); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.log.Warnf("[%s] failed to handle DATA tsn=%d: %v", s.label, c.tsn, err)

		return err
	}

	return nil
}

// handleResetRequest applies a peer's outgoing stream reset to the inbound
// side of the stream (RFC 6525 section 5.2.2): buffered fragments are dropped
// and the next expected SSN goes back to 0. It reports whether r names the
// stream; an empty list names every stream.
func (s *Stream) handleResetRequest(r *paramOutgoingResetRequest) bool {
	if len(r.streamIdentifiers) > 0 && !slices.Contains(r.streamIdentifiers, s.streamIdentifier) {
		return false
	}

	s.lock.Lock()
	dropped := s.reassemblyQueue.getNumBytes()
	s.reassemblyQueue = newReassemblyQueue(s.streamIdentifier)
	s.lock.Unlock()

	s.log.Debugf("[%s] inbound reset by rsn=%d, dropped %d buffered bytes",
		s.label, r.reconfigRequestSequenceNumber, dropped)

	return true
}

// deliverMessage runs the dispatch of m inline, or on the dispatcher if the
// stream has one.
func (s *Stream) deliverMessage(m *Message) error {
	s.lock.RLock()
	d := s.dispatcher
	s.lock.RUnlock()

	if d == nil {
		m.run()

		return nil
	}

	return d.enqueue(m)
}

func (s *Stream) recordUndelivered(m *Message, reason string) {
	s.log.Debugf("[%s] message ssn=%d ppi=%s (%d bytes) undelivered: %s",
		s.label, m.streamSequenceNumber, m.payloadType, len(m.Data()), reason)

	if s.undelivered == nil {
		return
	}
	s.undelivered.record(UndeliveredMessage{
		StreamIdentifier:     s.streamIdentifier,
		Label:                s.label,
		StreamSequenceNumber: m.streamSequenceNumber,
		PayloadType:          uint32(m.payloadType),
		Length:               len(m.Data()),
		Reason:               reason,
	})
}

// Close stops the stream from sending or accepting data. Chunks already
// queued stay available through popPending.
func (s *Stream) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.closed {
		s.closed = true
		s.log.Debugf("[%s] stream closed", s.label)
	}

	return nil
}
