// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// This chunk is used by the sender to advance the cumulative TSN and
// indicate per-stream sequence numbers that were skipped (RFC 3758).
//
//  0                   1                   2                   3
//  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |   Type = 192  |  Flags = 0x00 |        Length = Variable      |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |                      New Cumulative TSN                       |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |         Stream-1              |       Stream Sequence-1       |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// \                                                               /
// /                                                               \
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |         Stream-N              |       Stream Sequence-N       |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type chunkForwardTSN struct {
	chunkHeader

	// Missing TSNs earlier than or equal to this value count as received.
	newCumulativeTSN uint32
	streams          []chunkForwardTSNStream
}

// chunkForwardTSNStream holds the largest skipped SSN of an ordered stream.
type chunkForwardTSNStream struct {
	identifier uint16
	sequence   uint16
}

const (
	newCumulativeTSNLength = 4
	forwardTSNStreamLength = 4
)

// Forward TSN chunk errors.
var (
	ErrChunkTypeNotForwardTSN       = errors.New("ChunkType is not of type FORWARD TSN")
	ErrForwardTSNInvalidStreamBlock = errors.New("FORWARD TSN stream block section length invalid")
)

func (c *chunkForwardTSN) unmarshal(raw []byte) error {
	if err := c.chunkHeader.unmarshal(raw); err != nil {
		return err
	}

	if c.typ != ctForwardTSN {
		return fmt.Errorf("%w: actually is %s", ErrChunkTypeNotForwardTSN, c.typ.String())
	}

	if len(c.raw) < newCumulativeTSNLength {
		return fmt.Errorf("%w: %d", ErrTruncatedChunk, len(c.raw))
	}

	if (len(c.raw)-newCumulativeTSNLength)%forwardTSNStreamLength != 0 {
		return ErrForwardTSNInvalidStreamBlock
	}

	c.newCumulativeTSN = binary.BigEndian.Uint32(c.raw[0:])
	c.streams = make([]chunkForwardTSNStream, 0, (len(c.raw)-newCumulativeTSNLength)/forwardTSNStreamLength)
	for off := newCumulativeTSNLength; off < len(c.raw); off += forwardTSNStreamLength {
		c.streams = append(c.streams, chunkForwardTSNStream{
			identifier: binary.BigEndian.Uint16(c.raw[off:]),
			sequence:   binary.BigEndian.Uint16(c.raw[off+2:]),
		})
	}

	return nil
}

func (c *chunkForwardTSN) marshal() ([]byte, error) {
	c.typ = ctForwardTSN
	c.flags = 0

	b := newChunkBuilder(ctForwardTSN, 0, newCumulativeTSNLength+len(c.streams)*forwardTSNStreamLength)
	b.putUint32(c.newCumulativeTSN)
	for _, s := range c.streams {
		b.putUint16(s.identifier)
		b.putUint16(s.sequence)
	}

	return b.finish()
}

func (c *chunkForwardTSN) check() (abort bool, err error) {
	return false, nil
}

// String makes chunkForwardTSN printable.
func (c *chunkForwardTSN) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New Cumulative TSN: %d\n", c.newCumulativeTSN)
	for _, s := range c.streams {
		fmt.Fprintf(&sb, " - si=%d, ssn=%d\n", s.identifier, s.sequence)
	}

	return sb.String()
}
