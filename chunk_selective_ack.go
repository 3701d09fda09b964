// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
)

/*
chunkSelectiveAck represents an SCTP Chunk of type SACK (RFC 9260 section 3.3.4).

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 3    |Chunk  Flags   |      Chunk Length             |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                      Cumulative TSN Ack                       |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|          Advertised Receiver Window Credit (a_rwnd)           |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	| Number of Gap Ack Blocks = N  |  Number of Duplicate TSNs = X |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|  Gap Ack Block #1 Start       |   Gap Ack Block #1 End        |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	/                              ...                              /
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                       Duplicate TSN 1                         |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	/                              ...                              /
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type chunkSelectiveAck struct {
	chunkHeader
	cumulativeTSNAck               uint32
	advertisedReceiverWindowCredit uint32
	gapAckBlocks                   []gapAckBlock
	duplicateTSN                   []uint32
}

// gapAckBlock offsets are relative to the cumulative TSN ack.
type gapAckBlock struct {
	start uint16
	end   uint16
}

const (
	selectiveAckHeaderSize = 12
	gapAckBlockSize        = 4
	duplicateTSNSize       = 4
)

// Selective ack chunk errors.
var (
	ErrChunkTypeNotSack           = errors.New("ChunkType is not of type SACK")
	ErrSackSizeNotLargeEnoughInfo = errors.New("SACK Chunk size is not large enough to contain header")
	ErrSackSizeNotMatchPredicted  = errors.New("SACK Chunk size does not match predicted amount from header values")
	ErrSackGapBlockInvalidRange   = errors.New("SACK gap ack block has invalid Start/End range")
	ErrSackGapBlocksNotMonotonic  = errors.New("SACK gap ack blocks are not strictly increasing/non-overlapping")
	ErrSackTooManyEntries         = errors.New("SACK has more gap blocks or duplicates than fit a 16-bit count")
)

// String makes gapAckBlock printable.
func (g gapAckBlock) String() string {
	return fmt.Sprintf("%d - %d", g.start, g.end)
}

func validateGapAckBlocks(blocks []gapAckBlock) error {
	var prevEnd uint16
	for i, g := range blocks {
		if g.start == 0 || g.end < g.start {
			return fmt.Errorf("%w: %s", ErrSackGapBlockInvalidRange, g)
		}
		if i > 0 && g.start <= prevEnd {
			return fmt.Errorf("%w: %s", ErrSackGapBlocksNotMonotonic, g)
		}
		prevEnd = g.end
	}

	return nil
}

func (s *chunkSelectiveAck) unmarshal(raw []byte) error {
	if err := s.chunkHeader.unmarshal(raw); err != nil {
		return err
	}

	if s.typ != ctSack {
		return fmt.Errorf("%w: actually is %s", ErrChunkTypeNotSack, s.typ.String())
	}

	if len(s.raw) < selectiveAckHeaderSize {
		return fmt.Errorf("%w: %w: %v remaining, needs %v bytes", ErrTruncatedChunk, ErrSackSizeNotLargeEnoughInfo,
			len(s.raw), selectiveAckHeaderSize)
	}

	s.cumulativeTSNAck = binary.BigEndian.Uint32(s.raw[0:])
	s.advertisedReceiverWindowCredit = binary.BigEndian.Uint32(s.raw[4:])
	nGap := int(binary.BigEndian.Uint16(s.raw[8:]))
	nDup := int(binary.BigEndian.Uint16(s.raw[10:]))

	if len(s.raw) != selectiveAckHeaderSize+gapAckBlockSize*nGap+duplicateTSNSize*nDup {
		return ErrSackSizeNotMatchPredicted
	}

	offset := selectiveAckHeaderSize
	s.gapAckBlocks = make([]gapAckBlock, nGap)
	for i := range s.gapAckBlocks {
		s.gapAckBlocks[i].start = binary.BigEndian.Uint16(s.raw[offset:])
		s.gapAckBlocks[i].end = binary.BigEndian.Uint16(s.raw[offset+2:])
		offset += gapAckBlockSize
	}
	if err := validateGapAckBlocks(s.gapAckBlocks); err != nil {
		return err
	}

	s.duplicateTSN = make([]uint32, nDup)
	for i := range s.duplicateTSN {
		s.duplicateTSN[i] = binary.BigEndian.Uint32(s.raw[offset:])
		offset += duplicateTSNSize
	}

	return nil
}

func (s *chunkSelectiveAck) marshal() ([]byte, error) {
	if err := validateGapAckBlocks(s.gapAckBlocks); err != nil {
		return nil, err
	}
	if len(s.gapAckBlocks) > math.MaxUint16 || len(s.duplicateTSN) > math.MaxUint16 {
		return nil, ErrSackTooManyEntries
	}

	s.typ = ctSack
	s.flags = 0

	b := newChunkBuilder(ctSack, 0,
		selectiveAckHeaderSize+gapAckBlockSize*len(s.gapAckBlocks)+duplicateTSNSize*len(s.duplicateTSN))
	b.putUint32(s.cumulativeTSNAck)
	b.putUint32(s.advertisedReceiverWindowCredit)
	b.putUint16(uint16(len(s.gapAckBlocks))) //nolint:gosec // G115
	b.putUint16(uint16(len(s.duplicateTSN))) //nolint:gosec // G115
	for _, g := range s.gapAckBlocks {
		b.putUint16(g.start)
		b.putUint16(g.end)
	}
	for _, t := range s.duplicateTSN {
		b.putUint32(t)
	}

	return b.finish()
}

func (s *chunkSelectiveAck) check() (abort bool, err error) {
	return false, nil
}

// String makes chunkSelectiveAck printable.
func (s *chunkSelectiveAck) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SACK cumTsnAck=%d arwnd=%d dupTsn=%v",
		s.cumulativeTSNAck,
		s.advertisedReceiverWindowCredit,
		s.duplicateTSN)
	for _, gap := range s.gapAckBlocks {
		fmt.Fprintf(&sb, "\n gap ack: %s", gap)
	}

	return sb.String()
}
