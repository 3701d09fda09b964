// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

/*
chunkHeader represents an SCTP Chunk header per RFC 9260 section 3.2.

Each chunk is formatted with:
  - 1 byte  Chunk Type
  - 1 byte  Chunk Flags
  - 2 bytes Chunk Length (includes header + value, excludes trailing padding)

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Chunk Type  |  Chunk Flags  |        Chunk Length           |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	\                                                               \
	/                          Chunk Value                          /
	\                                                               \
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type chunkHeader struct {
	typ   chunkType
	flags byte
	raw   []byte
}

const (
	chunkHeaderSize = 4
)

// SCTP chunk header errors.
var (
	ErrChunkHeaderTooSmall      = errors.New("raw is too small for a SCTP chunk")
	ErrChunkHeaderInvalidLength = errors.New("chunk length field smaller than header length")
	// ErrTruncatedChunk is returned when the bytes on hand are fewer than a
	// chunk or one of its parameters declares.
	ErrTruncatedChunk = errors.New("not enough data left in SCTP packet to satisfy requested length")
	ErrChunkTooLarge  = errors.New("chunk does not fit the 16-bit length field")
)

// decodeChunkHeader reads the type, flags and declared length of the chunk at the start of raw.
func decodeChunkHeader(raw []byte) (chunkType, byte, uint16, error) {
	if len(raw) < chunkHeaderSize {
		return 0, 0, 0, fmt.Errorf(
			"%w: raw only %d bytes, %d is the minimum length",
			ErrChunkHeaderTooSmall, len(raw), chunkHeaderSize,
		)
	}

	length := binary.BigEndian.Uint16(raw[2:])
	if length < chunkHeaderSize {
		return 0, 0, 0, fmt.Errorf("%w: length=%d", ErrChunkHeaderInvalidLength, length)
	}

	return chunkType(raw[0]), raw[1], length, nil
}

func (c *chunkHeader) unmarshal(raw []byte) error {
	typ, flags, length, err := decodeChunkHeader(raw)
	if err != nil {
		return err
	}

	if int(length) > len(raw) {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedChunk, length, len(raw))
	}

	c.typ = typ
	c.flags = flags
	c.raw = raw[chunkHeaderSize:length]

	return nil
}

func (c *chunkHeader) marshal() ([]byte, error) {
	b := newChunkBuilder(c.typ, c.flags, len(c.raw))
	b.putBytes(c.raw)

	return b.finish()
}

func (c *chunkHeader) valueLength() int {
	return len(c.raw)
}

// String makes chunkHeader printable.
func (c chunkHeader) String() string {
	return c.typ.String()
}

// chunkBuilder assembles a chunk front to back. The length field is written
// as zero up front and patched in finish once the body size is known.
type chunkBuilder struct {
	buf []byte
}

func newChunkBuilder(typ chunkType, flags byte, sizeHint int) *chunkBuilder {
	buf := make([]byte, chunkHeaderSize, chunkHeaderSize+sizeHint)
	buf[0] = byte(typ)
	buf[1] = flags

	return &chunkBuilder{buf: buf}
}

func (b *chunkBuilder) putUint16(v uint16) {
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
}

func (b *chunkBuilder) putUint32(v uint32) {
	b.buf = binary.BigEndian.AppendUint32(b.buf, v)
}

func (b *chunkBuilder) putBytes(v []byte) {
	b.buf = append(b.buf, v...)
}

func (b *chunkBuilder) putParam(p param) error {
	raw, err := encodeParam(p)
	if err != nil {
		return err
	}
	b.buf = append(b.buf, raw...)

	return nil
}

func (b *chunkBuilder) finish() ([]byte, error) {
	if len(b.buf) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d bytes", ErrChunkTooLarge, len(b.buf))
	}
	binary.BigEndian.PutUint16(b.buf[2:], uint16(len(b.buf))) //nolint:gosec // G115

	return b.buf, nil
}
