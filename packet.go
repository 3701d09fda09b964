// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"strings"
)

// Create the crc32 table we'll use for the checksum.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli) // nolint:gochecknoglobals

// Allocate and zero this data once.
// We need to use it for the checksum and don't want to allocate/clear each time.
var fourZeroes [4]byte // nolint:gochecknoglobals

/*
packet represents an SCTP packet, defined in https://tools.ietf.org/html/rfc9260#section-3
An SCTP packet is composed of a common header and chunks. Every chunk is padded
to a 4-byte boundary; the padding is not counted in the chunk's length field.

					SCTP Common Header Format
	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|     Source Port Number       |     Destination Port Number    |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                      Verification Tag                         |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                           Checksum                            |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type packet struct {
	sourcePort      uint16
	destinationPort uint16
	verificationTag uint32
	chunks          []chunk
}

const (
	packetHeaderSize = 12
)

// SCTP packet errors.
var (
	ErrPacketRawTooSmall           = errors.New("raw is smaller than the minimum length for a SCTP packet")
	ErrParseSCTPChunkNotEnoughData = errors.New("unable to parse SCTP chunk, not enough data for complete header")
	ErrChecksumMismatch            = errors.New("checksum mismatch theirs")
	ErrPacketChunkPaddingNonZero   = errors.New("chunk padding is non-zero")
)

// unmarshal parses an SCTP packet and verifies its checksum. With
// acceptZeroChecksum set, a checksum of exactly zero is accepted as well
// (RFC 9653, zero checksum negotiated over DTLS).
func (p *packet) unmarshal(acceptZeroChecksum bool, raw []byte) error {
	if len(raw) < packetHeaderSize {
		return fmt.Errorf("%w: raw only %d bytes, %d is the minimum length", ErrPacketRawTooSmall, len(raw), packetHeaderSize)
	}

	theirChecksum := binary.LittleEndian.Uint32(raw[8:])
	if ourChecksum := generatePacketChecksum(raw); theirChecksum != ourChecksum {
		if !acceptZeroChecksum || theirChecksum != 0 {
			return fmt.Errorf("%w: %d ours: %d", ErrChecksumMismatch, theirChecksum, ourChecksum)
		}
	}

	p.sourcePort = binary.BigEndian.Uint16(raw[0:])
	p.destinationPort = binary.BigEndian.Uint16(raw[2:])
	p.verificationTag = binary.BigEndian.Uint32(raw[4:])
	p.chunks = p.chunks[:0]

	offset := packetHeaderSize
	for offset != len(raw) {
		if offset+chunkHeaderSize > len(raw) {
			return fmt.Errorf("%w: offset %d remaining %d", ErrParseSCTPChunkNotEnoughData, offset, len(raw))
		}

		c, err := parseChunk(raw[offset:])
		if err != nil {
			return err
		}
		p.chunks = append(p.chunks, c)

		end := offset + chunkHeaderSize + c.valueLength()
		next := min(end+getPadding(end-offset), len(raw))
		if !allZero(raw[end:next]) {
			return fmt.Errorf("%w: at offset %d", ErrPacketChunkPaddingNonZero, end)
		}
		offset = next
	}

	return nil
}

// marshal builds an SCTP packet. With zeroChecksum set the checksum field is
// left at zero unless the packet carries INIT or COOKIE ECHO (RFC 9653 section 5.2).
func (p *packet) marshal(zeroChecksum bool) ([]byte, error) {
	raw := make([]byte, packetHeaderSize)

	// 8-12 is Checksum which will be populated when packet is complete
	binary.BigEndian.PutUint16(raw[0:], p.sourcePort)
	binary.BigEndian.PutUint16(raw[2:], p.destinationPort)
	binary.BigEndian.PutUint32(raw[4:], p.verificationTag)

	for _, c := range p.chunks {
		chunkRaw, err := c.marshal()
		if err != nil {
			return nil, err
		}
		raw = append(raw, chunkRaw...) //nolint:makezero
		raw = padByte(raw, getPadding(len(chunkRaw)))
	}

	if zeroChecksum && !hasRestrictedChunk(p.chunks) {
		binary.LittleEndian.PutUint32(raw[8:], 0)
	} else {
		binary.LittleEndian.PutUint32(raw[8:], generatePacketChecksum(raw))
	}

	return raw, nil
}

// restrictedChunks per RFC 9653 section 5.2: INIT and COOKIE ECHO.
func hasRestrictedChunk(chs []chunk) bool {
	for _, c := range chs {
		switch c.(type) {
		case *chunkInit, *chunkCookieEcho:
			return true
		}
	}

	return false
}

func generatePacketChecksum(raw []byte) (sum uint32) {
	// Fastest way to do a crc32 without allocating.
	sum = crc32.Update(sum, castagnoliTable, raw[0:8])
	sum = crc32.Update(sum, castagnoliTable, fourZeroes[:])
	sum = crc32.Update(sum, castagnoliTable, raw[12:])

	return sum
}

// String makes packet printable.
func (p *packet) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Packet:
	sourcePort: %d
	destinationPort: %d
	verificationTag: %d
	`,
		p.sourcePort,
		p.destinationPort,
		p.verificationTag,
	)
	for i, c := range p.chunks {
		fmt.Fprintf(&sb, "Chunk %d:\n %s", i, c)
	}

	return sb.String()
}

// TryMarshalUnmarshal attempts to marshal and unmarshal a message. Added for fuzzing.
func TryMarshalUnmarshal(msg []byte) int {
	p := &packet{}
	if err := p.unmarshal(false, msg); err != nil {
		return 0
	}

	if _, err := p.marshal(false); err != nil {
		return 0
	}

	return 1
}
