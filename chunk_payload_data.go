// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

/*
chunkPayloadData represents an SCTP Chunk of type DATA (RFC 9260 section 3.3.1)

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 0    | Res |I|U|B|E|            Length               |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                              TSN                              |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|      Stream Identifier S      |   Stream Sequence Number n    |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                  Payload Protocol Identifier                  |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                                                               |
	|                 User Data (seq n of Stream S)                 |
	|                                                               |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

An unfragmented user message MUST have both the B and E bits set to 1.
Setting both B and E to 0 indicates a middle fragment: see Table 4 in RFC 9260.
*/
type chunkPayloadData struct {
	chunkHeader

	unordered         bool
	beginningFragment bool
	endingFragment    bool
	immediateSack     bool

	tsn                  uint32
	streamIdentifier     uint16
	streamSequenceNumber uint16
	payloadType          PayloadProtocolIdentifier
	userData             []byte

	// Upper bound for the whole encoded chunk, header included. Only used on
	// the sending side to size fragments.
	maxChunkSize uint32
}

const (
	payloadDataEndingFragmentBitmask   = 1
	payloadDataBeginingFragmentBitmask = 2
	payloadDataUnorderedBitmask        = 4
	payloadDataImmediateSACK           = 8

	payloadDataHeaderSize = 12 // TSN(4) + SID(2) + SSN(2) + PPID(4)
)

// fragmentFlags is the B/E pair of a DATA chunk.
type fragmentFlags byte

const (
	fragmentMiddle fragmentFlags = 0
	fragmentEnd    fragmentFlags = payloadDataEndingFragmentBitmask
	fragmentBegin  fragmentFlags = payloadDataBeginingFragmentBitmask
	fragmentSingle fragmentFlags = fragmentBegin | fragmentEnd
)

func (f fragmentFlags) String() string {
	switch f {
	case fragmentSingle:
		return "SINGLE"
	case fragmentBegin:
		return "BEGIN"
	case fragmentEnd:
		return "END"
	default:
		return "MIDDLE"
	}
}

// PayloadProtocolIdentifier is an enum for DataChannel payload types.
type PayloadProtocolIdentifier uint32

// PayloadProtocolIdentifier enums
// https://www.iana.org/assignments/sctp-parameters/sctp-parameters.xhtml#sctp-parameters-25
const (
	PayloadTypeUnknown           PayloadProtocolIdentifier = 0
	PayloadTypeWebRTCDCEP        PayloadProtocolIdentifier = 50
	PayloadTypeWebRTCString      PayloadProtocolIdentifier = 51
	PayloadTypeWebRTCBinary      PayloadProtocolIdentifier = 53
	PayloadTypeWebRTCStringEmpty PayloadProtocolIdentifier = 56
	PayloadTypeWebRTCBinaryEmpty PayloadProtocolIdentifier = 57
)

// Data chunk errors.
var (
	ErrChunkTypeNotPayloadData = errors.New("ChunkType is not of type DATA")
	ErrChunkPayloadSmall       = errors.New("packet is smaller than the header size")
	// RFC 9260 section 3.3.1: Length MUST be 16 + L with L > 0 (exclude padding).
	ErrDATAZeroUserData = errors.New("DATA chunk carries no user data (L must be > 0)")
	ErrDATAExceedsChunk = errors.New("DATA user data exceeds chunk capacity")
)

func (p PayloadProtocolIdentifier) String() string {
	switch p {
	case PayloadTypeWebRTCDCEP:
		return "WebRTC DCEP"
	case PayloadTypeWebRTCString:
		return "WebRTC String"
	case PayloadTypeWebRTCBinary:
		return "WebRTC Binary"
	case PayloadTypeWebRTCStringEmpty:
		return "WebRTC String (Empty)"
	case PayloadTypeWebRTCBinaryEmpty:
		return "WebRTC Binary (Empty)"
	default:
		return fmt.Sprintf("Unknown Payload Protocol Identifier: %d", p)
	}
}

// newDataChunk returns an empty DATA chunk for streamIdentifier whose encoded
// size may not exceed maxChunkSize.
func newDataChunk(streamIdentifier uint16, maxChunkSize uint32) *chunkPayloadData {
	return &chunkPayloadData{
		streamIdentifier: streamIdentifier,
		maxChunkSize:     maxChunkSize,
	}
}

// capacity is the number of user data bytes this chunk can carry.
func (p *chunkPayloadData) capacity() int {
	return max(int(p.maxChunkSize)-chunkHeaderSize-payloadDataHeaderSize, 0)
}

func (p *chunkPayloadData) setFlags(f fragmentFlags) {
	p.beginningFragment = f&fragmentBegin != 0
	p.endingFragment = f&fragmentEnd != 0
}

func (p *chunkPayloadData) fragmentFlags() fragmentFlags {
	var f fragmentFlags
	if p.beginningFragment {
		f |= fragmentBegin
	}
	if p.endingFragment {
		f |= fragmentEnd
	}

	return f
}

// setData points the chunk at data without copying it.
func (p *chunkPayloadData) setData(data []byte) {
	p.userData = data
}

func (p *chunkPayloadData) setPayloadType(ppi PayloadProtocolIdentifier) {
	p.payloadType = ppi
}

func (p *chunkPayloadData) setStreamSequenceNumber(ssn uint16) {
	p.streamSequenceNumber = ssn
}

func (p *chunkPayloadData) unmarshal(raw []byte) error {
	if err := p.chunkHeader.unmarshal(raw); err != nil {
		return err
	}

	if p.typ != ctPayloadData {
		return fmt.Errorf("%w: actually is %s", ErrChunkTypeNotPayloadData, p.typ.String())
	}

	p.immediateSack = p.flags&payloadDataImmediateSACK != 0
	p.unordered = p.flags&payloadDataUnorderedBitmask != 0
	p.beginningFragment = p.flags&payloadDataBeginingFragmentBitmask != 0
	p.endingFragment = p.flags&payloadDataEndingFragmentBitmask != 0

	if len(p.raw) < payloadDataHeaderSize {
		return ErrChunkPayloadSmall
	}

	p.tsn = binary.BigEndian.Uint32(p.raw[0:])
	p.streamIdentifier = binary.BigEndian.Uint16(p.raw[4:])
	p.streamSequenceNumber = binary.BigEndian.Uint16(p.raw[6:])
	p.payloadType = PayloadProtocolIdentifier(binary.BigEndian.Uint32(p.raw[8:]))

	p.userData = p.raw[payloadDataHeaderSize:]
	if len(p.userData) == 0 {
		return ErrDATAZeroUserData
	}

	return nil
}

func (p *chunkPayloadData) marshal() ([]byte, error) {
	if len(p.userData) == 0 {
		return nil, ErrDATAZeroUserData
	}

	if p.maxChunkSize != 0 && len(p.userData) > p.capacity() {
		return nil, fmt.Errorf("%w: %d > %d", ErrDATAExceedsChunk, len(p.userData), p.capacity())
	}

	// Only set the defined bits; reserved bits implicitly 0 on transmit
	flags := byte(p.fragmentFlags())
	if p.unordered {
		flags |= payloadDataUnorderedBitmask
	}
	if p.immediateSack {
		flags |= payloadDataImmediateSACK
	}

	p.chunkHeader.typ = ctPayloadData
	p.chunkHeader.flags = flags

	b := newChunkBuilder(ctPayloadData, flags, payloadDataHeaderSize+len(p.userData))
	b.putUint32(p.tsn)
	b.putUint16(p.streamIdentifier)
	b.putUint16(p.streamSequenceNumber)
	b.putUint32(uint32(p.payloadType))
	b.putBytes(p.userData)

	return b.finish()
}

func (p *chunkPayloadData) check() (abort bool, err error) {
	return false, nil
}

// String makes chunkPayloadData printable.
func (p *chunkPayloadData) String() string {
	return fmt.Sprintf("%s tsn=%d sid=%d ssn=%d ppi=%s %s len=%d",
		p.chunkHeader, p.tsn, p.streamIdentifier, p.streamSequenceNumber,
		p.payloadType, p.fragmentFlags(), len(p.userData))
}
