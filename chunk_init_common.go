// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/pion/randutil"
)

/*
chunkInitCommon represents an SCTP Chunk body of type INIT and INIT ACK (RFC 9260 section 3.3.2)

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                         Initiate Tag                          |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|           Advertised Receiver Window Credit (a_rwnd)          |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|  Number of Outbound Streams   |  Number of Inbound Streams    |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                          Initial TSN                          |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	\                                                               \
	/              Optional/Variable-Length Parameters              /
	\                                                               \
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

Every parameter, the last one included, is padded to a 4-byte boundary on
marshal. On unmarshal a missing pad after the last parameter is tolerated.
*/
type chunkInitCommon struct {
	initiateTag                    uint32
	advertisedReceiverWindowCredit uint32
	numOutboundStreams             uint16
	numInboundStreams              uint16
	initialTSN                     uint32
	params                         []param
	unrecognizedParams             []paramHeader
}

const (
	initChunkMinLength = 16

	// RFC 9260 section 3.3.2: a_rwnd MUST be at least 1500 bytes in INIT and INIT ACK.
	initMinAdvertisedReceiverWindowCredit = 1500
)

// Use global random generator to properly seed by crypto grade random.
var globalMathRandomGenerator = randutil.NewMathRandomGenerator() // nolint:gochecknoglobals

// Init chunk errors.
var (
	ErrInitChunkMinLength = errors.New("chunk init common body smaller than minimum length")
	ErrInitParamInvalid   = errors.New("invalid parameter in INIT/INITACK")
	ErrInitMarshalParam   = errors.New("unable to marshal parameter for INIT/INITACK")
)

// randomInitiateTag returns a tag suitable for the Initiate Tag field, which MUST NOT be 0.
func randomInitiateTag() uint32 {
	for {
		if tag := globalMathRandomGenerator.Uint32(); tag != 0 {
			return tag
		}
	}
}

func (i *chunkInitCommon) unmarshal(raw []byte) error {
	if len(raw) < initChunkMinLength {
		return fmt.Errorf("%w: %w: %d", ErrTruncatedChunk, ErrInitChunkMinLength, len(raw))
	}

	// All of these are unsigned on the wire and unsigned here.
	i.initiateTag = binary.BigEndian.Uint32(raw[0:])
	i.advertisedReceiverWindowCredit = binary.BigEndian.Uint32(raw[4:])
	i.numOutboundStreams = binary.BigEndian.Uint16(raw[8:])
	i.numInboundStreams = binary.BigEndian.Uint16(raw[10:])
	i.initialTSN = binary.BigEndian.Uint32(raw[12:])
	i.params = nil
	i.unrecognizedParams = nil

	decoder := newParamDecoder(raw[initChunkMinLength:])
	for decoder.more() {
		header, rawParam, err := decoder.next()
		if err != nil {
			return err
		}

		p, err := buildParam(header.typ, rawParam)
		switch {
		case errors.Is(err, ErrParamTypeUnhandled):
			i.unrecognizedParams = append(i.unrecognizedParams, header)

			// RFC 9260 section 3.2.1: the two stop actions end parameter processing.
			if header.unrecognizedAction == paramHeaderUnrecognizedActionStop ||
				header.unrecognizedAction == paramHeaderUnrecognizedActionStopAndReport {
				return nil
			}
		case err != nil:
			return fmt.Errorf("%w: %s: %v", ErrInitParamInvalid, header.typ, err) //nolint:errorlint
		default:
			i.params = append(i.params, p)
		}
	}

	return nil
}

// marshalTo writes the fixed fields followed by params into b.
func (i *chunkInitCommon) marshalTo(b *chunkBuilder, params []param) error {
	b.putUint32(i.initiateTag)
	b.putUint32(i.advertisedReceiverWindowCredit)
	b.putUint16(i.numOutboundStreams)
	b.putUint16(i.numInboundStreams)
	b.putUint32(i.initialTSN)

	for _, p := range params {
		if err := b.putParam(p); err != nil {
			return fmt.Errorf("%w: %v", ErrInitMarshalParam, err) //nolint:errorlint
		}
	}

	return nil
}

func (i *chunkInitCommon) check(typ chunkType) error {
	switch {
	case i.initiateTag == 0:
		return fmt.Errorf("%w: %s", ErrInitInitiateTagZero, typ)
	case i.numInboundStreams == 0:
		return fmt.Errorf("%w: %s", ErrInitInboundStreamRequestZero, typ)
	case i.numOutboundStreams == 0:
		return fmt.Errorf("%w: %s", ErrInitOutboundStreamRequestZero, typ)
	case i.advertisedReceiverWindowCredit < initMinAdvertisedReceiverWindowCredit:
		return fmt.Errorf("%w: %s", ErrInitAdvertisedReceiver1500, typ)
	}

	return nil
}

// String makes chunkInitCommon printable.
func (i chunkInitCommon) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `initiateTag: %d
	advertisedReceiverWindowCredit: %d
	numOutboundStreams: %d
	numInboundStreams: %d
	initialTSN: %d`,
		i.initiateTag,
		i.advertisedReceiverWindowCredit,
		i.numOutboundStreams,
		i.numInboundStreams,
		i.initialTSN,
	)

	for idx, p := range i.params {
		fmt.Fprintf(&sb, "\nParam %d:\n %s", idx, p)
	}

	return sb.String()
}
