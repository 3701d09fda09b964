// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

/*
paramHeader is the TLV shared by every INIT/INIT ACK parameter (RFC 9260 section 3.2.1).

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|          Parameter Type       |       Parameter Length        |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	\                                                               \
	/                       Parameter Value                         /
	\                                                               \
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

Parameter Length covers type, length and value but never the trailing padding.
*/
type paramHeader struct {
	typ                paramType
	unrecognizedAction paramHeaderUnrecognizedAction
	len                int
	raw                []byte
}

// paramHeaderUnrecognizedAction is the action the receiver takes when it does
// not recognize the parameter type, encoded in the two highest bits of the type.
type paramHeaderUnrecognizedAction byte

const (
	paramHeaderLength = 4

	paramHeaderUnrecognizedActionMask = 0b11000000
	// Stop processing this parameter and do not process any further parameters within this chunk.
	paramHeaderUnrecognizedActionStop paramHeaderUnrecognizedAction = 0b00000000
	// Stop processing this parameter, do not process any further parameters within this chunk, and
	// report the unrecognized parameter.
	paramHeaderUnrecognizedActionStopAndReport paramHeaderUnrecognizedAction = 0b01000000
	// Skip this parameter and continue processing.
	paramHeaderUnrecognizedActionSkip paramHeaderUnrecognizedAction = 0b10000000
	// Skip this parameter and continue processing but report the unrecognized parameter.
	paramHeaderUnrecognizedActionSkipAndReport paramHeaderUnrecognizedAction = 0b11000000
)

// Parameter header errors.
var (
	ErrParamHeaderTooShort             = errors.New("param header too short")
	// ErrMalformedParameter is returned when the declared parameter length does
	// not fit the bytes that are left in the chunk.
	ErrMalformedParameter             = errors.New("param shorter than its self reported length")
	ErrParamHeaderSelfReportedTooShort = errors.New("param self reported length is shorter than header length")
)

func (p *paramHeader) marshal() ([]byte, error) {
	paramLengthPlusHeader := paramHeaderLength + len(p.raw)

	rawParam := make([]byte, paramLengthPlusHeader)
	binary.BigEndian.PutUint16(rawParam[0:], uint16(p.typ))
	binary.BigEndian.PutUint16(rawParam[2:], uint16(paramLengthPlusHeader)) //nolint:gosec // G115
	copy(rawParam[paramHeaderLength:], p.raw)

	return rawParam, nil
}

func (p *paramHeader) unmarshal(raw []byte) error {
	if len(raw) < paramHeaderLength {
		return ErrParamHeaderTooShort
	}

	paramLengthPlusHeader := binary.BigEndian.Uint16(raw[2:])
	if int(paramLengthPlusHeader) < paramHeaderLength {
		return fmt.Errorf(
			"%w: param self reported length (%d) shorter than header length (%d)",
			ErrParamHeaderSelfReportedTooShort, int(paramLengthPlusHeader), paramHeaderLength,
		)
	}
	if len(raw) < int(paramLengthPlusHeader) {
		return fmt.Errorf("%w: remaining %d, declared %d", ErrMalformedParameter, len(raw), paramLengthPlusHeader)
	}

	typ, err := parseParamType(raw[0:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParamTypeUnexpected, err) //nolint:errorlint
	}
	p.typ = typ
	p.unrecognizedAction = paramHeaderUnrecognizedAction(raw[0] & paramHeaderUnrecognizedActionMask)
	p.raw = raw[paramHeaderLength:paramLengthPlusHeader]
	p.len = int(paramLengthPlusHeader)

	return nil
}

func (p *paramHeader) length() int {
	return p.len
}

// String makes paramHeader printable.
func (p paramHeader) String() string {
	return fmt.Sprintf("%s (%d): %s", p.typ, p.len, hex.Dump(p.raw))
}
