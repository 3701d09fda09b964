// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"encoding/binary"
	"errors"
)

//  Zero Checksum Acceptable tells the peer that packets sent to us may carry a
//  zero checksum when another error detection method (DTLS) already covers
//  them. See RFC 9653 section 4.
//
//  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |   Type = 0x8001 (suggested)   |          Length = 8           |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |           Error Detection Method Identifier (EDMID)           |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

type paramZeroChecksumAcceptable struct {
	paramHeader
	edmid uint32
}

const (
	zeroChecksumParamLength = 8

	dtlsErrorDetectionMethod uint32 = 1
)

// ErrZeroChecksumParamInvalidLength is returned when the parameter length is not 8.
var ErrZeroChecksumParamInvalidLength = errors.New("zero checksum parameter length must be 8")

func (r *paramZeroChecksumAcceptable) marshal() ([]byte, error) {
	r.typ = zeroChecksumAcceptable
	r.raw = make([]byte, 4)
	binary.BigEndian.PutUint32(r.raw, r.edmid)

	return r.paramHeader.marshal()
}

func (r *paramZeroChecksumAcceptable) unmarshal(raw []byte) (param, error) {
	if err := r.paramHeader.unmarshal(raw); err != nil {
		return nil, err
	}

	if r.len != zeroChecksumParamLength {
		return nil, ErrZeroChecksumParamInvalidLength
	}
	r.edmid = binary.BigEndian.Uint32(r.raw)

	return r, nil
}
