// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import "errors"

/*
paramRandom carries the random number used by SCTP-AUTH key derivation
(RFC 4895 section 3.1). It MUST be 32 bytes long in an INIT or INIT ACK.

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|     Parameter Type = 0x8002   |       Parameter Length        |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	\                                                               \
	/                         Random Number                         /
	\                                                               \
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type paramRandom struct {
	paramHeader
	randomData []byte
}

// ErrRandomParamEmpty is returned for a Random parameter without a value.
var ErrRandomParamEmpty = errors.New("random parameter has no value")

func (r *paramRandom) marshal() ([]byte, error) {
	r.typ = random
	r.raw = r.randomData

	return r.paramHeader.marshal()
}

func (r *paramRandom) unmarshal(raw []byte) (param, error) {
	if err := r.paramHeader.unmarshal(raw); err != nil {
		return nil, err
	}

	if len(r.raw) == 0 {
		return nil, ErrRandomParamEmpty
	}
	r.randomData = r.raw

	return r, nil
}
