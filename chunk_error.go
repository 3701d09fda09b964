// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
	"fmt"
)

/*
Operation Error (ERROR) (Type = 9) - RFC 9260 section 3.3.10

An endpoint sends this chunk to notify its peer of one or more error
conditions. Contains one or more Error Causes (TLVs). Flags are set to
0 on transmit and ignored on receipt.
*/
type chunkError struct {
	chunkHeader
	errorCauses []*errorCause
}

// ErrChunkTypeNotCtError is returned when an ERROR is decoded from another chunk type.
var ErrChunkTypeNotCtError = errors.New("ChunkType is not of type ctError")

// reportUnrecognizedParams builds the ERROR chunk an endpoint returns for an
// INIT or INIT ACK whose unrecognized parameters ask to be reported. It
// returns ErrUnrecognizedNotFound when there is nothing to report.
func reportUnrecognizedParams(i *chunkInitCommon) (*chunkError, error) {
	cause, err := newUnrecognizedParametersCause(i.unrecognizedParams)
	if err != nil {
		return nil, err
	}

	return &chunkError{errorCauses: []*errorCause{cause}}, nil
}

func (e *chunkError) unmarshal(raw []byte) error {
	if err := e.chunkHeader.unmarshal(raw); err != nil {
		return err
	}

	if e.typ != ctError {
		return fmt.Errorf("%w, actually is %s", ErrChunkTypeNotCtError, e.typ.String())
	}

	causes, err := decodeErrorCauses(e.raw)
	if err != nil {
		return err
	}
	if len(causes) == 0 {
		return ErrNoErrorCauses
	}
	e.errorCauses = causes

	return nil
}

func (e *chunkError) marshal() ([]byte, error) {
	if len(e.errorCauses) == 0 {
		return nil, ErrNoErrorCauses
	}

	b := newChunkBuilder(ctError, 0, 0)
	if err := putErrorCauses(b, e.errorCauses); err != nil {
		return nil, err
	}

	return b.finish()
}

func (e *chunkError) check() (abort bool, err error) {
	return false, nil
}

// String makes chunkError printable.
func (e *chunkError) String() string {
	return formatErrorCauses(e.chunkHeader, e.errorCauses)
}
