// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
	"fmt"
)

/*
Abort represents an SCTP Chunk of type ABORT (RFC 9260 section 3.3.7).

The ABORT chunk closes the association. It may contain zero or more
Error Cause TLVs. DATA MUST NOT be bundled with ABORT.
*/
type chunkAbort struct {
	chunkHeader
	errorCauses []*errorCause
}

// abortFlagTagReflected is the T bit.
const abortFlagTagReflected = 0x01

// ErrChunkTypeNotAbort is returned when an ABORT is decoded from another chunk type.
var ErrChunkTypeNotAbort = errors.New("ChunkType is not of type ABORT")

func (a *chunkAbort) unmarshal(raw []byte) error {
	if err := a.chunkHeader.unmarshal(raw); err != nil {
		return err
	}
	if a.typ != ctAbort {
		return fmt.Errorf("%w: actually is %s", ErrChunkTypeNotAbort, a.typ.String())
	}

	causes, err := decodeErrorCauses(a.raw)
	if err != nil {
		return err
	}
	a.errorCauses = causes

	return nil
}

func (a *chunkAbort) marshal() ([]byte, error) {
	// sender MUST only use the T bit, clear any other bits if set.
	b := newChunkBuilder(ctAbort, a.flags&abortFlagTagReflected, 0)
	if err := putErrorCauses(b, a.errorCauses); err != nil {
		return nil, err
	}

	return b.finish()
}

func (a *chunkAbort) check() (abort bool, err error) {
	return true, nil
}

// String makes chunkAbort printable.
func (a *chunkAbort) String() string {
	return formatErrorCauses(a.chunkHeader, a.errorCauses)
}
