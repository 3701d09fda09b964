// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp // nolint:dupl

import (
	"errors"
	"fmt"
)

/*
chunkInit represents an SCTP Chunk of type INIT (RFC 9260 section 3.3.2).

See chunkInitCommon for the fixed headers.

Variable Parameters                 Status     Type Value
-------------------------------------------------------------
IPv4 Address (Note 1)               Optional   5
IPv6 Address (Note 1)               Optional   6
Cookie Preservative                 Optional   9
Reserved for ECN Capable (Note 2)   Optional   32768 (0x8000)
Host Name Address (Note 3)          Optional   11
Supported Address Types (Note 4)    Optional   12

nolint:godot
*/
type chunkInit struct {
	chunkHeader
	chunkInitCommon
}

// Init chunk errors.
var (
	ErrChunkTypeNotTypeInit          = errors.New("ChunkType is not of type INIT")
	ErrChunkValueNotLongEnough       = errors.New("chunk Value isn't long enough for mandatory parameters exp")
	ErrChunkTypeInitFlagZero         = errors.New("ChunkType of type INIT flags must be all 0")
	ErrChunkTypeInitUnmarshalFailed  = errors.New("failed to unmarshal INIT body")
	ErrChunkTypeInitMarshalFailed    = errors.New("failed marshaling INIT common data")
	ErrInitInitiateTagZero           = errors.New("initiate tag must not be 0")
	ErrInitInboundStreamRequestZero  = errors.New("inbound stream request must be > 0")
	ErrInitOutboundStreamRequestZero = errors.New("outbound stream request must be > 0")
	ErrInitAdvertisedReceiver1500    = errors.New("advertised receiver window credit (a_rwnd) must be >= 1500")
)

// newInit builds an INIT with a fresh random initiate tag and initial TSN.
func newInit(aRwnd uint32, numOutboundStreams, numInboundStreams uint16) *chunkInit {
	init := &chunkInit{}
	init.initiateTag = randomInitiateTag()
	init.initialTSN = globalMathRandomGenerator.Uint32()
	init.advertisedReceiverWindowCredit = aRwnd
	init.numOutboundStreams = numOutboundStreams
	init.numInboundStreams = numInboundStreams
	init.params = []param{
		&paramForwardTSNSupported{},
		&paramSupportedExtensions{ChunkTypes: []chunkType{ctReconfig, ctForwardTSN}},
	}

	return init
}

func (i *chunkInit) unmarshal(raw []byte) error {
	if err := i.chunkHeader.unmarshal(raw); err != nil {
		return err
	}

	if i.typ != ctInit {
		return fmt.Errorf("%w: actually is %s", ErrChunkTypeNotTypeInit, i.typ.String())
	} else if len(i.raw) < initChunkMinLength {
		return fmt.Errorf("%w: %w: %d actual: %d",
			ErrTruncatedChunk, ErrChunkValueNotLongEnough, initChunkMinLength, len(i.raw))
	}

	// The Chunk Flags field in INIT is reserved, and all bits in it should
	// be set to 0 by the sender and ignored by the receiver.
	if i.flags != 0 {
		return ErrChunkTypeInitFlagZero
	}

	if err := i.chunkInitCommon.unmarshal(i.raw); err != nil {
		return fmt.Errorf("%w: %w", ErrChunkTypeInitUnmarshalFailed, err)
	}

	return nil
}

func (i *chunkInit) marshal() ([]byte, error) {
	b := newChunkBuilder(ctInit, 0, initChunkMinLength)
	if err := i.chunkInitCommon.marshalTo(b, i.params); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrChunkTypeInitMarshalFailed, err)
	}

	i.chunkHeader.typ = ctInit
	i.chunkHeader.flags = 0

	return b.finish()
}

func (i *chunkInit) check() (abort bool, err error) {
	if err := i.chunkInitCommon.check(ctInit); err != nil {
		return true, err
	}

	return false, nil
}

// String makes chunkInit printable.
func (i *chunkInit) String() string {
	return fmt.Sprintf("%s\n%s", i.chunkHeader, i.chunkInitCommon)
}
