// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp // nolint:dupl

import (
	"errors"
	"fmt"
)

/*
chunkInitAck represents an SCTP Chunk of type INIT ACK (RFC 9260 section 3.3.3).

See chunkInitCommon for the fixed headers.

Variable Parameters                     Status     Type Value
-------------------------------------------------------------
State Cookie                            Mandatory  7
IPv4 Address                            Optional   5
IPv6 Address                            Optional   6
Unrecognized Parameter                  Optional   8
Reserved for ECN Capable                Optional   32768 (0x8000)
Host Name Address                       Optional   11
Supported Address Types                 Optional   12

Decoded parameters stay in params in wire order. A cookie or extension list
set on a locally built chunk is only turned into a parameter at marshal time,
and only when params does not already carry one.

nolint:godot
*/
type chunkInitAck struct {
	chunkHeader
	chunkInitCommon

	cookie              []byte
	supportedExtensions []chunkType
}

// Init ack chunk errors.
var (
	ErrChunkTypeNotInitAck         = errors.New("ChunkType is not of type INIT ACK")
	ErrChunkNotLongEnoughForParams = errors.New("chunk Value isn't long enough for mandatory parameters exp")
	ErrInitAckUnmarshalFailed      = errors.New("failed to unmarshal INIT ACK body")
	ErrInitCommonDataMarshalFailed = errors.New("failed marshaling INIT ACK common data")
	ErrInitAckNoCookie             = errors.New("INIT ACK carries no state cookie")
)

// newInitAck answers an INIT with a random initiate tag, a random initial TSN
// and a random state cookie.
func newInitAck(aRwnd uint32, numOutboundStreams, numInboundStreams uint16) (*chunkInitAck, error) {
	cookie, err := newRandomStateCookie()
	if err != nil {
		return nil, err
	}

	initAck := &chunkInitAck{}
	initAck.initiateTag = randomInitiateTag()
	initAck.initialTSN = globalMathRandomGenerator.Uint32()
	initAck.advertisedReceiverWindowCredit = aRwnd
	initAck.numOutboundStreams = numOutboundStreams
	initAck.numInboundStreams = numInboundStreams
	initAck.params = []param{&paramForwardTSNSupported{}}
	initAck.setCookie(cookie.cookie)
	initAck.setSupportedExtensions([]chunkType{ctReconfig, ctForwardTSN})

	return initAck, nil
}

func (i *chunkInitAck) setCookie(cookie []byte) {
	if p := i.cookieParam(); p != nil {
		p.cookie = cookie

		return
	}
	i.cookie = cookie
}

func (i *chunkInitAck) setSupportedExtensions(types []chunkType) {
	if p := i.extensionsParam(); p != nil {
		p.ChunkTypes = types

		return
	}
	i.supportedExtensions = types
}

func (i *chunkInitAck) cookieParam() *paramStateCookie {
	for _, p := range i.params {
		if c, ok := p.(*paramStateCookie); ok {
			return c
		}
	}

	return nil
}

func (i *chunkInitAck) extensionsParam() *paramSupportedExtensions {
	for _, p := range i.params {
		if e, ok := p.(*paramSupportedExtensions); ok {
			return e
		}
	}

	return nil
}

// stateCookie returns the first State Cookie carried by the chunk.
func (i *chunkInitAck) stateCookie() []byte {
	if p := i.cookieParam(); p != nil {
		return p.cookie
	}

	return i.cookie
}

// extensions returns the first Supported Extensions list carried by the chunk.
func (i *chunkInitAck) extensions() []chunkType {
	if p := i.extensionsParam(); p != nil {
		return p.ChunkTypes
	}

	return i.supportedExtensions
}

func (i *chunkInitAck) unmarshal(raw []byte) error {
	if err := i.chunkHeader.unmarshal(raw); err != nil {
		return err
	}

	if i.typ != ctInitAck {
		return fmt.Errorf("%w: actually is %s", ErrChunkTypeNotInitAck, i.typ.String())
	}

	if len(i.raw) < initChunkMinLength {
		return fmt.Errorf("%w: %w: %d actual: %d",
			ErrTruncatedChunk, ErrChunkNotLongEnoughForParams, initChunkMinLength, len(i.raw))
	}

	// RFC 9260: INIT ACK flags are reserved, sender sets to 0, receiver ignores.

	i.cookie = nil
	i.supportedExtensions = nil
	if err := i.chunkInitCommon.unmarshal(i.raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInitAckUnmarshalFailed, err)
	}

	return nil
}

// materializedParams returns the parameters to put on the wire: params in
// order, then the pending cookie and extension list if params has none.
func (i *chunkInitAck) materializedParams() []param {
	params := make([]param, 0, len(i.params)+2)
	params = append(params, i.params...)

	if i.cookie != nil && i.cookieParam() == nil {
		params = append(params, &paramStateCookie{cookie: i.cookie})
	}

	if i.supportedExtensions != nil && i.extensionsParam() == nil {
		params = append(params, &paramSupportedExtensions{ChunkTypes: i.supportedExtensions})
	}

	return params
}

func (i *chunkInitAck) marshal() ([]byte, error) {
	b := newChunkBuilder(ctInitAck, 0, initChunkMinLength+len(i.stateCookie())+paramHeaderLength)
	if err := i.chunkInitCommon.marshalTo(b, i.materializedParams()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitCommonDataMarshalFailed, err)
	}

	i.chunkHeader.typ = ctInitAck
	i.chunkHeader.flags = 0 // RFC 9260: sender MUST set INIT ACK flags to 0

	return b.finish()
}

func (i *chunkInitAck) check() (abort bool, err error) {
	if err := i.chunkInitCommon.check(ctInitAck); err != nil {
		return true, err
	}

	if len(i.stateCookie()) == 0 {
		return true, ErrInitAckNoCookie
	}

	return false, nil
}

// String makes chunkInitAck printable.
func (i *chunkInitAck) String() string {
	return fmt.Sprintf("%s\n%s\n\tcookie: %d bytes", i.chunkHeader, i.chunkInitCommon, len(i.stateCookie()))
}
