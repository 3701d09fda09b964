// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
	"fmt"
	"strings"
)

/*
chunkReconfig carries one or two re-configuration parameters (RFC 6525 section 3.1).

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type=130    |  Chunk Flags  |        Chunk Length           |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	\                                                               \
	/                 Re-configuration Parameter(s)                 /
	\                                                               \
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type chunkReconfig struct {
	chunkHeader
	params []param
}

const reconfigMaxParams = 2

// Reconfigure chunk errors.
var (
	ErrChunkTypeNotReconfig    = errors.New("ChunkType is not of type RECONFIG")
	ErrReconfigNoParams        = errors.New("RECONFIG carries no parameters")
	ErrReconfigTooManyParams   = errors.New("RECONFIG carries more than two parameters")
	ErrReconfigParamUnexpected = errors.New("parameter not allowed in RECONFIG")
)

func (c *chunkReconfig) unmarshal(raw []byte) error {
	if err := c.chunkHeader.unmarshal(raw); err != nil {
		return err
	}

	if c.typ != ctReconfig {
		return fmt.Errorf("%w: actually is %s", ErrChunkTypeNotReconfig, c.typ.String())
	}

	c.params = nil
	decoder := newParamDecoder(c.raw)
	for decoder.more() {
		header, rawParam, err := decoder.next()
		if err != nil {
			return err
		}

		if header.typ != outSSNResetReq && header.typ != reconfigResp {
			return fmt.Errorf("%w: %s", ErrReconfigParamUnexpected, header.typ)
		}

		p, err := buildParam(header.typ, rawParam)
		if err != nil {
			return err
		}
		c.params = append(c.params, p)
	}

	if len(c.params) == 0 {
		return ErrReconfigNoParams
	}

	return nil
}

func (c *chunkReconfig) marshal() ([]byte, error) {
	if len(c.params) == 0 {
		return nil, ErrReconfigNoParams
	}

	c.typ = ctReconfig
	c.flags = 0

	b := newChunkBuilder(ctReconfig, 0, len(c.params)*(paramHeaderLength+outgoingResetRequestFixedLength))
	for _, p := range c.params {
		if err := b.putParam(p); err != nil {
			return nil, err
		}
	}

	return b.finish()
}

func (c *chunkReconfig) check() (abort bool, err error) {
	if len(c.params) > reconfigMaxParams {
		return false, fmt.Errorf("%w: %d", ErrReconfigTooManyParams, len(c.params))
	}

	return false, nil
}

// resetRequests returns the outgoing stream reset requests in the chunk.
func (c *chunkReconfig) resetRequests() []*paramOutgoingResetRequest {
	var out []*paramOutgoingResetRequest
	for _, p := range c.params {
		if r, ok := p.(*paramOutgoingResetRequest); ok {
			out = append(out, r)
		}
	}

	return out
}

// String makes chunkReconfig printable.
func (c *chunkReconfig) String() string {
	var sb strings.Builder
	sb.WriteString("RECONFIG params:")
	for i, p := range c.params {
		fmt.Fprintf(&sb, "\n  [%d] %s", i, p)
	}

	return sb.String()
}
