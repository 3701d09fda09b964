// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
	"fmt"
)

/*
chunkHeartbeat represents an SCTP Chunk of type HEARTBEAT (RFC 9260 section 3.3.5)

An endpoint sends this chunk to probe reachability of a destination address.
The chunk MUST contain exactly one variable-length parameter:

Variable Parameters                 Status     Type Value
-------------------------------------------------------------
Heartbeat Info                      Mandatory  1

nolint:godot
*/
type chunkHeartbeat struct {
	chunkHeader
	info *paramHeartbeatInfo
}

// Heartbeat chunk errors.
var (
	ErrChunkTypeNotHeartbeat  = errors.New("ChunkType is not of type HEARTBEAT")
	ErrHeartbeatParam         = errors.New("heartbeat should only have HEARTBEAT param")
	ErrHeartbeatMarshalNoInfo = errors.New("heartbeat marshal requires exactly one Heartbeat Info parameter")
)

// decodeHeartbeatInfo reads the single Heartbeat Info parameter shared by
// HEARTBEAT and HEARTBEAT ACK.
func decodeHeartbeatInfo(body []byte) (*paramHeartbeatInfo, error) {
	decoder := newParamDecoder(body)
	if !decoder.more() {
		return nil, ErrHeartbeatMarshalNoInfo
	}

	header, rawParam, err := decoder.next()
	if err != nil {
		return nil, err
	}
	if header.typ != heartbeatInfo {
		return nil, fmt.Errorf("%w: instead have %s", ErrHeartbeatParam, header.typ)
	}
	if decoder.more() {
		return nil, ErrHeartbeatParam
	}

	p, err := buildParam(header.typ, rawParam)
	if err != nil {
		return nil, err
	}

	return p.(*paramHeartbeatInfo), nil //nolint:forcetypeassert
}

func marshalHeartbeat(typ chunkType, info *paramHeartbeatInfo) ([]byte, error) {
	if info == nil {
		return nil, ErrHeartbeatMarshalNoInfo
	}

	b := newChunkBuilder(typ, 0, paramHeaderLength+len(info.heartbeatInformation))
	if err := b.putParam(info); err != nil {
		return nil, err
	}

	return b.finish()
}

func (h *chunkHeartbeat) unmarshal(raw []byte) error {
	if err := h.chunkHeader.unmarshal(raw); err != nil {
		return err
	}

	if h.typ != ctHeartbeat {
		return fmt.Errorf("%w: actually is %s", ErrChunkTypeNotHeartbeat, h.typ.String())
	}

	info, err := decodeHeartbeatInfo(h.raw)
	if err != nil {
		return err
	}
	h.info = info

	return nil
}

func (h *chunkHeartbeat) marshal() ([]byte, error) {
	return marshalHeartbeat(ctHeartbeat, h.info)
}

func (h *chunkHeartbeat) check() (abort bool, err error) {
	return false, nil
}
