// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
	"fmt"
)

/*
chunkHeartbeatAck represents an SCTP Chunk of type HEARTBEAT ACK

An endpoint should send this chunk to its peer endpoint as a response
to a HEARTBEAT chunk (see RFC 9260 section 8.3).

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 5    | Chunk  Flags  |    Heartbeat Ack Length       |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                                                               |
	|            Heartbeat Information TLV (Variable-Length)        |
	|                                                               |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type chunkHeartbeatAck struct {
	chunkHeader
	info *paramHeartbeatInfo
}

// ErrChunkTypeNotHeartbeatAck is returned when a HEARTBEAT ACK is decoded from another chunk type.
var ErrChunkTypeNotHeartbeatAck = errors.New("chunk type is not of type HEARTBEAT ACK")

// newHeartbeatAck answers hb with its Heartbeat Info unchanged.
func newHeartbeatAck(hb *chunkHeartbeat) *chunkHeartbeatAck {
	return &chunkHeartbeatAck{
		info: &paramHeartbeatInfo{heartbeatInformation: hb.info.heartbeatInformation},
	}
}

func (h *chunkHeartbeatAck) unmarshal(raw []byte) error {
	if err := h.chunkHeader.unmarshal(raw); err != nil {
		return err
	}

	if h.typ != ctHeartbeatAck {
		return fmt.Errorf("%w %s", ErrChunkTypeNotHeartbeatAck, h.typ.String())
	}

	info, err := decodeHeartbeatInfo(h.raw)
	if err != nil {
		return err
	}
	h.info = info

	return nil
}

func (h *chunkHeartbeatAck) marshal() ([]byte, error) {
	return marshalHeartbeat(ctHeartbeatAck, h.info)
}

func (h *chunkHeartbeatAck) check() (abort bool, err error) {
	return false, nil
}
