// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

/*
paramOutgoingResetRequest asks the peer to reset some or all of the sender's
outgoing streams (RFC 6525 section 4.1). WebRTC closes a data channel this way.

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|     Parameter Type = 13       | Parameter Length = 16 + 2 * N |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|           Re-configuration Request Sequence Number            |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|           Re-configuration Response Sequence Number           |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                Sender's Last Assigned TSN                     |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|  Stream Number 1 (optional)   |    Stream Number 2 (optional) |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	/                            ......                             /
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

An empty stream list resets every stream.
*/
type paramOutgoingResetRequest struct {
	paramHeader
	reconfigRequestSequenceNumber  uint32
	reconfigResponseSequenceNumber uint32
	senderLastTSN                  uint32
	streamIdentifiers              []uint16
}

const outgoingResetRequestFixedLength = 12

// Outgoing reset request parameter errors.
var (
	ErrSSNResetRequestParamTooShort      = errors.New("outgoing SSN reset request parameter too short")
	ErrSSNResetRequestParamInvalidLength = errors.New("outgoing SSN reset request parameter invalid length")
)

func (r *paramOutgoingResetRequest) marshal() ([]byte, error) {
	r.typ = outSSNResetReq
	r.raw = make([]byte, 0, outgoingResetRequestFixedLength+2*len(r.streamIdentifiers))
	r.raw = binary.BigEndian.AppendUint32(r.raw, r.reconfigRequestSequenceNumber)
	r.raw = binary.BigEndian.AppendUint32(r.raw, r.reconfigResponseSequenceNumber)
	r.raw = binary.BigEndian.AppendUint32(r.raw, r.senderLastTSN)
	for _, sid := range r.streamIdentifiers {
		r.raw = binary.BigEndian.AppendUint16(r.raw, sid)
	}

	return r.paramHeader.marshal()
}

func (r *paramOutgoingResetRequest) unmarshal(raw []byte) (param, error) {
	if err := r.paramHeader.unmarshal(raw); err != nil {
		return nil, err
	}

	if len(r.raw) < outgoingResetRequestFixedLength {
		return nil, fmt.Errorf("%w: %d", ErrSSNResetRequestParamTooShort, len(r.raw))
	}
	if (len(r.raw)-outgoingResetRequestFixedLength)%2 != 0 {
		return nil, ErrSSNResetRequestParamInvalidLength
	}

	r.reconfigRequestSequenceNumber = binary.BigEndian.Uint32(r.raw)
	r.reconfigResponseSequenceNumber = binary.BigEndian.Uint32(r.raw[4:])
	r.senderLastTSN = binary.BigEndian.Uint32(r.raw[8:])

	r.streamIdentifiers = make([]uint16, 0, (len(r.raw)-outgoingResetRequestFixedLength)/2)
	for off := outgoingResetRequestFixedLength; off < len(r.raw); off += 2 {
		r.streamIdentifiers = append(r.streamIdentifiers, binary.BigEndian.Uint16(r.raw[off:]))
	}

	return r, nil
}

// String makes paramOutgoingResetRequest printable.
func (r *paramOutgoingResetRequest) String() string {
	return fmt.Sprintf("%s: rsn=%d response=%d lastTSN=%d streams=%v", outSSNResetReq,
		r.reconfigRequestSequenceNumber, r.reconfigResponseSequenceNumber, r.senderLastTSN, r.streamIdentifiers)
}
