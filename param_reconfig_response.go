// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

/*
paramReconfigResponse answers a re-configuration request (RFC 6525 section 4.4).

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|     Parameter Type = 16       |      Parameter Length         |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|         Re-configuration Response Sequence Number             |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                            Result                             |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                   Sender's Next TSN (optional)                |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|                  Receiver's Next TSN (optional)               |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type paramReconfigResponse struct {
	paramHeader
	reconfigResponseSequenceNumber uint32
	result                         reconfigResult

	// The receiver's next TSN may only follow the sender's.
	senderNextTSN   *uint32
	receiverNextTSN *uint32
}

type reconfigResult uint32

const (
	reconfigResultSuccessNOP                    reconfigResult = 0
	reconfigResultSuccessPerformed              reconfigResult = 1
	reconfigResultDenied                        reconfigResult = 2
	reconfigResultErrorWrongSSN                 reconfigResult = 3
	reconfigResultErrorRequestAlreadyInProgress reconfigResult = 4
	reconfigResultErrorBadSequenceNumber        reconfigResult = 5
	reconfigResultInProgress                    reconfigResult = 6
)

const reconfigResponseFixedLength = 8

// Reconfiguration response errors.
var (
	ErrReconfigRespParamTooShort      = errors.New("reconfig response parameter too short")
	ErrReconfigRespParamInvalidLength = errors.New("reconfig response parameter invalid length")
	ErrReconfigRespParamInvalidCombo  = errors.New("receiverNextTSN present requires senderNextTSN present")
)

func (t reconfigResult) String() string {
	switch t {
	case reconfigResultSuccessNOP:
		return "0: Success - Nothing to do"
	case reconfigResultSuccessPerformed:
		return "1: Success - Performed"
	case reconfigResultDenied:
		return "2: Denied"
	case reconfigResultErrorWrongSSN:
		return "3: Error - Wrong SSN"
	case reconfigResultErrorRequestAlreadyInProgress:
		return "4: Error - Request already in progress"
	case reconfigResultErrorBadSequenceNumber:
		return "5: Error - Bad Sequence Number"
	case reconfigResultInProgress:
		return "6: In progress"
	default:
		return fmt.Sprintf("Unknown reconfigResult: %d", t)
	}
}

func (r *paramReconfigResponse) marshal() ([]byte, error) {
	if r.receiverNextTSN != nil && r.senderNextTSN == nil {
		return nil, ErrReconfigRespParamInvalidCombo
	}

	r.typ = reconfigResp
	r.raw = make([]byte, 0, reconfigResponseFixedLength+8)
	r.raw = binary.BigEndian.AppendUint32(r.raw, r.reconfigResponseSequenceNumber)
	r.raw = binary.BigEndian.AppendUint32(r.raw, uint32(r.result))
	if r.senderNextTSN != nil {
		r.raw = binary.BigEndian.AppendUint32(r.raw, *r.senderNextTSN)
	}
	if r.receiverNextTSN != nil {
		r.raw = binary.BigEndian.AppendUint32(r.raw, *r.receiverNextTSN)
	}

	return r.paramHeader.marshal()
}

func (r *paramReconfigResponse) unmarshal(raw []byte) (param, error) {
	if err := r.paramHeader.unmarshal(raw); err != nil {
		return nil, err
	}

	switch {
	case len(r.raw) < reconfigResponseFixedLength:
		return nil, fmt.Errorf("%w: %d", ErrReconfigRespParamTooShort, len(r.raw))
	case len(r.raw) != 8 && len(r.raw) != 12 && len(r.raw) != 16:
		return nil, fmt.Errorf("%w: %d", ErrReconfigRespParamInvalidLength, len(r.raw))
	}

	r.reconfigResponseSequenceNumber = binary.BigEndian.Uint32(r.raw)
	r.result = reconfigResult(binary.BigEndian.Uint32(r.raw[4:]))
	r.senderNextTSN, r.receiverNextTSN = nil, nil
	if len(r.raw) >= 12 {
		v := binary.BigEndian.Uint32(r.raw[8:])
		r.senderNextTSN = &v
	}
	if len(r.raw) == 16 {
		v := binary.BigEndian.Uint32(r.raw[12:])
		r.receiverNextTSN = &v
	}

	return r, nil
}

// String makes paramReconfigResponse printable.
func (r *paramReconfigResponse) String() string {
	return fmt.Sprintf("%s: rsn=%d result=%s", reconfigResp, r.reconfigResponseSequenceNumber, r.result)
}
