// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
	"fmt"
)

// errorCauseCode is a cause code that appears in either an ERROR or ABORT chunk (RFC 9260 section 3.3.10).
type errorCauseCode uint16

// RFC 9260 section 3.3.10 "Error Causes".
const (
	invalidStreamIdentifier                errorCauseCode = 1
	missingMandatoryParameter              errorCauseCode = 2
	staleCookieError                       errorCauseCode = 3
	outOfResource                          errorCauseCode = 4
	unresolvableAddress                    errorCauseCode = 5
	unrecognizedChunkType                  errorCauseCode = 6
	invalidMandatoryParameter              errorCauseCode = 7
	unrecognizedParameters                 errorCauseCode = 8
	noUserData                             errorCauseCode = 9
	cookieReceivedWhileShuttingDown        errorCauseCode = 10
	restartOfAnAssociationWithNewAddresses errorCauseCode = 11
	userInitiatedAbort                     errorCauseCode = 12
	protocolViolation                      errorCauseCode = 13
)

func (e errorCauseCode) String() string { //nolint:cyclop
	switch e {
	case invalidStreamIdentifier:
		return "Invalid Stream Identifier"
	case missingMandatoryParameter:
		return "Missing Mandatory Parameter"
	case staleCookieError:
		return "Stale Cookie Error"
	case outOfResource:
		return "Out of Resource"
	case unresolvableAddress:
		return "Unresolvable Address"
	case unrecognizedChunkType:
		return "Unrecognized Chunk Type"
	case invalidMandatoryParameter:
		return "Invalid Mandatory Parameter"
	case unrecognizedParameters:
		return "Unrecognized Parameters"
	case noUserData:
		return "No User Data"
	case cookieReceivedWhileShuttingDown:
		return "Cookie Received While Shutting Down"
	case restartOfAnAssociationWithNewAddresses:
		return "Restart of an Association with New Addresses"
	case userInitiatedAbort:
		return "User Initiated Abort"
	case protocolViolation:
		return "Protocol Violation"
	default:
		return fmt.Sprintf("Unknown CauseCode: %d", e)
	}
}

/*
errorCause is one Error Cause TLV. It has the layout of a parameter, so it
is decoded with paramDecoder and encoded through paramHeader.

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|           Cause Code          |        Cause Length           |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	/                    Cause-Specific Information                 /
	\                                                               \
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/
type errorCause struct {
	code errorCauseCode
	raw  []byte
}

// Errors for building/validating error causes.
var (
	ErrNoErrorCauses        = errors.New("chunk carries no error causes")
	ErrUnrecognizedNotFound = errors.New("no unrecognized parameter asks to be reported")
)

// newUnrecognizedParametersCause reports the parameters whose action bits ask
// for a report (RFC 9260 section 3.2.1). The parameters are echoed verbatim.
func newUnrecognizedParametersCause(params []paramHeader) (*errorCause, error) {
	var raw []byte
	for i := range params {
		switch params[i].unrecognizedAction {
		case paramHeaderUnrecognizedActionStopAndReport, paramHeaderUnrecognizedActionSkipAndReport:
		default:
			continue
		}

		encoded, err := encodeParam(&params[i])
		if err != nil {
			return nil, err
		}
		raw = append(raw, encoded...)
	}
	if len(raw) == 0 {
		return nil, ErrUnrecognizedNotFound
	}

	return &errorCause{code: unrecognizedParameters, raw: raw}, nil
}

func newUserInitiatedAbortCause(reason string) *errorCause {
	return &errorCause{code: userInitiatedAbort, raw: []byte(reason)}
}

func newProtocolViolationCause(info string) *errorCause {
	return &errorCause{code: protocolViolation, raw: []byte(info)}
}

func (e *errorCause) marshal() ([]byte, error) {
	h := paramHeader{typ: paramType(e.code), raw: e.raw}

	return h.marshal()
}

func (e *errorCause) length() int {
	return paramHeaderLength + len(e.raw)
}

// String makes errorCause printable.
func (e *errorCause) String() string {
	switch e.code {
	case userInitiatedAbort, protocolViolation:
		return fmt.Sprintf("%s: %q", e.code, e.raw)
	default:
		return fmt.Sprintf("%s: %x", e.code, e.raw)
	}
}

// decodeErrorCauses reads the Error Cause TLVs of an ERROR or ABORT chunk body.
func decodeErrorCauses(body []byte) ([]*errorCause, error) {
	var causes []*errorCause

	decoder := newParamDecoder(body)
	for decoder.more() {
		header, _, err := decoder.next()
		if err != nil {
			return nil, err
		}
		causes = append(causes, &errorCause{code: errorCauseCode(header.typ), raw: header.raw})
	}

	return causes, nil
}

// putErrorCauses appends causes to b, each padded to a 4-byte boundary.
func putErrorCauses(b *chunkBuilder, causes []*errorCause) error {
	for _, c := range causes {
		if err := b.putParam(c); err != nil {
			return err
		}
	}

	return nil
}

func formatErrorCauses(h chunkHeader, causes []*errorCause) string {
	res := h.String()
	for _, cause := range causes {
		res += fmt.Sprintf("\n - %s", cause)
	}

	return res
}
