// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

// payloadKind is the closed set of message kinds a Listener can accept.
type payloadKind uint8

const (
	payloadBinary payloadKind = iota
	payloadString
)

func (k payloadKind) String() string {
	if k == payloadString {
		return "string"
	}

	return "binary"
}

// payloadClass pairs a payload kind with the zero-length marker that the
// WebRTC "Empty" PPIDs carry (RFC 8831 section 6.6).
type payloadClass struct {
	kind  payloadKind
	empty bool
}

// classifyPayload maps a PPID onto its payload class. DCEP and unknown
// identifiers have no class and are never handed to a Listener.
func classifyPayload(ppi PayloadProtocolIdentifier) (payloadClass, bool) {
	switch ppi {
	case PayloadTypeWebRTCBinary:
		return payloadClass{kind: payloadBinary}, true
	case PayloadTypeWebRTCBinaryEmpty:
		return payloadClass{kind: payloadBinary, empty: true}, true
	case PayloadTypeWebRTCString:
		return payloadClass{kind: payloadString}, true
	case PayloadTypeWebRTCStringEmpty:
		return payloadClass{kind: payloadString, empty: true}, true
	default:
		return payloadClass{}, false
	}
}

// payloadTypeFor picks the PPID for a payload of the given kind and length.
func payloadTypeFor(kind payloadKind, length int) PayloadProtocolIdentifier {
	switch {
	case kind == payloadString && length == 0:
		return PayloadTypeWebRTCStringEmpty
	case kind == payloadString:
		return PayloadTypeWebRTCString
	case length == 0:
		return PayloadTypeWebRTCBinaryEmpty
	default:
		return PayloadTypeWebRTCBinary
	}
}

func isEmptyPayload(ppi PayloadProtocolIdentifier) bool {
	class, ok := classifyPayload(ppi)

	return ok && class.empty
}
