// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

// Listener receives the messages reassembled on a Stream. Each callback is a
// capability: a nil OnBinary means the listener does not take binary
// messages, a nil OnString that it does not take strings. A message nobody can
// take is recorded as undelivered on the stream.
type Listener struct {
	OnBinary func(s *Stream, data []byte)
	OnString func(s *Stream, msg string)
}

// dispatch invokes the callback matching class and reports whether one ran.
func (l *Listener) dispatch(s *Stream, class payloadClass, data []byte) bool {
	if l == nil {
		return false
	}

	switch class.kind {
	case payloadBinary:
		if l.OnBinary == nil {
			return false
		}
		if class.empty {
			data = []byte{}
		}
		l.OnBinary(s, data)
	case payloadString:
		if l.OnString == nil {
			return false
		}
		msg := ""
		if !class.empty {
			msg = string(data)
		}
		l.OnString(s, msg)
	default:
		return false
	}

	return true
}
