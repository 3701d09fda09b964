// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// State Cookie (type 7) carries the opaque data the INIT ACK sender needs to
// rebuild its association state from the COOKIE ECHO (RFC 9260 section 3.3.3).
type paramStateCookie struct {
	paramHeader
	cookie []byte
}

const stateCookieRandomLength = 32

// ErrStateCookieEmpty is returned for a State Cookie parameter without a value.
var ErrStateCookieEmpty = errors.New("state cookie parameter has no value")

func newRandomStateCookie() (*paramStateCookie, error) {
	randCookie := make([]byte, stateCookieRandomLength)
	if _, err := rand.Read(randCookie); err != nil {
		return nil, err
	}

	return &paramStateCookie{cookie: randCookie}, nil
}

func (s *paramStateCookie) marshal() ([]byte, error) {
	if len(s.cookie) == 0 {
		return nil, ErrStateCookieEmpty
	}

	s.typ = stateCookie
	s.raw = s.cookie

	return s.paramHeader.marshal()
}

func (s *paramStateCookie) unmarshal(raw []byte) (param, error) {
	if err := s.paramHeader.unmarshal(raw); err != nil {
		return nil, err
	}

	if len(s.raw) == 0 {
		return nil, ErrStateCookieEmpty
	}
	s.cookie = s.raw

	return s, nil
}

// String makes paramStateCookie printable.
func (s *paramStateCookie) String() string {
	return fmt.Sprintf("%s: %x", s.typ, s.cookie)
}
