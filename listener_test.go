// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPayload(t *testing.T) {
	tt := []struct {
		ppi   PayloadProtocolIdentifier
		class payloadClass
		ok    bool
	}{
		{PayloadTypeWebRTCBinary, payloadClass{kind: payloadBinary}, true},
		{PayloadTypeWebRTCBinaryEmpty, payloadClass{kind: payloadBinary, empty: true}, true},
		{PayloadTypeWebRTCString, payloadClass{kind: payloadString}, true},
		{PayloadTypeWebRTCStringEmpty, payloadClass{kind: payloadString, empty: true}, true},
		{PayloadTypeWebRTCDCEP, payloadClass{}, false},
		{PayloadTypeUnknown, payloadClass{}, false},
	}

	for _, tc := range tt {
		class, ok := classifyPayload(tc.ppi)
		assert.Equal(t, tc.ok, ok, "%s", tc.ppi)
		assert.Equal(t, tc.class, class, "%s", tc.ppi)
	}

	assert.Equal(t, PayloadTypeWebRTCStringEmpty, payloadTypeFor(payloadString, 0))
	assert.Equal(t, PayloadTypeWebRTCString, payloadTypeFor(payloadString, 1))
	assert.Equal(t, PayloadTypeWebRTCBinaryEmpty, payloadTypeFor(payloadBinary, 0))
	assert.Equal(t, PayloadTypeWebRTCBinary, payloadTypeFor(payloadBinary, 1))
}

func TestListener_Dispatch(t *testing.T) {
	var (
		binary []byte
		str    string
		calls  int
	)
	full := &Listener{
		OnBinary: func(_ *Stream, data []byte) { binary = data; calls++ },
		OnString: func(_ *Stream, msg string) { str = msg; calls++ },
	}

	assert.True(t, full.dispatch(nil, payloadClass{kind: payloadBinary}, []byte{1, 2}))
	assert.Equal(t, []byte{1, 2}, binary)

	assert.True(t, full.dispatch(nil, payloadClass{kind: payloadBinary, empty: true}, []byte{0}))
	assert.Equal(t, []byte{}, binary, "the placeholder byte is dropped")

	assert.True(t, full.dispatch(nil, payloadClass{kind: payloadString}, []byte("hey")))
	assert.Equal(t, "hey", str)

	assert.True(t, full.dispatch(nil, payloadClass{kind: payloadString, empty: true}, []byte{0}))
	assert.Equal(t, "", str)
	assert.Equal(t, 4, calls)

	stringsOnly := &Listener{OnString: full.OnString}
	assert.False(t, stringsOnly.dispatch(nil, payloadClass{kind: payloadBinary}, []byte{1}))

	var none *Listener
	assert.False(t, none.dispatch(nil, payloadClass{kind: payloadString}, []byte("x")))
	assert.Equal(t, 4, calls)
}
