// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

const (
	paddingMultiple = 4
)

func getPadding(l int) int {
	return (paddingMultiple - (l % paddingMultiple)) % paddingMultiple
}

func padByte(in []byte, cnt int) []byte {
	if cnt <= 0 {
		return in
	}

	return append(in, make([]byte, cnt)...)
}

// allZero returns true if every byte is 0x00.
func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}

	return true
}

// Serial Number Arithmetic (RFC 1982). TSNs wrap at 2^32 and SSNs at 2^16,
// so plain integer comparison gives the wrong answer near the wrap point.
const (
	serialBits32 = uint32(1) << 31
	serialBits16 = uint16(1) << 15
)

func sna32LT(i1, i2 uint32) bool {
	return (i1 < i2 && i2-i1 < serialBits32) || (i1 > i2 && i1-i2 > serialBits32)
}

func sna32LTE(i1, i2 uint32) bool {
	return i1 == i2 || sna32LT(i1, i2)
}

func sna16LT(i1, i2 uint16) bool {
	return (i1 < i2 && (i2-i1) < serialBits16) || (i1 > i2 && (i1-i2) > serialBits16)
}
