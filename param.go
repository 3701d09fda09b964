// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
	"fmt"
)

type param interface {
	marshal() ([]byte, error)
	length() int
}

// ErrParamTypeUnhandled is returned if unknown parameter type is specified.
var ErrParamTypeUnhandled = errors.New("unhandled ParamType")

func buildParam(typeParam paramType, rawParam []byte) (param, error) {
	switch typeParam {
	case heartbeatInfo:
		return (&paramHeartbeatInfo{}).unmarshal(rawParam)
	case forwardTSNSupp:
		return (&paramForwardTSNSupported{}).unmarshal(rawParam)
	case supportedExt:
		return (&paramSupportedExtensions{}).unmarshal(rawParam)
	case stateCookie:
		return (&paramStateCookie{}).unmarshal(rawParam)
	case random:
		return (&paramRandom{}).unmarshal(rawParam)
	case reqHMACAlgo:
		return (&paramRequestedHMACAlgorithm{}).unmarshal(rawParam)
	case chunkList:
		return (&paramChunkList{}).unmarshal(rawParam)
	case outSSNResetReq:
		return (&paramOutgoingResetRequest{}).unmarshal(rawParam)
	case reconfigResp:
		return (&paramReconfigResponse{}).unmarshal(rawParam)
	case zeroChecksumAcceptable:
		return (&paramZeroChecksumAcceptable{}).unmarshal(rawParam)
	}

	return nil, fmt.Errorf("%w: %v", ErrParamTypeUnhandled, typeParam)
}

// encodeParam returns the wire form of p, zero padded to a 4-byte boundary.
// The length field inside stays unpadded.
func encodeParam(p param) ([]byte, error) {
	raw, err := p.marshal()
	if err != nil {
		return nil, err
	}

	return padByte(raw, getPadding(len(raw))), nil
}

// paramDecoder walks the variable-length parameters that trail the fixed
// fields of a chunk. The cursor only moves once a whole parameter, including
// its padding, has been consumed.
type paramDecoder struct {
	raw    []byte
	offset int
}

func newParamDecoder(raw []byte) *paramDecoder {
	return &paramDecoder{raw: raw}
}

func (d *paramDecoder) remaining() int {
	return len(d.raw) - d.offset
}

// more reports whether another parameter header may follow. A tail shorter
// than a header made only of zero bytes is padding.
func (d *paramDecoder) more() bool {
	rem := d.remaining()
	if rem == 0 {
		return false
	}

	return rem >= paramHeaderLength || !allZero(d.raw[d.offset:])
}

// next decodes the parameter at the cursor. On error the cursor is left where it was.
func (d *paramDecoder) next() (paramHeader, []byte, error) {
	var header paramHeader

	rem := d.remaining()
	if rem < paramHeaderLength {
		return header, nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncatedChunk, rem)
	}

	if err := header.unmarshal(d.raw[d.offset:]); err != nil {
		if errors.Is(err, ErrParamHeaderSelfReportedTooShort) {
			return header, nil, fmt.Errorf("%w: %v", ErrMalformedParameter, err) //nolint:errorlint
		}

		return header, nil, err
	}

	rawParam := d.raw[d.offset : d.offset+header.length()]

	// The last parameter of a chunk may arrive without its padding.
	d.offset = min(d.offset+header.length()+getPadding(header.length()), len(d.raw))

	return header, rawParam, nil
}
