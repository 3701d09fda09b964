// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
	"fmt"
)

type chunk interface {
	unmarshal(raw []byte) error
	marshal() ([]byte, error)
	check() (bool, error)

	valueLength() int
}

// ErrUnmarshalUnknownChunkType is returned for a chunk type this stack does not decode.
var ErrUnmarshalUnknownChunkType = errors.New("failed to unmarshal, contains unknown chunk type")

// parseChunk decodes the chunk at the start of raw. Bytes past the declared
// chunk length (padding, bundled chunks) are left alone.
func parseChunk(raw []byte) (chunk, error) { //nolint:cyclop
	typ, _, _, err := decodeChunkHeader(raw)
	if err != nil {
		return nil, err
	}

	var c chunk
	switch typ {
	case ctPayloadData:
		c = &chunkPayloadData{}
	case ctInit:
		c = &chunkInit{}
	case ctInitAck:
		c = &chunkInitAck{}
	case ctSack:
		c = &chunkSelectiveAck{}
	case ctHeartbeat:
		c = &chunkHeartbeat{}
	case ctHeartbeatAck:
		c = &chunkHeartbeatAck{}
	case ctAbort:
		c = &chunkAbort{}
	case ctCookieEcho:
		c = &chunkCookieEcho{}
	case ctCookieAck:
		c = &chunkCookieAck{}
	case ctShutdown:
		c = &chunkShutdown{}
	case ctError:
		c = &chunkError{}
	case ctShutdownAck:
		c = &chunkShutdownAck{}
	case ctShutdownComplete:
		c = &chunkShutdownComplete{}
	case ctForwardTSN:
		c = &chunkForwardTSN{}
	case ctReconfig:
		c = &chunkReconfig{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnmarshalUnknownChunkType, typ)
	}

	if err := c.unmarshal(raw); err != nil {
		return nil, err
	}

	return c, nil
}
