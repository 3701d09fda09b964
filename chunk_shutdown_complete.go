// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
	"fmt"
)

/*
chunkShutdownComplete represents an SCTP Chunk of type SHUTDOWN COMPLETE (RFC 9260 section 3.3.13).

	 0                   1                   2                   3
	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
	|   Type = 14   |Reserved     |T|      Length = 4               |
	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

The T bit is set when the sender used the peer's tag as its own (reflected).
*/
type chunkShutdownComplete struct {
	chunkHeader
	tagReflected bool
}

const shutdownCompleteTBit = 0x01

// Shutdown complete chunk errors.
var (
	ErrChunkTypeNotShutdownComplete = errors.New("ChunkType is not of type SHUTDOWN-COMPLETE")
)

func (c *chunkShutdownComplete) unmarshal(raw []byte) error {
	if err := c.chunkHeader.unmarshal(raw); err != nil {
		return err
	}

	if c.typ != ctShutdownComplete {
		return fmt.Errorf("%w: actually is %s", ErrChunkTypeNotShutdownComplete, c.typ.String())
	}

	if len(c.raw) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChunkSize, len(c.raw))
	}
	c.tagReflected = c.flags&shutdownCompleteTBit != 0

	return nil
}

func (c *chunkShutdownComplete) marshal() ([]byte, error) {
	c.typ = ctShutdownComplete
	c.flags = 0
	if c.tagReflected {
		c.flags = shutdownCompleteTBit
	}
	c.raw = nil

	return c.chunkHeader.marshal()
}

func (c *chunkShutdownComplete) check() (abort bool, err error) {
	return false, nil
}
