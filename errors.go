// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
)

var (
	errNilLoggerFactory = errors.New("loggerFactory must not be nil")
	errNilDispatcher    = errors.New("dispatcher must not be nil")
	errNilUndelivered   = errors.New("undelivered log must not be nil")

	// errZeroMaxChunkSize indicates that the max chunk size option was too small to carry any data.
	errZeroMaxChunkSize = errors.New("MaxChunkSize option leaves no room for user data")
)

// Reassembly errors. These point at a bug in whatever assembled the chunk
// set, never at remote input.
var (
	ErrInvalidFragmentSequence = errors.New("fragment set does not run from a BEGIN chunk to an END chunk")
	ErrPayloadIDMismatch       = errors.New("chunk has wrong payload protocol identifier")
	ErrExpectedSingleFlag      = errors.New("must use a 'single' chunk")
)

// Message errors.
var (
	ErrMessageDispatched    = errors.New("message was already dispatched")
	ErrMessageFullySent     = errors.New("message has no more data to fill")
	ErrMessageWrongStream   = errors.New("message belongs to another stream")
	ErrMessageAlreadyQueued = errors.New("message was already queued for sending")
	ErrMessageNoStream      = errors.New("message has no stream")
	ErrZeroChunkCapacity    = errors.New("DATA chunk has no capacity for user data")
	ErrStreamClosed         = errors.New("stream closed")
	ErrDispatcherClosed     = errors.New("dispatcher closed")
)
