// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"github.com/pion/logging"
)

const (
	initialMTU uint32 = 1228 // initial MTU for outgoing packets (to DTLS)

	defaultMaxChunkSize = initialMTU - packetHeaderSize
)

// StreamOption configures a Stream.
type StreamOption interface {
	applyStream(*streamConfig) error
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption interface {
	applyDispatcher(*dispatcherConfig) error
}

// SharedOption applies to both streams and dispatchers.
type SharedOption interface {
	StreamOption
	DispatcherOption
}

type commonConfig struct {
	loggerFactory logging.LoggerFactory
}

type streamConfig struct {
	commonConfig

	label        string
	maxChunkSize uint32
	unordered    bool
	listener     *Listener
	dispatcher   *Dispatcher
	undelivered  *UndeliveredLog
}

type dispatcherConfig struct {
	commonConfig
}

// sharedOption wraps an apply function that works for both streams and dispatchers.
type sharedOption func(*commonConfig) error

func (o sharedOption) applyStream(c *streamConfig) error         { return o(&c.commonConfig) }
func (o sharedOption) applyDispatcher(c *dispatcherConfig) error { return o(&c.commonConfig) }

type streamOption func(*streamConfig) error

func (o streamOption) applyStream(c *streamConfig) error { return o(c) }

// WithLoggerFactory sets the logger factory.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) SharedOption {
	return sharedOption(func(c *commonConfig) error {
		if loggerFactory == nil {
			return errNilLoggerFactory
		}
		c.loggerFactory = loggerFactory

		return nil
	})
}

// WithLabel sets the label used in the stream's log lines.
func WithLabel(label string) StreamOption {
	return streamOption(func(c *streamConfig) error {
		c.label = label

		return nil
	})
}

// WithMaxChunkSize bounds the encoded size of every DATA chunk the stream
// builds, headers included. The default leaves room for the common header
// within the initial MTU.
func WithMaxChunkSize(size uint32) StreamOption {
	return streamOption(func(c *streamConfig) error {
		if size <= chunkHeaderSize+payloadDataHeaderSize {
			return errZeroMaxChunkSize
		}
		c.maxChunkSize = size

		return nil
	})
}

// WithUnordered makes the stream send its messages with the U bit set.
// By default this is false.
func WithUnordered(b bool) StreamOption {
	return streamOption(func(c *streamConfig) error {
		c.unordered = b

		return nil
	})
}

// WithListener sets the initial listener of the stream.
func WithListener(l *Listener) StreamOption {
	return streamOption(func(c *streamConfig) error {
		c.listener = l

		return nil
	})
}

// WithDispatcher moves delivery of inbound messages onto d. Without it,
// listener callbacks run on the goroutine that handed in the DATA chunk.
func WithDispatcher(d *Dispatcher) StreamOption {
	return streamOption(func(c *streamConfig) error {
		if d == nil {
			return errNilDispatcher
		}
		c.dispatcher = d

		return nil
	})
}

// WithUndeliveredLog records messages no listener callback accepted.
func WithUndeliveredLog(u *UndeliveredLog) StreamOption {
	return streamOption(func(c *streamConfig) error {
		if u == nil {
			return errNilUndelivered
		}
		c.undelivered = u

		return nil
	})
}
