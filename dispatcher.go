// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"sync"

	"github.com/pion/logging"
)

// Dispatcher runs listener callbacks on a single worker goroutine so the
// goroutine reading from the network never blocks on application code.
// Messages are dispatched in the order they were enqueued.
type Dispatcher struct {
	lock    sync.Mutex
	pending *queue[*Message]
	closed  bool

	awakeCh chan struct{}
	closeCh chan struct{}
	doneCh  chan struct{}

	log logging.LeveledLogger
}

// NewDispatcher starts a dispatcher worker. Close must be called to stop it.
func NewDispatcher(opts ...DispatcherOption) (*Dispatcher, error) {
	var cfg dispatcherConfig
	for _, opt := range opts {
		if err := opt.applyDispatcher(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.loggerFactory == nil {
		cfg.loggerFactory = logging.NewDefaultLoggerFactory()
	}

	d := &Dispatcher{
		pending: newQueue[*Message](0),
		awakeCh: make(chan struct{}, 1),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
		log:     cfg.loggerFactory.NewLogger("sctp"),
	}
	go d.loop()

	return d, nil
}

func (d *Dispatcher) enqueue(m *Message) error {
	d.lock.Lock()
	if d.closed {
		d.lock.Unlock()

		return ErrDispatcherClosed
	}
	d.pending.pushBack(m)
	d.lock.Unlock()

	select {
	case d.awakeCh <- struct{}{}:
	default:
	}

	return nil
}

// Pending returns the number of messages waiting for the worker.
func (d *Dispatcher) Pending() int {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.pending.size()
}

func (d *Dispatcher) loop() {
	defer close(d.doneCh)

	for {
		d.drain()

		select {
		case <-d.awakeCh:
		case <-d.closeCh:
			// Messages accepted before Close are still dispatched.
			d.drain()
			d.log.Debug("dispatcher stopped")

			return
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		d.lock.Lock()
		batch := d.pending.drain()
		d.lock.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, m := range batch {
			m.run()
		}
	}
}

// Close stops accepting messages, waits for the worker to dispatch the ones
// already accepted and returns. It is safe to call more than once.
func (d *Dispatcher) Close() error {
	d.lock.Lock()
	if !d.closed {
		d.closed = true
		close(d.closeCh)
	}
	d.lock.Unlock()

	<-d.doneCh

	return nil
}
