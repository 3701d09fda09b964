// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

const defaultUndeliveredLogSize = 64

// UndeliveredMessage describes a reassembled message that no listener
// callback accepted.
type UndeliveredMessage struct {
	StreamIdentifier     uint16 `msgpack:"sid"`
	Label                string `msgpack:"label"`
	StreamSequenceNumber uint16 `msgpack:"ssn"`
	PayloadType          uint32 `msgpack:"ppid"`
	Length               int    `msgpack:"len"`
	Reason               string `msgpack:"reason"`
}

// UndeliveredLog keeps the most recent undelivered messages of one or more
// streams. It is safe for concurrent use.
type UndeliveredLog struct {
	lock    sync.Mutex
	size    int
	records *queue[UndeliveredMessage]
	count   uint64
}

type undeliveredSnapshot struct {
	Count   uint64               `msgpack:"count"`
	Records []UndeliveredMessage `msgpack:"records"`
}

// NewUndeliveredLog returns a log retaining the last size records. A size
// of zero or less selects the default.
func NewUndeliveredLog(size int) *UndeliveredLog {
	if size <= 0 {
		size = defaultUndeliveredLogSize
	}

	return &UndeliveredLog{
		size:    size,
		records: newQueue[UndeliveredMessage](size),
	}
}

func (u *UndeliveredLog) record(rec UndeliveredMessage) {
	u.lock.Lock()
	defer u.lock.Unlock()

	if u.records.size() == u.size {
		u.records.popFront()
	}
	u.records.pushBack(rec)
	u.count++
}

// Count returns how many messages were recorded in total, including the
// ones no longer retained.
func (u *UndeliveredLog) Count() uint64 {
	u.lock.Lock()
	defer u.lock.Unlock()

	return u.count
}

// Records returns the retained records, oldest first.
func (u *UndeliveredLog) Records() []UndeliveredMessage {
	u.lock.Lock()
	defer u.lock.Unlock()

	return u.snapshot()
}

func (u *UndeliveredLog) snapshot() []UndeliveredMessage {
	out := make([]UndeliveredMessage, u.records.size())
	for i := range out {
		out[i] = u.records.at(i)
	}

	return out
}

// Export encodes the count and the retained records with MessagePack.
func (u *UndeliveredLog) Export() ([]byte, error) {
	u.lock.Lock()
	snap := undeliveredSnapshot{Count: u.count, Records: u.snapshot()}
	u.lock.Unlock()

	return msgpack.Marshal(&snap)
}

// DecodeUndelivered decodes a snapshot produced by Export.
func DecodeUndelivered(raw []byte) (uint64, []UndeliveredMessage, error) {
	var snap undeliveredSnapshot
	if err := msgpack.Unmarshal(raw, &snap); err != nil {
		return 0, nil, err
	}

	return snap.Count, snap.Records, nil
}
