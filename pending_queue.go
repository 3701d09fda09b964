// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"errors"
)

// pendingQueue holds filled DATA chunks until the association assigns them a
// TSN and puts them on the wire. Once the first fragment of a message is
// popped, the same sub-queue is drained until that message's last fragment so
// fragments of different messages never interleave.
type pendingQueue struct {
	unorderedQueue      *queue[*chunkPayloadData]
	orderedQueue        *queue[*chunkPayloadData]
	nBytes              int
	selected            bool
	unorderedIsSelected bool
}

// Pending queue errors.
var (
	ErrUnexpectedChunkPoppedUnordered = errors.New("unexpected chunk popped (unordered)")
	ErrUnexpectedChunkPoppedOrdered   = errors.New("unexpected chunk popped (ordered)")
	ErrUnexpectedQState               = errors.New("unexpected q state (should've been selected)")
)

func newPendingQueue() *pendingQueue {
	return &pendingQueue{
		unorderedQueue: newQueue[*chunkPayloadData](0),
		orderedQueue:   newQueue[*chunkPayloadData](0),
	}
}

func (q *pendingQueue) push(c *chunkPayloadData) {
	if c.unordered {
		q.unorderedQueue.pushBack(c)
	} else {
		q.orderedQueue.pushBack(c)
	}
	q.nBytes += len(c.userData)
}

// unpush takes back c, which must be the last chunk pushed onto its
// sub-queue. It reports whether c was found there.
func (q *pendingQueue) unpush(c *chunkPayloadData) bool {
	sub := q.orderedQueue
	if c.unordered {
		sub = q.unorderedQueue
	}
	if sub.empty() || sub.at(sub.size()-1) != c {
		return false
	}
	sub.popBack()
	q.nBytes = max(q.nBytes-len(c.userData), 0)

	return true
}

func frontOrNil(q *queue[*chunkPayloadData]) *chunkPayloadData {
	if q.empty() {
		return nil
	}

	return q.front()
}

func (q *pendingQueue) peek() *chunkPayloadData {
	if q.selected {
		if q.unorderedIsSelected {
			return frontOrNil(q.unorderedQueue)
		}

		return frontOrNil(q.orderedQueue)
	}

	if c := frontOrNil(q.unorderedQueue); c != nil {
		return c
	}

	return frontOrNil(q.orderedQueue)
}

// pop removes c, which must be the chunk returned by the last peek.
func (q *pendingQueue) pop(c *chunkPayloadData) error {
	unordered := c.unordered
	if q.selected {
		unordered = q.unorderedIsSelected
	} else if !c.beginningFragment {
		return ErrUnexpectedQState
	}

	sub, errPopped := q.orderedQueue, ErrUnexpectedChunkPoppedOrdered
	if unordered {
		sub, errPopped = q.unorderedQueue, ErrUnexpectedChunkPoppedUnordered
	}

	if frontOrNil(sub) != c {
		return errPopped
	}
	sub.popFront()

	q.selected = !c.endingFragment
	q.unorderedIsSelected = q.selected && unordered

	q.nBytes = max(q.nBytes-len(c.userData), 0)

	return nil
}

func (q *pendingQueue) getNumBytes() int {
	return q.nBytes
}

func (q *pendingQueue) size() int {
	return q.unorderedQueue.size() + q.orderedQueue.size()
}
