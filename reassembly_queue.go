// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctp

import (
	"sort"
)

// chunkSet holds the fragments of one ordered message, sorted by TSN.
type chunkSet struct {
	ssn    uint16
	chunks []*chunkPayloadData
}

func newChunkSet(ssn uint16) *chunkSet {
	return &chunkSet{ssn: ssn}
}

// push inserts c at its TSN position. It returns false for a duplicate TSN.
func (set *chunkSet) push(c *chunkPayloadData) bool {
	var ok bool
	set.chunks, ok = insertByTSN(set.chunks, c)

	return ok
}

func (set *chunkSet) isComplete() bool {
	return completeRunEnd(set.chunks, 0) == len(set.chunks)-1
}

func insertByTSN(chunks []*chunkPayloadData, c *chunkPayloadData) ([]*chunkPayloadData, bool) {
	idx := sort.Search(len(chunks), func(i int) bool {
		return sna32LTE(c.tsn, chunks[i].tsn)
	})
	if idx < len(chunks) && chunks[idx].tsn == c.tsn {
		return chunks, false
	}

	chunks = append(chunks, nil)
	copy(chunks[idx+1:], chunks[idx:])
	chunks[idx] = c

	return chunks, true
}

// completeRunEnd returns the index of the chunk that ends the message starting
// at chunks[start], or -1 when the run is not (yet) complete. A run is
// complete when it starts with B, ends with E and has no TSN gap.
func completeRunEnd(chunks []*chunkPayloadData, start int) int {
	if start >= len(chunks) || !chunks[start].beginningFragment {
		return -1
	}

	for i := start; i < len(chunks); i++ {
		if i > start && chunks[i].tsn != chunks[i-1].tsn+1 {
			return -1
		}
		if chunks[i].endingFragment {
			return i
		}
	}

	return -1
}

// reassemblyQueue collects DATA chunks of one stream as they arrive, in any
// order, and releases complete TSN-ordered fragment sets. Ordered messages
// are released strictly by SSN; unordered ones as soon as they are complete.
type reassemblyQueue struct {
	si              uint16
	nextSSN         uint16 // expected SSN for next ordered chunk
	ordered         []*chunkSet
	unorderedChunks []*chunkPayloadData
	nBytes          int
}

func newReassemblyQueue(si uint16) *reassemblyQueue {
	return &reassemblyQueue{
		si:      si,
		ordered: make([]*chunkSet, 0),
	}
}

// push stores c. It returns false when c was dropped as a duplicate or as
// belonging to an SSN that was already delivered.
func (r *reassemblyQueue) push(c *chunkPayloadData) bool {
	if c.streamIdentifier != r.si {
		return false
	}

	if c.unordered {
		var ok bool
		if r.unorderedChunks, ok = insertByTSN(r.unorderedChunks, c); ok {
			r.nBytes += len(c.userData)
		}

		return ok
	}

	if sna16LT(c.streamSequenceNumber, r.nextSSN) {
		return false
	}

	idx := sort.Search(len(r.ordered), func(i int) bool {
		return !sna16LT(r.ordered[i].ssn, c.streamSequenceNumber)
	})
	if idx == len(r.ordered) || r.ordered[idx].ssn != c.streamSequenceNumber {
		r.ordered = append(r.ordered, nil)
		copy(r.ordered[idx+1:], r.ordered[idx:])
		r.ordered[idx] = newChunkSet(c.streamSequenceNumber)
	}

	if !r.ordered[idx].push(c) {
		return false
	}
	r.nBytes += len(c.userData)

	return true
}

// popComplete removes and returns every fragment set that can be delivered now.
func (r *reassemblyQueue) popComplete() [][]*chunkPayloadData {
	var ready [][]*chunkPayloadData

	for start := 0; start < len(r.unorderedChunks); {
		end := completeRunEnd(r.unorderedChunks, start)
		if end < 0 {
			start++

			continue
		}

		set := make([]*chunkPayloadData, end-start+1)
		copy(set, r.unorderedChunks[start:end+1])
		r.unorderedChunks = append(r.unorderedChunks[:start], r.unorderedChunks[end+1:]...)
		ready = append(ready, set)
	}

	for len(r.ordered) > 0 {
		set := r.ordered[0]
		if set.ssn != r.nextSSN || !set.isComplete() {
			break
		}

		r.ordered[0] = nil
		r.ordered = r.ordered[1:]
		r.nextSSN++
		ready = append(ready, set.chunks)
	}

	for _, set := range ready {
		for _, c := range set {
			r.nBytes -= len(c.userData)
		}
	}

	return ready
}

func (r *reassemblyQueue) getNumBytes() int {
	return r.nBytes
}
