// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package merge implements a K-way merge of sorted uint16 streams, keyed by
// a heap over each stream's current head. The heap holds one entry per
// input stream (key = stream's current head, shadow = stream index); after
// emitting the minimum, the merger either pops the heap (the stream is
// exhausted) or pushes the stream's next key down from the same position
// (cheaper than a pop followed by a push, since the position is already
// known).
package merge

import (
	"errors"

	"github.com/ajroetker/go8heap/heap8aux"
)

// ErrEmptyStream is returned by Merge if any input stream has no elements;
// the merger assumes every stream yields at least one key so it can always
// seed the heap with a real head value.
var ErrEmptyStream = errors.New("merge: empty input stream")

// Entry is one emitted (key, stream index) pair, naming which input stream
// contributed the key.
type Entry struct {
	Key    uint16
	Stream int
}

type record struct {
	data   []uint16
	cursor int
}

func (r *record) exhausted() bool { return r.cursor == len(r.data) }

// Merge performs a K-way merge of streams, each of which must already be
// sorted ascending and non-empty, and returns the fully interleaved
// ascending sequence together with the origin stream of each key.
func Merge(streams [][]uint16) ([]Entry, error) {
	for _, s := range streams {
		if len(s) == 0 {
			return nil, ErrEmptyStream
		}
	}

	records := make([]record, len(streams))
	for i, s := range streams {
		records[i] = record{data: s}
	}

	h := heap8aux.New[int]()
	if err := h.Extend(len(streams)); err != nil {
		return nil, err
	}
	for i := range records {
		h.SetEntry(i, heap8aux.Entry[int]{Key: records[i].data[0], Shadow: i})
	}
	h.Heapify()

	out := make([]Entry, 0, totalLen(streams))
	for h.Size() > 0 {
		idx := h.TopIndex()
		e := h.Entry(idx)
		out = append(out, Entry{Key: e.Key, Stream: e.Shadow})

		r := &records[e.Shadow]
		r.cursor++
		if r.exhausted() {
			h.PopEntry()
		} else {
			h.PushDown(r.data[r.cursor], e.Shadow, idx)
		}
	}
	return out, nil
}

func totalLen(streams [][]uint16) int {
	n := 0
	for _, s := range streams {
		n += len(s)
	}
	return n
}
