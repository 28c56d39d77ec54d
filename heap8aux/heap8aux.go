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

// Package heap8aux implements an 8-ary min-heap of uint16 keys that carries
// an arbitrary payload per key in a separate shadow slice, kept index-aligned
// with the key array. Moving a key during pull_up/push_down/heapify always
// moves its shadow entry along with it, so entry(i) == (keys[i], shadow[i])
// holds at every position for every caller outside of an in-flight mutation.
package heap8aux

import (
	"errors"

	"github.com/ajroetker/go8heap/internal/assert"
	"github.com/ajroetker/go8heap/hwy"
)

// ErrAllocationFailure is returned by Extend/AppendEntries/PushEntry when
// growing storage would exceed SizeMax. The heap is left unchanged.
var ErrAllocationFailure = errors.New("heap8aux: allocation failure")

// SizeMax is the largest multiple of hwy.Arity representable by int.
const SizeMax = int(^uint(0)>>1) - int(^uint(0)>>1)%hwy.Arity

// Entry pairs a key with its shadow payload.
type Entry[S any] struct {
	Key    uint16
	Shadow S
}

// Heap8Aux is an 8-ary min-heap of uint16 keys with an S-typed shadow payload
// per key. The zero value is an empty, ready-to-use heap.
type Heap8Aux[S any] struct {
	keys   []uint16
	shadow []S
	size   int
}

// New returns an empty Heap8Aux.
func New[S any]() *Heap8Aux[S] {
	return &Heap8Aux[S]{}
}

// Size returns the number of live entries.
func (h *Heap8Aux[S]) Size() int { return h.size }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap8Aux[S]) IsEmpty() bool { return h.size == 0 }

// Key returns the key at position i.
func (h *Heap8Aux[S]) Key(i int) uint16 {
	assert.That(i >= 0 && i < h.size, "Key: index %d out of range [0, %d)", i, h.size)
	return h.keys[i]
}

// Shadow returns the shadow payload at position i.
func (h *Heap8Aux[S]) Shadow(i int) S {
	assert.That(i >= 0 && i < h.size, "Shadow: index %d out of range [0, %d)", i, h.size)
	return h.shadow[i]
}

// Entry returns the (key, shadow) pair at position i.
func (h *Heap8Aux[S]) Entry(i int) Entry[S] {
	return Entry[S]{Key: h.Key(i), Shadow: h.Shadow(i)}
}

// SetEntry writes e at position i directly, without restoring the heap
// invariant. It is meant for filling the positions added by Extend before
// the one Heapify call that follows; using it on an otherwise-live heap
// leaves the invariant broken until the next Heapify.
func (h *Heap8Aux[S]) SetEntry(i int, e Entry[S]) {
	assert.That(i >= 0 && i < h.size, "SetEntry: index %d out of range [0, %d)", i, h.size)
	h.keys[i] = e.Key
	h.shadow[i] = e.Shadow
}

// TopIndex returns the position of the minimum entry, for use with
// PushDown when the caller already has its replacement key in hand (the
// multiway merger's steady-state path). Size must be > 0.
func (h *Heap8Aux[S]) TopIndex() int {
	assert.That(h.size > 0, "TopIndex: heap is empty")
	_, j := h.nodeMinPos(0)
	return j
}

func parent(q int) int   { return q/hwy.Arity - 1 }
func children(p int) int { return (p + 1) * hwy.Arity }

func (h *Heap8Aux[S]) nodeMinPos(q int) (uint16, int) {
	node := (*[hwy.Arity]uint16)(h.keys[q : q+hwy.Arity : q+hwy.Arity])
	return hwy.MinPos(hwy.V(*node))
}

// growTo ensures both keys and shadow hold at least newSize elements,
// growing each to the same node-count-aligned capacity so the two slices
// always stay the same length as each other, regardless of which one a
// caller happened to size storage through.
func (h *Heap8Aux[S]) growTo(newSize int) {
	if newSize <= len(h.keys) && newSize <= len(h.shadow) {
		return
	}
	newNodeCount := (newSize + hwy.Arity - 1) / hwy.Arity
	cap := newNodeCount * hwy.Arity

	if cap > len(h.keys) {
		grownKeys := make([]uint16, cap)
		copy(grownKeys, h.keys)
		for i := len(h.keys); i < len(grownKeys); i++ {
			grownKeys[i] = hwy.KMax
		}
		h.keys = grownKeys
	}
	if cap > len(h.shadow) {
		grownShadow := make([]S, cap)
		copy(grownShadow, h.shadow)
		h.shadow = grownShadow
	}
}

// extend grows storage for n more entries and returns a writable view over
// the new key positions, for AppendEntries' internal use. Shadow values for
// the new positions are not reset: freshly allocated storage holds the zero
// value, while storage reused after PopEntry still holds earlier payloads.
func (h *Heap8Aux[S]) extend(n int) ([]uint16, error) {
	if n < 0 {
		return nil, ErrAllocationFailure
	}
	if n > SizeMax-h.size {
		return nil, ErrAllocationFailure
	}
	newSize := h.size + n
	h.growTo(newSize)
	view := h.keys[h.size:newSize]
	h.size = newSize
	return view, nil
}

// Extend grows storage for n more entries. It returns no writable view: the
// caller must populate the new positions through SetEntry and then call
// Heapify before Top/Pop/Push/IsHeap.
func (h *Heap8Aux[S]) Extend(n int) error {
	_, err := h.extend(n)
	return err
}

// AppendEntries appends every entry from entries, padding the final node's
// unused key slots with hwy.KMax. The caller must call Heapify before any
// Top/Pop/Push/IsHeap.
func (h *Heap8Aux[S]) AppendEntries(entries []Entry[S]) error {
	keys, err := h.extend(len(entries))
	if err != nil {
		return err
	}
	base := h.size - len(entries)
	for i, e := range entries {
		keys[i] = e.Key
		h.shadow[base+i] = e.Shadow
	}
	return nil
}

// PullUp assumes the heap invariant holds everywhere except possibly at
// position q, and sifts (b, t) up to the ancestor slot where it is restored.
func (h *Heap8Aux[S]) PullUp(b uint16, t S, q int) {
	assert.That(q >= 0 && q < h.size, "PullUp: position %d out of range", q)
	for q >= hwy.Arity {
		p := parent(q)
		a := h.keys[p]
		if a <= b {
			break
		}
		h.keys[q] = a
		h.shadow[q] = h.shadow[p]
		q = p
	}
	h.keys[q] = b
	h.shadow[q] = t
}

// PushDown assumes the heap invariant holds everywhere except possibly at
// position p, and sifts (a, s) down toward the leaves.
func (h *Heap8Aux[S]) PushDown(a uint16, s S, p int) {
	assert.That(p >= 0 && p < h.size, "PushDown: position %d out of range", p)
	for {
		q := children(p)
		if q >= h.size {
			break
		}
		b, j := h.nodeMinPos(q)
		if a <= b {
			break
		}
		h.keys[p] = b
		q += j
		h.shadow[p] = h.shadow[q]
		p = q
	}
	h.keys[p] = a
	h.shadow[p] = s
}

// Heapify restores the heap invariant over the whole array.
func (h *Heap8Aux[S]) Heapify() {
	if h.size <= hwy.Arity {
		return
	}
	q := (h.size - 1) &^ (hwy.Arity - 1)

	r := parent(q)
	for q > r {
		b, j := h.nodeMinPos(q)
		p := parent(q)
		a := h.keys[p]
		if b < a {
			qNew := q + j
			s := h.shadow[p]
			h.shadow[p] = h.shadow[qNew]
			h.keys[p] = b
			h.keys[qNew] = a
			h.shadow[qNew] = s
		}
		q -= hwy.Arity
	}

	for q > 0 {
		b, j := h.nodeMinPos(q)
		p := parent(q)
		a := h.keys[p]
		if b < a {
			qNew := q + j
			s := h.shadow[p]
			h.shadow[p] = h.shadow[qNew]
			h.keys[p] = b
			h.PushDown(a, s, qNew)
		}
		q -= hwy.Arity
	}
}

// IsHeap runs the same scan as Heapify but reports a violation instead of
// repairing it.
func (h *Heap8Aux[S]) IsHeap() bool {
	if h.size <= hwy.Arity {
		return true
	}
	q := (h.size - 1) &^ (hwy.Arity - 1)
	for q > 0 {
		b, _ := h.nodeMinPos(q)
		p := parent(q)
		if b < h.keys[p] {
			return false
		}
		q -= hwy.Arity
	}
	return true
}

// PushEntry inserts (b, t), restoring the heap invariant via PullUp.
func (h *Heap8Aux[S]) PushEntry(b uint16, t S) error {
	if h.size == len(h.keys) {
		if h.size > SizeMax-hwy.Arity {
			return ErrAllocationFailure
		}
		h.growTo(h.size + hwy.Arity)
	}
	h.size++
	h.PullUp(b, t, h.size-1)
	return nil
}

// TopEntry returns the minimum entry. Size must be > 0.
func (h *Heap8Aux[S]) TopEntry() Entry[S] {
	assert.That(h.size > 0, "TopEntry: heap is empty")
	b, j := h.nodeMinPos(0)
	return Entry[S]{Key: b, Shadow: h.shadow[j]}
}

// PopEntry removes and returns the minimum entry, restoring the invariant.
func (h *Heap8Aux[S]) PopEntry() Entry[S] {
	assert.That(h.size > 0, "PopEntry: heap is empty")
	b, q := h.nodeMinPos(0)
	t := h.shadow[q]
	a := h.keys[h.size-1]
	h.keys[h.size-1] = hwy.KMax
	h.size--
	if q != h.size {
		s := h.shadow[h.size]
		h.PushDown(a, s, q)
	}
	return Entry[S]{Key: b, Shadow: t}
}

// Sort drains the heap in place, writing the popped sequence into the same
// key/shadow storage in descending order; after Sort, Size is 0 and
// positions [0, oldSize) hold the sorted entries.
func (h *Heap8Aux[S]) Sort() {
	x := h.size
	i := x % hwy.Arity
	x -= i
	var tailKeys [hwy.Arity]uint16
	for lane := range tailKeys {
		tailKeys[lane] = hwy.KMax
	}
	if i != 0 {
		for i > 0 {
			i--
			e := h.PopEntry()
			tailKeys[i] = e.Key
			h.shadow[x+i] = e.Shadow
		}
		copy(h.keys[x:x+hwy.Arity], tailKeys[:])
	}

	for x > 0 {
		x -= hwy.Arity
		var node [hwy.Arity]uint16
		for j := hwy.Arity; j > 0; j-- {
			e := h.PopEntry()
			node[j-1] = e.Key
			h.shadow[x+j-1] = e.Shadow
		}
		copy(h.keys[x:x+hwy.Arity], node[:])
	}
}

// IsSorted reports whether positions [0, n) are in non-ascending order.
func (h *Heap8Aux[S]) IsSorted(n int) bool {
	for i := 1; i < n; i++ {
		if h.keys[i-1] < h.keys[i] {
			return false
		}
	}
	return true
}

// Clear releases all storage.
func (h *Heap8Aux[S]) Clear() {
	h.keys = nil
	h.shadow = nil
	h.size = 0
}
