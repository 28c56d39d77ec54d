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

// Package heap8embed implements an 8-ary min-heap of uint16 keys whose
// payload is co-located with its key inside the same node, one node per 8
// keys. Unlike heap8aux, which keeps a single flat shadow slice parallel to
// the whole key array, heap8embed groups (key, shadow) pairs into node-sized
// records so each minpos scan and each node move touches one contiguous
// block rather than two independently-addressed arrays.
package heap8embed

import (
	"errors"

	"github.com/ajroetker/go8heap/internal/assert"
	"github.com/ajroetker/go8heap/hwy"
)

// ErrAllocationFailure is returned by Extend/AppendEntries/PushEntry when
// growing storage would exceed SizeMax. The heap is left unchanged.
var ErrAllocationFailure = errors.New("heap8embed: allocation failure")

// SizeMax is the largest multiple of hwy.Arity representable by int.
const SizeMax = int(^uint(0)>>1) - int(^uint(0)>>1)%hwy.Arity

// Entry pairs a key with its shadow payload.
type Entry[S any] struct {
	Key    uint16
	Shadow S
}

// node is one 8-key group together with its co-located shadow payloads.
type node[S any] struct {
	keys    [hwy.Arity]uint16
	shadows [hwy.Arity]S
}

func newMaxNode[S any]() node[S] {
	var n node[S]
	for i := range n.keys {
		n.keys[i] = hwy.KMax
	}
	return n
}

// Heap8Embed is an 8-ary min-heap of uint16 keys with an S-typed shadow
// payload co-located per node. The zero value is an empty, ready-to-use
// heap.
type Heap8Embed[S any] struct {
	nodes []node[S]
	size  int
}

// New returns an empty Heap8Embed.
func New[S any]() *Heap8Embed[S] {
	return &Heap8Embed[S]{}
}

// Size returns the number of live entries.
func (h *Heap8Embed[S]) Size() int { return h.size }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap8Embed[S]) IsEmpty() bool { return h.size == 0 }

func nodeIndex(q int) int { return q / hwy.Arity }
func laneIndex(q int) int { return q % hwy.Arity }

func parent(q int) int   { return q/hwy.Arity - 1 }
func children(p int) int { return (p + 1) * hwy.Arity }

// Key returns the key at position i.
func (h *Heap8Embed[S]) Key(i int) uint16 {
	assert.That(i >= 0 && i < h.size, "Key: index %d out of range [0, %d)", i, h.size)
	return h.nodes[nodeIndex(i)].keys[laneIndex(i)]
}

// Shadow returns the shadow payload at position i.
func (h *Heap8Embed[S]) Shadow(i int) S {
	assert.That(i >= 0 && i < h.size, "Shadow: index %d out of range [0, %d)", i, h.size)
	return h.nodes[nodeIndex(i)].shadows[laneIndex(i)]
}

// Entry returns the (key, shadow) pair at position i.
func (h *Heap8Embed[S]) Entry(i int) Entry[S] {
	return Entry[S]{Key: h.Key(i), Shadow: h.Shadow(i)}
}

// SetEntry writes e at position i directly, without restoring the heap
// invariant. It is meant for filling the positions added by Extend before
// the one Heapify call that follows.
func (h *Heap8Embed[S]) SetEntry(i int, e Entry[S]) {
	assert.That(i >= 0 && i < h.size, "SetEntry: index %d out of range [0, %d)", i, h.size)
	n := &h.nodes[nodeIndex(i)]
	j := laneIndex(i)
	n.keys[j] = e.Key
	n.shadows[j] = e.Shadow
}

// TopIndex returns the position of the minimum entry, for use with
// PushDown when the caller already has its replacement key in hand. Size
// must be > 0.
func (h *Heap8Embed[S]) TopIndex() int {
	assert.That(h.size > 0, "TopIndex: heap is empty")
	_, j := h.nodeMinPos(0)
	return j
}

func (h *Heap8Embed[S]) nodeMinPos(q int) (uint16, int) {
	return hwy.MinPos(hwy.V(h.nodes[nodeIndex(q)].keys))
}

func (h *Heap8Embed[S]) growTo(newSize int) {
	newNodeCount := (newSize + hwy.Arity - 1) / hwy.Arity
	if newNodeCount <= len(h.nodes) {
		return
	}
	grown := make([]node[S], newNodeCount)
	copy(grown, h.nodes)
	for i := len(h.nodes); i < newNodeCount; i++ {
		grown[i] = newMaxNode[S]()
	}
	h.nodes = grown
}

// Extend grows storage for n more entries. The caller must fill positions
// [oldSize, oldSize+n) via SetEntry and then call Heapify before
// Top/Pop/Push/IsHeap.
func (h *Heap8Embed[S]) Extend(n int) error {
	if n < 0 {
		return ErrAllocationFailure
	}
	if n > SizeMax-h.size {
		return ErrAllocationFailure
	}
	newSize := h.size + n
	h.growTo(newSize)
	h.size = newSize
	return nil
}

// AppendEntries appends every entry from entries, padding the final node's
// unused key slots with hwy.KMax. The caller must call Heapify before any
// Top/Pop/Push/IsHeap.
func (h *Heap8Embed[S]) AppendEntries(entries []Entry[S]) error {
	if len(entries) > SizeMax-h.size {
		return ErrAllocationFailure
	}
	for _, e := range entries {
		if h.size == len(h.nodes)*hwy.Arity {
			h.nodes = append(h.nodes, newMaxNode[S]())
		}
		n := &h.nodes[nodeIndex(h.size)]
		i := laneIndex(h.size)
		n.keys[i] = e.Key
		n.shadows[i] = e.Shadow
		h.size++
	}
	return nil
}

// PullUp assumes the heap invariant holds everywhere except possibly at
// position q, and sifts (b, t) up to the ancestor slot where it is restored.
func (h *Heap8Embed[S]) PullUp(b uint16, t S, q int) {
	assert.That(q >= 0 && q < h.size, "PullUp: position %d out of range", q)
	n := &h.nodes[nodeIndex(q)]
	j := laneIndex(q)
	for q >= hwy.Arity {
		p := parent(q)
		m := &h.nodes[nodeIndex(p)]
		i := laneIndex(p)
		a := m.keys[i]
		if a <= b {
			break
		}
		n.keys[j] = a
		n.shadows[j] = m.shadows[i]
		q = p
		n = m
		j = i
	}
	n.keys[j] = b
	n.shadows[j] = t
}

// PushDown assumes the heap invariant holds everywhere except possibly at
// position p, and sifts (a, s) down toward the leaves.
func (h *Heap8Embed[S]) PushDown(a uint16, s S, p int) {
	assert.That(p >= 0 && p < h.size, "PushDown: position %d out of range", p)
	m := &h.nodes[nodeIndex(p)]
	i := laneIndex(p)
	for {
		q := children(p)
		if q >= h.size {
			break
		}
		n := &h.nodes[nodeIndex(q)]
		b, j := hwy.MinPos(hwy.V(n.keys))
		if a <= b {
			break
		}
		m.keys[i] = b
		m.shadows[i] = n.shadows[j]
		p = q + j
		m = n
		i = j
	}
	m.keys[i] = a
	m.shadows[i] = s
}

// Heapify restores the heap invariant over the whole array.
func (h *Heap8Embed[S]) Heapify() {
	if h.size <= hwy.Arity {
		return
	}
	q := (h.size - 1) &^ (hwy.Arity - 1)

	r := parent(q)
	for q > r {
		n := &h.nodes[nodeIndex(q)]
		b, j := hwy.MinPos(hwy.V(n.keys))
		p := parent(q)
		m := &h.nodes[nodeIndex(p)]
		i := laneIndex(p)
		a := m.keys[i]
		if b < a {
			s := m.shadows[i]
			m.shadows[i] = n.shadows[j]
			m.keys[i] = b
			n.keys[j] = a
			n.shadows[j] = s
		}
		q -= hwy.Arity
	}

	for q > 0 {
		n := &h.nodes[nodeIndex(q)]
		b, j := hwy.MinPos(hwy.V(n.keys))
		p := parent(q)
		m := &h.nodes[nodeIndex(p)]
		i := laneIndex(p)
		a := m.keys[i]
		if b < a {
			s := m.shadows[i]
			m.shadows[i] = n.shadows[j]
			m.keys[i] = b
			h.PushDown(a, s, q+j)
		}
		q -= hwy.Arity
	}
}

// IsHeap runs the same scan as Heapify but reports a violation instead of
// repairing it.
func (h *Heap8Embed[S]) IsHeap() bool {
	if h.size <= hwy.Arity {
		return true
	}
	q := (h.size - 1) &^ (hwy.Arity - 1)
	for q > 0 {
		b, _ := h.nodeMinPos(q)
		p := parent(q)
		if b < h.Key(p) {
			return false
		}
		q -= hwy.Arity
	}
	return true
}

// PushEntry inserts (b, t), restoring the heap invariant via PullUp.
func (h *Heap8Embed[S]) PushEntry(b uint16, t S) error {
	if h.size == len(h.nodes)*hwy.Arity {
		if h.size > SizeMax-hwy.Arity {
			return ErrAllocationFailure
		}
		h.nodes = append(h.nodes, newMaxNode[S]())
	}
	h.size++
	h.PullUp(b, t, h.size-1)
	return nil
}

// TopEntry returns the minimum entry. Size must be > 0.
func (h *Heap8Embed[S]) TopEntry() Entry[S] {
	assert.That(h.size > 0, "TopEntry: heap is empty")
	n := &h.nodes[0]
	b, j := hwy.MinPos(hwy.V(n.keys))
	return Entry[S]{Key: b, Shadow: n.shadows[j]}
}

// PopEntry removes and returns the minimum entry, restoring the invariant.
func (h *Heap8Embed[S]) PopEntry() Entry[S] {
	assert.That(h.size > 0, "PopEntry: heap is empty")
	n := &h.nodes[0]
	b, q := hwy.MinPos(hwy.V(n.keys))
	t := n.shadows[q]

	p := h.size - 1
	m := &h.nodes[nodeIndex(p)]
	i := laneIndex(p)
	a := m.keys[i]
	m.keys[i] = hwy.KMax
	h.size--
	if q != h.size {
		s := m.shadows[i]
		h.PushDown(a, s, q)
	}
	return Entry[S]{Key: b, Shadow: t}
}

// Sort drains the heap in place, writing the popped sequence into the same
// node storage in descending order; after Sort, Size is 0 and positions
// [0, oldSize) hold the sorted entries.
func (h *Heap8Embed[S]) Sort() {
	x := h.size
	i := x % hwy.Arity
	x -= i
	var keys [hwy.Arity]uint16
	for lane := range keys {
		keys[lane] = hwy.KMax
	}
	if i != 0 {
		n := &h.nodes[nodeIndex(x)]
		for i > 0 {
			i--
			e := h.PopEntry()
			keys[i] = e.Key
			n.shadows[i] = e.Shadow
		}
		n.keys = keys
	}
	for x > 0 {
		x -= hwy.Arity
		n := &h.nodes[nodeIndex(x)]
		for j := hwy.Arity; j > 0; j-- {
			e := h.PopEntry()
			keys[j-1] = e.Key
			n.shadows[j-1] = e.Shadow
		}
		n.keys = keys
	}
}

// IsSorted reports whether positions [0, n) are in non-ascending order. n
// may exceed Size, since Sort leaves the drained heap's storage populated
// with the sorted sequence even though Size reads 0 afterward.
func (h *Heap8Embed[S]) IsSorted(n int) bool {
	for i := 1; i < n; i++ {
		if h.nodes[nodeIndex(i-1)].keys[laneIndex(i-1)] < h.nodes[nodeIndex(i)].keys[laneIndex(i)] {
			return false
		}
	}
	return true
}

// Clear releases all storage.
func (h *Heap8Embed[S]) Clear() {
	h.nodes = nil
	h.size = 0
}
