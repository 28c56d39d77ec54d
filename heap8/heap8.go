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

// Package heap8 implements an 8-ary min-heap of bare uint16 keys. The tree
// is non-standard: position p has its 8 children at (p+1)*8 .. (p+1)*8+7
// and its parent at p/8 - 1, so every sibling group starts at a multiple of
// 8 and can be handed to hwy.MinPos as a single vector. The root itself is
// node 0, an 8-key group whose minimum is Top.
package heap8

import (
	"errors"

	"github.com/ajroetker/go8heap/internal/assert"
	"github.com/ajroetker/go8heap/hwy"
)

// ErrAllocationFailure is returned by Extend/Append/Push when growing
// storage would exceed SizeMax. The heap is left unchanged. A memory
// allocation that the Go runtime cannot satisfy is not reported through
// this error.
var ErrAllocationFailure = errors.New("heap8: allocation failure")

// SizeMax is the largest multiple of hwy.Arity representable by int, the
// platform size type. Extend rejects any request that would push the
// logical size past it.
const SizeMax = int(^uint(0)>>1) - int(^uint(0)>>1)%hwy.Arity

// Heap8 is a packed 8-ary min-heap of uint16 keys. The zero value is an
// empty, ready-to-use heap.
type Heap8 struct {
	keys []uint16 // length is always a multiple of hwy.Arity; tail is hwy.KMax
	size int
}

// New returns an empty Heap8.
func New() *Heap8 {
	return &Heap8{}
}

// Size returns the number of live keys.
func (h *Heap8) Size() int { return h.size }

// IsEmpty reports whether the heap holds no keys.
func (h *Heap8) IsEmpty() bool { return h.size == 0 }

// At returns the key at position i. It is intended for debugging and
// testing, not the hot path.
func (h *Heap8) At(i int) uint16 {
	assert.That(i >= 0 && i < h.size, "At: index %d out of range [0, %d)", i, h.size)
	return h.keys[i]
}

func parent(q int) int { return q/hwy.Arity - 1 }
func children(p int) int { return (p + 1) * hwy.Arity }

// nodeMinPos runs hwy.MinPos over the 8-key group starting at q, where q
// must be a multiple of hwy.Arity.
func (h *Heap8) nodeMinPos(q int) (uint16, int) {
	node := (*[hwy.Arity]uint16)(h.keys[q : q+hwy.Arity : q+hwy.Arity])
	return hwy.MinPos(hwy.V(*node))
}

func (h *Heap8) growTo(newSize int) {
	if newSize <= len(h.keys) {
		return
	}
	newNodeCount := (newSize + hwy.Arity - 1) / hwy.Arity
	grown := make([]uint16, newNodeCount*hwy.Arity)
	copy(grown, h.keys)
	for i := len(h.keys); i < len(grown); i++ {
		grown[i] = hwy.KMax
	}
	h.keys = grown
}

// Extend grows storage by whole nodes as needed and returns a writable view
// over the n newly added positions. The caller must fill them and then call
// Heapify before any Top/Pop/Push/IsHeap.
func (h *Heap8) Extend(n int) ([]uint16, error) {
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

// Append appends every key from src, padding the final node with
// hwy.KMax. The caller must call Heapify before any Top/Pop/Push/IsHeap.
func (h *Heap8) Append(src []uint16) error {
	view, err := h.Extend(len(src))
	if err != nil {
		return err
	}
	copy(view, src)
	return nil
}

// PullUp assumes the heap invariant holds everywhere except possibly at
// position q, and writes k into the ancestor slot where the invariant is
// restored.
func (h *Heap8) PullUp(k uint16, q int) {
	assert.That(q >= 0 && q < h.size, "PullUp: position %d out of range", q)
	for q >= hwy.Arity {
		p := parent(q)
		a := h.keys[p]
		if a <= k {
			break
		}
		h.keys[q] = a
		q = p
	}
	h.keys[q] = k
}

// PushDown assumes the heap invariant holds everywhere except possibly at
// position p, and sifts k toward the leaves.
func (h *Heap8) PushDown(k uint16, p int) {
	assert.That(p >= 0 && p < h.size, "PushDown: position %d out of range", p)
	for {
		q := children(p)
		if q >= h.size {
			break
		}
		b, j := h.nodeMinPos(q)
		if k <= b {
			break
		}
		h.keys[p] = b
		p = q + j
	}
	h.keys[p] = k
}

// Heapify restores the heap invariant over the whole array in O(size)
// comparisons, scanning nodes from the last one back to node 1.
func (h *Heap8) Heapify() {
	if h.size <= hwy.Arity {
		return
	}
	q := (h.size - 1) &^ (hwy.Arity - 1) // align_down(size-1, Arity)

	// Bottom layer: children(q) is always >= size here, so push_down would
	// immediately stop; fuse it into a single swap.
	r := parent(q)
	for q > r {
		b, j := h.nodeMinPos(q)
		p := parent(q)
		a := h.keys[p]
		if b < a {
			h.keys[p] = b
			h.keys[q+j] = a
		}
		q -= hwy.Arity
	}

	for q > 0 {
		b, j := h.nodeMinPos(q)
		p := parent(q)
		a := h.keys[p]
		if b < a {
			h.keys[p] = b
			h.PushDown(a, q+j)
		}
		q -= hwy.Arity
	}
}

// IsHeap runs the same scan as Heapify but reports a violation instead of
// repairing it.
func (h *Heap8) IsHeap() bool {
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

// Push inserts k, restoring the heap invariant via PullUp.
func (h *Heap8) Push(k uint16) error {
	if h.size == len(h.keys) {
		if h.size > SizeMax-hwy.Arity {
			return ErrAllocationFailure
		}
		h.growTo(h.size + hwy.Arity)
	}
	h.size++
	h.PullUp(k, h.size-1)
	return nil
}

// Top returns the minimum key. Size must be > 0.
func (h *Heap8) Top() uint16 {
	assert.That(h.size > 0, "Top: heap is empty")
	m, _ := h.nodeMinPos(0)
	return m
}

// Pop removes and returns the minimum key, restoring the invariant.
func (h *Heap8) Pop() uint16 {
	assert.That(h.size > 0, "Pop: heap is empty")
	m, j := h.nodeMinPos(0)
	a := h.keys[h.size-1]
	h.keys[h.size-1] = hwy.KMax
	h.size--
	if j != h.size {
		h.PushDown(a, j)
	}
	return m
}

// Sort drains the heap in place, writing the popped sequence into the same
// storage in descending order; after Sort, Size is 0 and positions
// [0, oldSize) hold the sorted keys.
func (h *Heap8) Sort() {
	x := h.size
	i := x % hwy.Arity
	x -= i
	var tail [hwy.Arity]uint16
	for lane := range tail {
		tail[lane] = hwy.KMax
	}
	if i != 0 {
		for i > 0 {
			i--
			tail[i] = h.Pop()
		}
		copy(h.keys[x:x+hwy.Arity], tail[:])
	}
	for x > 0 {
		x -= hwy.Arity
		var node [hwy.Arity]uint16
		for j := hwy.Arity; j > 0; j-- {
			node[j-1] = h.Pop()
		}
		copy(h.keys[x:x+hwy.Arity], node[:])
	}
}

// IsSorted reports whether positions [0, n) are in non-ascending order.
func (h *Heap8) IsSorted(n int) bool {
	for i := 1; i < n; i++ {
		if h.keys[i-1] < h.keys[i] {
			return false
		}
	}
	return true
}

// Clear releases all storage.
func (h *Heap8) Clear() {
	h.keys = nil
	h.size = 0
}
