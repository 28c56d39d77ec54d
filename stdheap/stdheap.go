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

// Package stdheap implements a plain binary min-heap of uint16 keys with the
// same public surface as heap8.Heap8 (minus SIMD). It exists purely as a
// slow, obviously-correct reference: differential tests run the same input
// sequence through both heaps and require identical Pop order, so any SIMD
// or layout bug in heap8 shows up as a divergence rather than a crash.
package stdheap

// StdHeap is a binary min-heap of uint16 keys.
type StdHeap struct {
	array []uint16
}

// New returns an empty StdHeap.
func New() *StdHeap {
	return &StdHeap{}
}

// Size returns the number of keys held.
func (h *StdHeap) Size() int { return len(h.array) }

// IsEmpty reports whether the heap holds no keys.
func (h *StdHeap) IsEmpty() bool { return len(h.array) == 0 }

// At returns the key at position i.
func (h *StdHeap) At(i int) uint16 { return h.array[i] }

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// Extend grows storage by n and returns a writable view over the new
// positions. The caller must call Heapify before Top/Pop/Push/IsHeap.
func (h *StdHeap) Extend(n int) []uint16 {
	old := len(h.array)
	h.array = append(h.array, make([]uint16, n)...)
	return h.array[old:]
}

// Append appends every key from src. The caller must call Heapify before
// any Top/Pop/Push/IsHeap.
func (h *StdHeap) Append(src []uint16) {
	copy(h.Extend(len(src)), src)
}

// Heapify restores the heap invariant over the whole array in O(n).
func (h *StdHeap) Heapify() {
	for i := len(h.array)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// IsHeap reports whether the heap invariant holds everywhere.
func (h *StdHeap) IsHeap() bool {
	n := len(h.array)
	for i := 0; i < n; i++ {
		if l := left(i); l < n && h.array[l] < h.array[i] {
			return false
		}
		if r := right(i); r < n && h.array[r] < h.array[i] {
			return false
		}
	}
	return true
}

// Push inserts k, restoring the heap invariant by sifting it up.
func (h *StdHeap) Push(k uint16) {
	h.array = append(h.array, k)
	i := len(h.array) - 1
	for i > 0 {
		p := parent(i)
		if h.array[p] <= h.array[i] {
			break
		}
		h.array[p], h.array[i] = h.array[i], h.array[p]
		i = p
	}
}

// Top returns the minimum key. Size must be > 0.
func (h *StdHeap) Top() uint16 { return h.array[0] }

// Pop removes and returns the minimum key, restoring the invariant.
func (h *StdHeap) Pop() uint16 {
	top := h.array[0]
	last := len(h.array) - 1
	h.array[0] = h.array[last]
	h.array = h.array[:last]
	if len(h.array) > 0 {
		h.siftDown(0)
	}
	return top
}

func (h *StdHeap) siftDown(i int) {
	n := len(h.array)
	for {
		smallest := i
		if l := left(i); l < n && h.array[l] < h.array[smallest] {
			smallest = l
		}
		if r := right(i); r < n && h.array[r] < h.array[smallest] {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.array[i], h.array[smallest] = h.array[smallest], h.array[i]
		i = smallest
	}
}

// Sort drains the heap in place, writing the popped sequence in descending
// order into the same storage; after Sort, Size is 0.
func (h *StdHeap) Sort() {
	n := len(h.array)
	sorted := make([]uint16, n)
	for i := n - 1; i >= 0; i-- {
		sorted[i] = h.Pop()
	}
	h.array = append(h.array[:0], sorted...)
}

// IsSorted reports whether positions [0, n) are in non-ascending order.
func (h *StdHeap) IsSorted(n int) bool {
	for i := 1; i < n; i++ {
		if h.array[i-1] < h.array[i] {
			return false
		}
	}
	return true
}

// Clear releases all storage.
func (h *StdHeap) Clear() {
	h.array = nil
}
