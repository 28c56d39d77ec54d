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

package heap8

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go8heap/hwy"
)

func TestPushPopOrder(t *testing.T) {
	h := New()
	require.NoError(t, h.Push(2))
	require.NoError(t, h.Push(1))
	require.NoError(t, h.Push(3))

	assert.Equal(t, 3, h.Size())
	assert.EqualValues(t, 1, h.Top())
	assert.EqualValues(t, 1, h.Pop())
	assert.EqualValues(t, 2, h.Pop())
	assert.EqualValues(t, 3, h.Pop())
	assert.True(t, h.IsEmpty())
}

func TestAppendHeapifyPopYieldsAscending(t *testing.T) {
	h := New()
	keys := make([]uint16, 100)
	for i := range keys {
		keys[i] = uint16(99 - i)
	}
	require.NoError(t, h.Append(keys))
	h.Heapify()
	assert.True(t, h.IsHeap())

	for i := 0; i < 100; i++ {
		assert.EqualValues(t, i, h.Pop())
	}
}

func TestSortDescendingInPlace(t *testing.T) {
	h := New()
	require.NoError(t, h.Append([]uint16{2, 1, 3}))
	h.Heapify()
	h.Sort()

	assert.Equal(t, 0, h.Size())
	assert.EqualValues(t, 3, h.At(0))
	assert.EqualValues(t, 2, h.At(1))
	assert.EqualValues(t, 1, h.At(2))
	assert.True(t, h.IsSorted(3))
}

func TestBoundarySizesAcrossNodeEdge(t *testing.T) {
	for _, n := range []int{7, 8, 9, 63, 64, 65} {
		t.Run("", func(t *testing.T) {
			h := New()
			keys := make([]uint16, n)
			for i := range keys {
				keys[i] = uint16(n - i)
			}
			require.NoError(t, h.Append(keys))
			h.Heapify()
			require.True(t, h.IsHeap())

			prev := -1
			for h.Size() > 0 {
				v := int(h.Pop())
				require.GreaterOrEqual(t, v, prev)
				prev = v
			}
		})
	}
}

func TestPopFromTailLaneSkipsPushDown(t *testing.T) {
	// A single node: the minimum is always also the last live key once
	// size shrinks to 1, so Pop must not call PushDown on an empty tail.
	h := New()
	require.NoError(t, h.Append([]uint16{5}))
	h.Heapify()
	assert.EqualValues(t, 5, h.Pop())
	assert.Equal(t, 0, h.Size())
}

func TestHeapifyNoopOnSmallHeap(t *testing.T) {
	h := New()
	require.NoError(t, h.Append([]uint16{4, 2, 6, 1}))
	// A single node (size <= Arity) is vacuously a heap regardless of key
	// order: there is no parent node to compare against.
	assert.True(t, h.IsHeap())
	h.Heapify()
	assert.True(t, h.IsHeap())
	h.Heapify() // idempotent
	assert.True(t, h.IsHeap())
}

func TestPaddingInvariant(t *testing.T) {
	h := New()
	require.NoError(t, h.Append([]uint16{5, 1, 3}))
	for i := 3; i < 8; i++ {
		assert.Equal(t, hwy.KMax, h.At(i))
	}
}

func TestExtendAllocationFailure(t *testing.T) {
	h := New()
	_, err := h.Extend(SizeMax + 1)
	assert.ErrorIs(t, err, ErrAllocationFailure)
	assert.Equal(t, 0, h.Size())
}

func TestRoundTripSortMatchesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 500
	keys := make([]uint16, n)
	for i := range keys {
		keys[i] = uint16(rng.Intn(1 << 16))
	}

	h := New()
	require.NoError(t, h.Append(keys))
	h.Heapify()

	var popped []uint16
	for h.Size() > 0 {
		popped = append(popped, h.Pop())
	}

	for i := 1; i < len(popped); i++ {
		assert.LessOrEqual(t, popped[i-1], popped[i])
	}
	assert.ElementsMatch(t, keys, popped)
}
