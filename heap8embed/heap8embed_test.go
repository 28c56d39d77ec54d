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

package heap8embed

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopEntryOrder(t *testing.T) {
	h := New[string]()
	require.NoError(t, h.PushEntry(2, "b"))
	require.NoError(t, h.PushEntry(1, "a"))
	require.NoError(t, h.PushEntry(3, "c"))

	assert.Equal(t, Entry[string]{Key: 1, Shadow: "a"}, h.TopEntry())
	assert.Equal(t, Entry[string]{Key: 1, Shadow: "a"}, h.PopEntry())
	assert.Equal(t, Entry[string]{Key: 2, Shadow: "b"}, h.PopEntry())
	assert.Equal(t, Entry[string]{Key: 3, Shadow: "c"}, h.PopEntry())
	assert.True(t, h.IsEmpty())
}

func TestEntryStaysCoLocatedDuringHeapify(t *testing.T) {
	h := New[int]()
	entries := make([]Entry[int], 100)
	for i := range entries {
		entries[i] = Entry[int]{Key: uint16(99 - i), Shadow: 99 - i}
	}
	require.NoError(t, h.AppendEntries(entries))
	h.Heapify()
	require.True(t, h.IsHeap())

	for i := 0; i < 100; i++ {
		e := h.PopEntry()
		assert.EqualValues(t, i, e.Key)
		assert.Equal(t, int(i), e.Shadow)
	}
}

func TestSortDescendingKeepsShadowPaired(t *testing.T) {
	h := New[string]()
	require.NoError(t, h.AppendEntries([]Entry[string]{
		{Key: 2, Shadow: "two"},
		{Key: 1, Shadow: "one"},
		{Key: 3, Shadow: "three"},
	}))
	h.Heapify()
	h.Sort()

	assert.Equal(t, 0, h.Size())
	assert.Equal(t, Entry[string]{Key: 3, Shadow: "three"}, h.Entry(0))
	assert.Equal(t, Entry[string]{Key: 2, Shadow: "two"}, h.Entry(1))
	assert.Equal(t, Entry[string]{Key: 1, Shadow: "one"}, h.Entry(2))
	assert.True(t, h.IsSorted(3))
}

func TestRandomRoundTripPreservesEntryPairing(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 300
	entries := make([]Entry[int], n)
	for i := range entries {
		k := uint16(rng.Intn(1 << 16))
		entries[i] = Entry[int]{Key: k, Shadow: int(k) * 3}
	}

	h := New[int]()
	require.NoError(t, h.AppendEntries(entries))
	h.Heapify()

	var popped []Entry[int]
	for h.Size() > 0 {
		popped = append(popped, h.PopEntry())
	}

	for i := range popped {
		assert.Equal(t, int(popped[i].Key)*3, popped[i].Shadow)
	}
	for i := 1; i < len(popped); i++ {
		assert.LessOrEqual(t, popped[i-1].Key, popped[i].Key)
	}
}

func TestExtendAllocationFailure(t *testing.T) {
	h := New[int]()
	err := h.Extend(SizeMax + 1)
	assert.ErrorIs(t, err, ErrAllocationFailure)
	assert.Equal(t, 0, h.Size())
}

func TestClear(t *testing.T) {
	h := New[int]()
	require.NoError(t, h.PushEntry(1, 10))
	h.Clear()
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Size())
}
