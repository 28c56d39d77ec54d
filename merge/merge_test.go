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

package merge

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeThreeStreams(t *testing.T) {
	out, err := Merge([][]uint16{
		{1, 4, 7},
		{2, 3, 9},
		{5, 6, 8},
	})
	require.NoError(t, err)

	keys := make([]uint16, len(out))
	for i, e := range out {
		keys[i] = e.Key
	}
	assert.Equal(t, []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9}, keys)
}

func TestMergeRejectsEmptyStream(t *testing.T) {
	_, err := Merge([][]uint16{{1, 2}, {}})
	assert.ErrorIs(t, err, ErrEmptyStream)
}

func TestMergeOriginTracksSourceStream(t *testing.T) {
	out, err := Merge([][]uint16{
		{10, 20},
		{15},
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	want := map[uint16]int{10: 0, 15: 1, 20: 0}
	for _, e := range out {
		assert.Equal(t, want[e.Key], e.Stream)
	}
}

func TestMergeManyRandomSortedStreams(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const numStreams = 20
	streams := make([][]uint16, numStreams)
	var want []uint16
	for i := range streams {
		n := rng.Intn(30) + 1
		s := make([]uint16, n)
		for j := range s {
			s[j] = uint16(rng.Intn(1 << 16))
		}
		sort.Slice(s, func(a, b int) bool { return s[a] < s[b] })
		streams[i] = s
		want = append(want, s...)
	}
	sort.Slice(want, func(a, b int) bool { return want[a] < want[b] })

	out, err := Merge(streams)
	require.NoError(t, err)
	require.Len(t, out, len(want))

	got := make([]uint16, len(out))
	for i, e := range out {
		got[i] = e.Key
	}
	assert.Equal(t, want, got)
}

func TestMergeSingleStreamPassesThrough(t *testing.T) {
	out, err := Merge([][]uint16{{1, 2, 3}})
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.EqualValues(t, 1, out[0].Key)
	assert.EqualValues(t, 3, out[2].Key)
}
