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

package hwy

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort8Example(t *testing.T) {
	const m = KMax
	v := V{m - 7, 0, m - 13, 3, 2, 3, 2, 3}
	got := Sort8(v)
	want := V{0, 2, 2, 3, 3, 3, m - 13, m - 7}
	assert.Equal(t, want, got)
}

func TestSort8IdempotentOnSortedInput(t *testing.T) {
	v := V{0, 2, 2, 3, 3, 3, 100, 200}
	assert.Equal(t, v, Sort8(v))
}

func TestSort8IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 2000; trial++ {
		var v V
		for lane := range v {
			v[lane] = uint16(rng.Intn(1 << 16))
		}
		got := Sort8(v)

		gotSorted := append([]uint16{}, got[:]...)
		wantSorted := append([]uint16{}, v[:]...)
		sort.Slice(wantSorted, func(i, j int) bool { return wantSorted[i] < wantSorted[j] })

		assert.Equal(t, wantSorted, gotSorted)
		assert.True(t, sort.SliceIsSorted(gotSorted, func(i, j int) bool { return gotSorted[i] < gotSorted[j] }))
	}
}
