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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinPosBasic(t *testing.T) {
	v := V{5, 3, 9, 3, 1, 8, 2, 7}
	min, idx := MinPos(v)
	assert.EqualValues(t, 1, min)
	assert.Equal(t, 4, idx)
}

func TestMinPosTieBreaksLowestIndex(t *testing.T) {
	v := V{4, 2, 2, 9, 2, 0xFF, 0xFF, 0xFF}
	min, idx := MinPos(v)
	assert.EqualValues(t, 2, min)
	assert.Equal(t, 1, idx)
}

func TestMinPosAllMax(t *testing.T) {
	min, idx := MinPos(FullMax)
	assert.EqualValues(t, KMax, min)
	assert.Equal(t, 0, idx)
}

func TestMinPosScalarMatchesAccelerated(t *testing.T) {
	if !HasSIMD() {
		t.Skip("no accelerated MinPos implementation compiled in on this architecture")
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		var v V
		for lane := range v {
			v[lane] = uint16(rng.Intn(1 << 16))
		}
		wantMin, wantIdx := minPosScalar(v)
		gotMin, gotIdx := MinPos(v)
		assert.Equal(t, wantMin, gotMin, "value mismatch for %v", v)
		assert.Equal(t, wantIdx, gotIdx, "index mismatch for %v", v)
	}
}
