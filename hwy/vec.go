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

// Arity is the number of lanes in V and the branching factor of every
// heap8 tree. It is a design constant, not a parameter: changing it would
// also change KMax's padding semantics and the PHMINPOSUW-shaped MinPos
// primitive, so it is exposed as a named constant rather than a type
// parameter.
const Arity = 8

// KMax is the reserved padding sentinel. A V lane holding KMax is treated
// as "absent" by every heap8 layout; callers must not insert KMax as a live
// key if they rely on the padding invariant being externally observable.
const KMax uint16 = 0xFFFF

// V is an 8-lane vector of uint16 keys, the unit MinPos reduces over. Its
// zero value is all-zero lanes, not all-KMax; use FullMax or Load to get a
// properly padded vector.
type V [Arity]uint16

// FullMax is a V with every lane set to KMax, used to pad newly allocated
// heap nodes.
var FullMax = V{KMax, KMax, KMax, KMax, KMax, KMax, KMax, KMax}

// Load copies up to Arity elements from src into a V, padding any remaining
// lanes with KMax.
func Load(src []uint16) V {
	v := FullMax
	n := min(len(src), Arity)
	copy(v[:n], src[:n])
	return v
}

// Store writes v's lanes into dst, copying min(len(dst), Arity) elements.
func (v V) Store(dst []uint16) {
	n := min(len(dst), Arity)
	copy(dst[:n], v[:n])
}
