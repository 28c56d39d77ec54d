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

// laneMasks[i] has KMax in lane i and zero elsewhere, used by Sort8 to
// retire a lane by OR-ing it up to KMax so it can never win MinPos again.
var laneMasks = [Arity]V{
	{KMax, 0, 0, 0, 0, 0, 0, 0},
	{0, KMax, 0, 0, 0, 0, 0, 0},
	{0, 0, KMax, 0, 0, 0, 0, 0},
	{0, 0, 0, KMax, 0, 0, 0, 0},
	{0, 0, 0, 0, KMax, 0, 0, 0},
	{0, 0, 0, 0, 0, KMax, 0, 0},
	{0, 0, 0, 0, 0, 0, KMax, 0},
	{0, 0, 0, 0, 0, 0, 0, KMax},
}

// Sort8 returns the 8 lanes of v in ascending order. It runs 8 rounds of
// MinPos: each round extracts the current minimum and retires its lane by
// OR-ing in KMax, so the lane can never win again. The loop does the same
// fixed amount of work regardless of input, so it carries no data-dependent
// branches beyond what MinPos itself takes.
func Sort8(v V) V {
	var out V
	r := v
	for i := 0; i < Arity; i++ {
		m, j := MinPos(r)
		out[i] = m
		for lane := 0; lane < Arity; lane++ {
			r[lane] |= laneMasks[j][lane]
		}
	}
	return out
}
