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

// minPosFunc is swapped out for an architecture-accelerated implementation
// by the init() in dispatch_amd64.go when the CPU supports it. Every
// implementation must agree bit-for-bit with minPosScalar, including its
// lowest-lane tie-break, since heap8 correctness depends on it.
var minPosFunc = minPosScalar

// MinPos returns the smallest lane of v and the index of its first
// occurrence. Ties break toward the lower index; this is load-bearing for
// heap8's determinism and must hold for every dispatch target.
func MinPos(v V) (min uint16, index int) {
	return minPosFunc(v)
}

// minPosScalar is the portable fallback: a linear scan. It is also used
// directly on architectures with no dedicated reduction instruction for
// this width, since a hand-composed multi-instruction reduction was judged
// not worth the complexity for 8 lanes (see dispatch_arm64.go).
func minPosScalar(v V) (uint16, int) {
	bestVal := v[0]
	bestIdx := 0
	for i := 1; i < Arity; i++ {
		if v[i] < bestVal {
			bestVal = v[i]
			bestIdx = i
		}
	}
	return bestVal, bestIdx
}
