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

//go:build amd64

package hwy

// minPosAsm loads v into an XMM register and executes PHMINPOSUW, returning
// the packed result: bits [15:0] are the minimum lane value, bits [18:16]
// are the index of its first (lowest) occurrence. Implemented in
// minpos_amd64.s.
func minPosAsm(v *V) uint32

// minPosAccel is installed as minPosFunc by dispatch_amd64.go's init when
// the running CPU reports SSE4.1 support.
func minPosAccel(v V) (uint16, int) {
	packed := minPosAsm(&v)
	return uint16(packed & 0xffff), int((packed >> 16) & 0x7)
}
