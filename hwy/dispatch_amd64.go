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

import "golang.org/x/sys/cpu"

// hasSSE41 records whether init selected the SSE4.1 PHMINPOSUW path for
// MinPos. It stays false when HWY_NO_SIMD forces the scalar path, even on a
// CPU that supports SSE4.1.
var hasSSE41 bool

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}
	if cpu.X86.HasSSE41 {
		hasSSE41 = true
		currentLevel = DispatchSSE41
		minPosFunc = minPosAccel
		return
	}
	currentLevel = DispatchScalar
}
