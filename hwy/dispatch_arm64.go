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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

// NEON has no single instruction equivalent to PHMINPOSUW: UMINV reduces to
// a minimum but does not report a lane index, so recovering the index still
// needs a second compare-and-scan pass. That two-instruction composition
// does not pay for itself versus the portable scalar tournament, so arm64
// reports DispatchNEON for introspection but MinPos runs the same scalar
// scan as every other non-amd64 architecture.
func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		return
	}
	currentLevel = DispatchScalar
}
