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

// Package hwy provides the 8-lane uint16 vector primitive ("V") that the
// heap8 family builds on. MinPos is the single primitive the rest of the
// library depends on: a constant-time reduction returning the smallest lane
// of an 8-lane group together with the index of its first occurrence. On
// amd64 it dispatches to a hand-written Plan9 assembly routine wrapping the
// SSE4.1 PHMINPOSUW instruction when cpu.X86.HasSSE41 reports the CPU
// supports it; otherwise it falls back to a portable scalar scan with
// identical tie-breaking, so the package behaves the same on every platform
// and only throughput differs.
package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel identifies which MinPos implementation this process is using.
type DispatchLevel int

const (
	// DispatchScalar is the portable Go fallback: no hardware acceleration.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE41 uses the amd64 SSE4.1 PHMINPOSUW instruction via a
	// hand-written Plan9 assembly routine, selected at init() time when
	// golang.org/x/sys/cpu reports the CPU supports it.
	DispatchSSE41

	// DispatchNEON is reported on arm64 CPUs with NEON (ASIMD). MinPos
	// still runs the portable scalar scan at this level; see
	// dispatch_arm64.go.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE41:
		return "sse41"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is set by init() in dispatch_*.go files, exactly one of which
// is compiled in depending on GOARCH (amd64, arm64, or everything else).
var currentLevel DispatchLevel

// CurrentLevel reports which MinPos implementation this process is using.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// HasSIMD reports whether MinPos is hardware-accelerated in this build.
func HasSIMD() bool {
	return currentLevel == DispatchSSE41
}

// NoSimdEnv reports whether HWY_NO_SIMD requests the scalar fallback
// regardless of what the CPU and build support. Useful for differential
// testing the scalar path against the accelerated one on the same machine.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
