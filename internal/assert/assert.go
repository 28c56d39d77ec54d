//go:build debug

// Package assert provides debug-only contract checks. Heap8 and its
// siblings document several preconditions (pop on an empty heap, a
// push_down/pull_up position past size) that are programmer errors rather
// than recoverable failures; these checks panic in debug builds and are not
// performed at all in release builds, so the check itself must compile away
// entirely when the debug tag is absent.
package assert

import (
	"fmt"

	"github.com/timandy/routine"
)

// Enabled is true when built with -tags debug.
const Enabled = true

// That panics if cond is false. format/args describe the violated contract.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("go8heap: contract violation [goroutine %d]: "+format, append([]any{routine.Goid()}, args...)...))
	}
}
