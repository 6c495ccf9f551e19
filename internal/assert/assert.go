package assert

import (
	"fmt"
)

// True panics with msg when cond is false. Used for authoring invariants
// that must hold at process start.
func True(cond bool, msg string) {
	if !cond {
		panic(fmt.Sprintf("assert: %s", msg))
	}
}
