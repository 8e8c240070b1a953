package assert

import (
	"fmt"
)

// True panics when the condition does not hold. Used for programmer-error
// invariants, not for conditions a caller can trigger with valid input.
func True(condition bool, errMsg string, arg ...any) {
	if !condition {
		panic(fmt.Sprintf("Assertion Failed: %s\n", fmt.Sprintf(errMsg, arg...)))
	}
}
