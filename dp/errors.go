package dp

import (
	"errors"
	"fmt"
)

// ErrMissingTableEntry indicates a handler looked up a child table
// entry that was never populated - always this package's own bug,
// since every handler is responsible for covering its whole subset
// space before the parent node runs.
var ErrMissingTableEntry = errors.New("dp: missing table entry")

func invariantf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
