package options

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by scope operations. They are wrapped with
// context; match them with errors.Is.
var (
	// ErrKeyNotFound reports a key absent from a scope and every ancestor.
	ErrKeyNotFound = errors.New("option key not found")

	// ErrSubscopeNotFound reports a missing named subscope.
	ErrSubscopeNotFound = errors.New("subscope not found")

	// ErrDuplicateSubscope reports an attempt to add a subscope under a name
	// already taken by a sibling.
	ErrDuplicateSubscope = errors.New("subscope already exists")

	// ErrUnknownOption reports an option that was set but never read, which
	// usually means a typo in user-supplied configuration.
	ErrUnknownOption = errors.New("unknown option")
)

// SyntaxError describes malformed scope grammar text. Pos is the byte offset
// of the offending character within the input.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}
