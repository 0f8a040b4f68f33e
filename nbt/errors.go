package nbt

import (
	"errors"
	"fmt"
)

// Decode errors. Every parse failure surfaces exactly one of these; a
// failed decode never returns a partial document.
var (
	// ErrUnexpectedEnd means the buffer ran out before a required field,
	// or a declared length implies more bytes than remain.
	ErrUnexpectedEnd = errors.New("nbt: unexpected end of buffer")

	// ErrMaxDepth means nested compound/list recursion exceeded MaxDepth.
	ErrMaxDepth = errors.New("nbt: max depth exceeded")

	// ErrMalformedString means bytes claimed to be modified UTF-8 do not
	// parse as such.
	ErrMalformedString = errors.New("nbt: malformed modified UTF-8")

	// ErrInvalidListType means a list declared a nonzero length with the
	// end element type.
	ErrInvalidListType = errors.New("nbt: invalid list element type")
)

// InvalidRootTypeError reports a root discriminant byte that is neither
// the end sentinel nor a compound.
type InvalidRootTypeError struct {
	ID byte
}

func (e *InvalidRootTypeError) Error() string {
	return fmt.Sprintf("nbt: invalid root tag type 0x%02x", e.ID)
}

// InvalidTagTypeError reports a discriminant byte outside the known set
// where a value type was expected.
type InvalidTagTypeError struct {
	ID byte
}

func (e *InvalidTagTypeError) Error() string {
	return fmt.Sprintf("nbt: invalid tag type 0x%02x", e.ID)
}
