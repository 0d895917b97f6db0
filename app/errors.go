package app

import (
	"errors"
	"fmt"
)

// ErrInfoNotFound is returned when neither the structured walk nor the
// fallback scan could locate the info dictionary's bytes.
var ErrInfoNotFound = errors.New("could not locate info dictionary")

// MalformedInputError reports an unexpected byte where a Bencode value token
// was expected.
type MalformedInputError struct {
	Offset int
	Byte   byte
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed bencode: unexpected byte %q at offset %d", e.Byte, e.Offset)
}

// TruncatedInputError reports that the buffer ended before a terminator or a
// declared string length was satisfied.
type TruncatedInputError struct {
	Offset int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated bencode: unexpected end of data at offset %d", e.Offset)
}
