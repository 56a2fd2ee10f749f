// Package dsv error values.
//
// Parsing has no error taxonomy at all: malformed input is data, not an
// error, and is resolved by the state machine. The only errors this package
// surfaces are programming errors on the writing side.
package dsv

import (
	"errors"
	"fmt"
)

// ErrUnsupportedInput reports that Stringify was handed a value that is
// neither a row-major [][]string nor a Table.
var ErrUnsupportedInput = errors.New("dsv: unsupported input shape")

// unsupportedInput wraps ErrUnsupportedInput with the offending type.
func unsupportedInput(v any) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedInput, v)
}
