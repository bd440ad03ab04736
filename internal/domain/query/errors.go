// Package query provides the transformation primitives the dataset prompts
// are built from: filtering, projection, grouping, joining, sorting and
// aggregation over slices of records.
//
// Every function returns new slices and maps. Inputs are never modified.
package query

import "errors"

// ErrEmptyInput matches any *EmptyInputError via errors.Is.
var ErrEmptyInput = errors.New("empty input")

// EmptyInputError reports an extremum, mean or ratio requested over an
// empty sequence (or a zero denominator), where no value is defined.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	if e.Op == "" {
		return ErrEmptyInput.Error()
	}
	return e.Op + ": " + ErrEmptyInput.Error()
}

// Is reports whether target is ErrEmptyInput.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}
