package pointcode

import "fmt"

// ParseError reports text that is not a valid non-negative integer where
// one is required (a whole integer input, or one group of a grouped input).
type ParseError struct {
	// Input is the text that failed to parse.
	Input string

	// Err is the underlying strconv error, if any.
	Err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid point code %q: not a non-negative integer", e.Input)
}

// Unwrap returns the underlying strconv error for use with errors.Is/errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatError reports a grouped point code that does not split into exactly
// three "-"-separated parts.
type FormatError struct {
	// Input is the complete grouped text as given by the caller.
	Input string

	// Format is the grouping that was expected (e.g. "5-4-5").
	Format string

	// Parts is the number of parts the input actually split into.
	Parts int
}

// Error satisfies the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("wrong format %q for %s, expected A-B-C (got %d parts)", e.Input, e.Format, e.Parts)
}

// RangeError reports a group whose value exceeds the capacity of its bit
// field. The bound is inclusive: a group of n bits accepts values up to 2^n.
type RangeError struct {
	// Input is the complete grouped text as given by the caller.
	Input string

	// Format is the grouping the input was checked against.
	Format Format
}

// Error satisfies the error interface. The message hints at the ANSI 8-8-8
// notation, which is the usual reason for out-of-range groups.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s does not look like Signaling Point Code Format %s (max=%s, min=0-0-0), maybe it is ANSI (8-8-8)?",
		e.Input, e.Format.Name, e.Format.Max())
}

// StateError reports an operation that requires a value on a PointCode that
// has not been set yet.
type StateError struct {
	// Op is the name of the operation that was attempted.
	Op string
}

// Error satisfies the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("%s: point code value is not set", e.Op)
}
