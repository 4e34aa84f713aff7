package colour

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports text that does not follow a notation's syntax:
	// a wrong field count, a non-numeric field or an invalid hex digit.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutOfRange reports a well-formed field whose value lies outside the
	// notation's domain, such as an RGB channel above 255.
	ErrOutOfRange = errors.New("value out of range")
)

// ParseError describes a failed parse. Err is always ErrMalformedInput or
// ErrOutOfRange.
type ParseError struct {
	Notation Notation
	Input    string
	// Field names the offending field, empty when the error concerns the whole input.
	Field  string
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	subject := "input"
	if e.Notation.Valid() {
		subject = e.Notation.String()
	}
	msg := fmt.Sprintf("%s %q: %v", subject, e.Input, e.Err)
	if e.Field != "" {
		msg += fmt.Sprintf(" (%s)", e.Field)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformed(n Notation, input, field, detail string) error {
	return &ParseError{Notation: n, Input: input, Field: field, Detail: detail, Err: ErrMalformedInput}
}

func outOfRange(n Notation, input, field, detail string) error {
	return &ParseError{Notation: n, Input: input, Field: field, Detail: detail, Err: ErrOutOfRange}
}
