// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package errors

import (
	"fmt"
	"strings"
)

// LineError is an error paired with the 1-based line of the input that
// caused it. Bulk operations over line-oriented input can partially fail and
// the caller must bind which line(s) failed. Use the `Line` method to
// extract the line number.
type LineError struct {
	line int
	err  error
}

// NewLineError creates an error paired with a line number.
func NewLineError(line int, err error) error {
	return &LineError{line, err}
}

func (e *LineError) Error() string {
	return fmt.Sprintf("Line(%d): %s", e.line, e.err.Error())
}

func (e *LineError) Line() int {
	return e.line
}

func (e *LineError) Unwrap() error {
	return e.err
}

// Errors is an error that wrap two or more errors. The downside of batching
// many errors is that unwrap will only return the first error. Use the
// `Errors` method to extract all errors.
type Errors struct {
	errs []error
}

func (e *Errors) Error() string {
	var buf strings.Builder

	buf.WriteString("Multiple errors: ")
	for i, err := range e.errs {
		fmt.Fprintf(&buf, "(%d){%s}\t", i+1, err.Error())
	}

	return buf.String()
}

func (e *Errors) Errors() []error {
	return e.errs
}

func (e *Errors) Unwrap() error {
	// Only return the first error.
	return e.errs[0]
}

func NewErrors(errs ...error) error {
	var errors []error
	for _, err := range errs {
		if err != nil {
			errors = append(errors, err)
		}
	}

	switch len(errors) {
	case 0:
		return nil
	case 1:
		return errors[0]
	default:
		return &Errors{errors}
	}
}
