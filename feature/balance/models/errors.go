package models

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when an input file cannot be opened.
	ErrSourceNotFound = errors.New("source not found")
	// ErrMalformedSource is returned for invalid XML or unexpected nesting.
	ErrMalformedSource = errors.New("malformed source")
	// ErrMissingName is returned when a record lacks its identifying name.
	ErrMissingName = errors.New("missing name")
	// ErrInvalidModifier is returned when a modifier value is not a finite number.
	ErrInvalidModifier = errors.New("invalid modifier")
)

// SourceError ties a failure to the file or stream it came from.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ModifierError reports an attribute whose value could not be parsed.
type ModifierError struct {
	Entry     string
	Attribute string
	Value     string
	Err       error
}

func (e *ModifierError) Error() string {
	return fmt.Sprintf("entry %q: attribute %q has non-numeric value %q", e.Entry, e.Attribute, e.Value)
}

func (e *ModifierError) Unwrap() []error {
	return []error{ErrInvalidModifier, e.Err}
}
