package model

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the pipeline. Cell-level anomalies never produce
// these; they are coerced to missing values where they occur.
var (
	// ErrSourceUnavailable is returned when a source file is missing or unreadable.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedSource is returned when a file exists but cannot be read as the
	// expected tabular shape.
	ErrMalformedSource = errors.New("malformed source")

	// ErrUnknownFarm is returned when a requested farm is not a column of the table.
	ErrUnknownFarm = errors.New("unknown farm")

	// ErrDivisionUndefined is returned when a ratio has a zero denominator.
	ErrDivisionUndefined = errors.New("division undefined")
)

// SourceError describes a failure to load a source file.
// Kind is one of ErrSourceUnavailable or ErrMalformedSource.
type SourceError struct {
	Path   string
	Kind   error
	Reason string
	Err    error
}

func (e *SourceError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Path)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *SourceError) Unwrap() []error {
	out := []error{e.Kind}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// Unavailable builds a SourceError of kind ErrSourceUnavailable.
func Unavailable(path string, err error) *SourceError {
	return &SourceError{Path: path, Kind: ErrSourceUnavailable, Err: err}
}

// Malformed builds a SourceError of kind ErrMalformedSource.
func Malformed(path, reason string, err error) *SourceError {
	return &SourceError{Path: path, Kind: ErrMalformedSource, Reason: reason, Err: err}
}

// UnknownFarm wraps ErrUnknownFarm with the offending name.
func UnknownFarm(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownFarm, name)
}
