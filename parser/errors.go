package parser

import (
	"errors"
	"fmt"

	"okayplayer-parser/tokenize"
)

// ErrNoMessageID indicates a post group that never produced an id token, so
// its deep link cannot be built.
var ErrNoMessageID = errors.New("no message id captured, cannot build reply URL")

// MalformedValueError indicates a captured substring that failed to parse
// as its field's type.
type MalformedValueError struct {
	Err   error
	Value string
	Kind  tokenize.Kind
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed %s value %q: %v", e.Kind, e.Value, e.Err)
}

func (e *MalformedValueError) Unwrap() error { return e.Err }

// IsMalformedValueError checks if an error is a malformed-value failure.
func IsMalformedValueError(err error) bool {
	var malformed *MalformedValueError
	return errors.As(err, &malformed)
}

// MetadataError indicates thread-level data missing from the page, or
// present but unusable.
type MetadataError struct {
	Err   error
	Field string
}

func (e *MetadataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("thread page has bad %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("thread page has no %s", e.Field)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// IsMetadataError checks if an error is a missing-metadata failure.
func IsMetadataError(err error) bool {
	var metadata *MetadataError
	return errors.As(err, &metadata)
}
