package model

import (
	"errors"
	"fmt"
)

var (
	ErrNoVerbPhrase = errors.New("verb phrase not found")
	ErrNoMainVerb   = errors.New("main verb not found")
)

// MalformedRecordError reports a sentence lacking an expected sub-structure.
// It never aborts the processing of a file.
type MalformedRecordError struct {
	Provenance Provenance
	Field      string
	Err        error
}

func (err *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %s (%s): %v", err.Provenance, err.Field, err.Err)
}

func (err *MalformedRecordError) Unwrap() error {
	return err.Err
}

// IOFailureError reports an unreadable corpus file or path
type IOFailureError struct {
	Path string
	Err  error
}

func (err *IOFailureError) Error() string {
	return fmt.Sprintf("io failure %s: %v", err.Path, err.Err)
}

func (err *IOFailureError) Unwrap() error {
	return err.Err
}
