package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a per-image failure.
type Kind string

const (
	// KindInputUnavailable means the input could not be opened or decoded.
	KindInputUnavailable Kind = "input_unavailable"
	// KindShapeMismatch means an operator returned a field whose shape
	// differs from the intensity image. It indicates a bug.
	KindShapeMismatch Kind = "shape_mismatch"
	// KindOutputWriteFailure means an output directory or file could not be
	// written.
	KindOutputWriteFailure Kind = "output_write_failure"
)

// Step names the pipeline stage that failed.
type Step string

const (
	StepLoad  Step = "load"
	StepScore Step = "score"
	StepSave  Step = "save"
)

// Error is a per-image pipeline failure.
type Error struct {
	Kind  Kind   `json:"kind"`
	Path  string `json:"path"`
	Step  Step   `json:"step"`
	Cause error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s failed for %s (caused by: %v)", e.Kind, e.Step, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s failed for %s", e.Kind, e.Step, e.Path)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

func newInputUnavailable(path string, cause error) *Error {
	return &Error{Kind: KindInputUnavailable, Path: path, Step: StepLoad, Cause: cause}
}

func newShapeMismatch(path string, cause error) *Error {
	return &Error{Kind: KindShapeMismatch, Path: path, Step: StepScore, Cause: cause}
}

func newOutputWriteFailure(path string, cause error) *Error {
	return &Error{Kind: KindOutputWriteFailure, Path: path, Step: StepSave, Cause: cause}
}

// IsKind reports whether any error in err's chain is an *Error of the given
// kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
