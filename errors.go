package filedrive

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNotFound is the backend-agnostic "file absent" condition.
	//
	// Operations that normalize absence (Get, GetStream, Stat) return
	// an error satisfying errors.Is(err, ErrNotFound). Operations that
	// deliberately do not normalize (Delete, Copy, List) surface the
	// backend's raw error instead.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidPath indicates a relative path that was rejected
	// before any I/O, e.g. because it escapes the drive root.
	ErrInvalidPath = errors.New("invalid path")
)

// NotFoundError reports a missing file.
//
// Path is the caller-supplied relative path, never the resolved one;
// the root is the drive's concern, not the caller's. The underlying
// cause can be accessed via errors.Unwrap.
type NotFoundError struct {
	Path  string
	cause error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.cause }

// Is makes NotFoundError satisfy errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// PathError reports a relative path rejected during resolution,
// before any filesystem call.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// Is makes PathError satisfy errors.Is(err, ErrInvalidPath).
func (e *PathError) Is(target error) bool { return target == ErrInvalidPath }

// notFound is the single classification point for the underlying
// "not found" condition. Recognizing the condition is shared; what an
// operation does with it — normalize, coerce to false, or trigger the
// mkdir recovery — is the contract's business.
func notFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
