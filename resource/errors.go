package resource

import (
	"errors"
	"fmt"
)

// ErrUnavailable matches every failure to locate, open or read a resource,
// regardless of the underlying cause. Use errors.Is against it when only the
// failure kind matters.
var ErrUnavailable = errors.New("resource unavailable")

// UnavailableError reports a resource that cannot be located or read. It
// always carries the name the caller asked for so a broken fixture is
// diagnosable from the failure alone.
type UnavailableError struct {
	// Name is the resource name as requested, before resolution.
	Name string

	// Err is the underlying cause, if any.
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read resource %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("cannot find resource %q", e.Name)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is reports ErrUnavailable as a match for any UnavailableError.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func unavailable(name string, err error) error {
	return &UnavailableError{Name: name, Err: err}
}
