package domain

import "fmt"

// NotFoundError represents a missing record or session.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// InvalidStatusError reports a status outside the record type's
// enumeration.
type InvalidStatusError struct {
	Status string
}

func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q", e.Status)
}

// Is enables errors.Is matching on InvalidStatusError.
func (e InvalidStatusError) Is(target error) bool {
	_, ok := target.(InvalidStatusError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidStatusError)
	return ok
}

// ErrInvalidStatus is the sentinel error for enumeration violations.
var ErrInvalidStatus = InvalidStatusError{}
