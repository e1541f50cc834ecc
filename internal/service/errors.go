package service

import (
	"errors"
	"fmt"
)

// ErrNotAdmin is returned when a gated mutation is attempted by a caller
// without the admin flag.
var ErrNotAdmin = errors.New("admin access required")

// ValidationError reports bad input shape or range. It is surfaced to the
// caller inline and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Actor identifies the caller of a service operation. The zero value is an
// anonymous caller. Admin is resolved by the access gate once per session and
// carried explicitly into every call instead of living in ambient state.
type Actor struct {
	UserID string
	Admin  bool
}
