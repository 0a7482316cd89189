package results

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned when the caller's principal lacks the role an
// operation requires.
var ErrForbidden = errors.New("operation not permitted for this role")

// ValidationError rejects a write and names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError reports a missing exam/student/subject/mark combination.
// Public lookups intentionally reuse the same error for unpublished results
// so callers cannot tell absent data from withheld data.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// PublicationBlockedError is returned when publish is attempted while the
// exam's result set is not fully verified.
type PublicationBlockedError struct {
	Unverified int
}

func (e *PublicationBlockedError) Error() string {
	if e.Unverified == 0 {
		return "cannot publish results: exam has no mark records"
	}
	return fmt.Sprintf("cannot publish results: %d mark records still unverified", e.Unverified)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
