package shiprocket

import (
	"errors"
	"fmt"
)

// ValidationError reports an input record that failed a field
// constraint before any network call was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// UpstreamError reports a failed upstream exchange: either a non-2xx
// status or a transport failure (Status 0, Err set).
type UpstreamError struct {
	Op     string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed: %d", e.Op, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError reports a 2xx upstream response whose body was not valid JSON.
type ParseError struct {
	Op string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s returned a malformed response body", e.Op)
}

// IsValidation reports whether err originated from input validation.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUpstream reports whether err originated from the upstream exchange.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsParse reports whether err originated from response body parsing.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func requiredErr(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

func positiveErr(field string) error {
	return &ValidationError{Field: field, Reason: "must be positive"}
}
