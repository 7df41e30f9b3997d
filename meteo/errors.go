package meteo

import (
	"errors"
	"fmt"
)

// ErrMissingFrequency reports a periodical request built without an hourly
// or daily frequency. It indicates a bug in request construction.
var ErrMissingFrequency = errors.New("request carries no hourly or daily frequency")

// ArgumentError reports a caller-supplied value outside its documented
// domain. It is returned before any network call is made.
type ArgumentError struct {
	Param      string
	Value      any
	Constraint string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: must be %s", e.Param, e.Value, e.Constraint)
}

// RequestError reports a non-2xx response from an API endpoint, carrying
// the status code and the server-supplied reason text.
type RequestError struct {
	StatusCode int
	Reason     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("server responded with status code %d: %s", e.StatusCode, e.Reason)
}

// MissingFieldError reports a required key absent from the request
// parameters or the response body. It indicates a mismatch between the
// request construction and the response shape, not bad user input.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q not found", e.Field)
}

// ShapeError reports a count mismatch between what a call requested and
// what it was given: labels versus metrics, response fields versus
// requested metrics, or value arrays versus their timestamp index. Like
// MissingFieldError it marks a contract violation, not bad user input.
type ShapeError struct {
	Subject  string
	Expected int
	Got      int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: expected %d values, got %d", e.Subject, e.Expected, e.Got)
}

// CodeLookupError reports a weather code with no entry in the description
// table. A well-formed source never produces one.
type CodeLookupError struct {
	Code int
}

func (e *CodeLookupError) Error() string {
	return fmt.Sprintf("no description for weather code %d", e.Code)
}
