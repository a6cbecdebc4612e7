package cs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ValidationError is returned before any request is issued when an input
// does not satisfy its parameter contract.
type ValidationError struct {
	Param    string
	Expected string
	Value    any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is of type %T (value %#v), expected %s", e.Param, e.Value, e.Value, e.Expected)
}

// APIError represents a single error entry reported by the API.
type APIError struct {
	Code   int    `json:"code"   yaml:"code"`
	Title  string `json:"title"  yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (code: %d)", e.Title, e.Code)
	}

	return fmt.Sprintf("%s: %s (code: %d)", e.Title, e.Detail, e.Code)
}

// ResponseError represents a non-2xx response from the API.
type ResponseError struct {
	StatusCode int        `json:"-"`
	Errors     []APIError `json:"errors"`
	Message    string     `json:"error,omitempty"`
	Body       []byte     `json:"-"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	switch {
	case len(e.Errors) == 1:
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Errors[0].Error())
	case len(e.Errors) > 1:
		return fmt.Sprintf("status %d: multiple errors: %v", e.StatusCode, e.Errors)
	case e.Message != "":
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("status %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

// FirstError returns the first error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// ParseResponseError builds a ResponseError from a response status and body.
// Bodies that are not JSON are kept verbatim.
func ParseResponseError(statusCode int, data []byte) *ResponseError {
	errResp := &ResponseError{StatusCode: statusCode, Body: data}

	if len(data) > 0 && json.Unmarshal(data, errResp) != nil {
		errResp.Message = string(data)
	}

	errResp.StatusCode = statusCode

	return errResp
}

// ParseError is returned when a response body is not valid structured data.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing response from %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrAccessKeyRequired  = errors.New("access key is required")
	ErrSecretKeyRequired  = errors.New("secret key is required")
	ErrNoMoreItems        = errors.New("no more items")
	ErrUnknownParameter   = errors.New("unknown parameter")
	ErrUnexpectedResponse = errors.New("unexpected response shape")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsValidation checks if the error was produced by parameter validation.
func IsValidation(err error) bool {
	valErr := &ValidationError{}

	return errors.As(err, &valErr)
}

func hasStatus(err error, status int) bool {
	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		return errResp.StatusCode == status
	}

	return false
}
