package moolah

import (
	"errors"
	"fmt"
	"strings"
)

// Error is returned for every failure the client detects itself.
// Transport errors are passed through untouched and are never an *Error.
type Error struct {
	Code       string
	Message    string
	StatusCode int
	Fields     []string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Err
}

const (
	ErrCodeMissingCredential    = "MISSING_CREDENTIAL"
	ErrCodeIncompleteParameters = "INCOMPLETE_PARAMETERS"
	ErrCodeMalformedResponse    = "MALFORMED_RESPONSE"
)

func NewMissingCredentialError() *Error {
	return &Error{
		Code:    ErrCodeMissingCredential,
		Message: "api key is not configured",
	}
}

func NewIncompleteParametersError(fields ...string) *Error {
	return &Error{
		Code:    ErrCodeIncompleteParameters,
		Message: fmt.Sprintf("missing required parameters: %s", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}

func NewMalformedResponseError(err error) *Error {
	return &Error{
		Code:    ErrCodeMalformedResponse,
		Message: "malformed response body",
		Err:     err,
	}
}

// NewUnexpectedStatusError reports a non-2xx reply. The body is kept in the
// message so the remote's own explanation is not lost.
func NewUnexpectedStatusError(statusCode int, body string) *Error {
	return &Error{
		Code:       ErrCodeMalformedResponse,
		Message:    fmt.Sprintf("unexpected status %d: %s", statusCode, body),
		StatusCode: statusCode,
	}
}

// IsErrorCode checks if an error is an *Error with a specific code
func IsErrorCode(err error, code string) bool {
	var moolahErr *Error
	if errors.As(err, &moolahErr) {
		return moolahErr.Code == code
	}
	return false
}
