package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeBadRequest   Code = "BAD_REQUEST"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeConflict     Code = "CONFLICT"
	CodeExternal     Code = "EXTERNAL_SERVICE_ERROR"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a request-scoped failure. Reason is shown to the caller as "detail".
type Error struct {
	Code   Code
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Status maps the error code to an HTTP status
func (e *Error) Status() int {
	switch e.Code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeBadRequest:
		return fiber.StatusBadRequest
	case CodeInvalidInput:
		return fiber.StatusUnprocessableEntity
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func New(code Code, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

func NotFound(reason string) *Error {
	return New(CodeNotFound, reason, nil)
}

func BadRequest(reason string) *Error {
	return New(CodeBadRequest, reason, nil)
}

func InvalidInput(reason string, err error) *Error {
	return New(CodeInvalidInput, reason, err)
}

func Conflict(reason string) *Error {
	return New(CodeConflict, reason, nil)
}

// External wraps a failure of a remote collaborator. The underlying message
// is echoed to the caller.
func External(prefix string, err error) *Error {
	return New(CodeExternal, fmt.Sprintf("%s: %v", prefix, err), err)
}

func Internal(reason string, err error) *Error {
	return New(CodeInternal, reason, err)
}

// As extracts an *Error from an error chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
