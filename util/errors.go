package util

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthorized    = errors.New("unauthorized")
)

// Error wraps a sentinel kind with the message shown to the caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func InvalidArgument(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...interface{}) error {
	return &Error{Kind: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}

/*
* Map the error kind to the HTTP status code
* Conflict shares 400 with bad arguments
* Anything unrecognised is a server fault
 */
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// PublicMessage hides the text of unclassified errors.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return INTERNAL_SERVER_ERROR
}
