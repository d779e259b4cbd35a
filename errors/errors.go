package errors

import (
	"errors"
	"net/http"
)

var (
	NotFound     = HttpError{http.StatusNotFound, errors.New("not found")}
	Duplicate    = HttpError{http.StatusConflict, errors.New("duplicate")}
	Unauthorized = HttpError{http.StatusUnauthorized, errors.New("unauthorized")}
)

type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}

// NewBadRequest reports a missing or invalid client input with a descriptive message.
func NewBadRequest(message string) HttpError {
	return HttpError{http.StatusBadRequest, errors.New(message)}
}

// NewInternal surfaces an unexpected store or vendor failure with the underlying message.
func NewInternal(err error) HttpError {
	return HttpError{http.StatusInternalServerError, err}
}
