package model

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidInput marks malformed or out-of-domain identifiers and ranges.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks an identifier without data upstream, e.g. a skipped slot.
	ErrNotFound = errors.New("not found")
	// ErrUpstream marks transport or protocol failures talking to the block source.
	ErrUpstream = errors.New("upstream failure")
	// ErrConflict marks an insert that lost a race against an existing record.
	ErrConflict = errors.New("record already exists")
	// ErrStorage marks persistent store failures.
	ErrStorage = errors.New("storage failure")
	// ErrHeightNotIndexed is returned for a height without a cached height to slot mapping.
	ErrHeightNotIndexed = fmt.Errorf("height not indexed: %w", ErrNotFound)
)

// StatusCode maps an error to the HTTP status class recorded in request logs.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstream), errors.Is(err, context.DeadlineExceeded):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HTTPStatus maps an error to the status returned to API clients. Server-side and upstream
// failures all surface as 500; request logs keep the finer StatusCode.
func HTTPStatus(err error) int {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		return http.StatusInternalServerError
	}
	return status
}
