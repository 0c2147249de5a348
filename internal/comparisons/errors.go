package comparisons

import (
	"errors"
	"net/http"

	"github.com/redlinehq/redline/internal/workflow"
)

// Domain errors for comparison operations.
var (
	ErrNotFound     = errors.New("comparison not found")
	ErrDuplicate    = errors.New("comparison already exists")
	ErrSameDocument = errors.New("cannot compare a document with itself")
)

// MapHTTPStatus maps comparison domain and pipeline errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrSameDocument) {
		return http.StatusBadRequest
	}
	if errors.Is(err, workflow.ErrGenerateFailed) {
		return http.StatusBadGateway
	}
	if errors.Is(err, workflow.ErrCancelled) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
