package http

import (
	"errors"
	"net/http"

	"github.com/JegankarthiMCA/i/internal/service"
	"github.com/JegankarthiMCA/i/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenIsInvalid:      http.StatusForbidden,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	service.ErrHashingFailed:       http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrNoUsersFound:       http.StatusNotFound,
	store.ErrCourseNotFound:     http.StatusNotFound,
	store.ErrNoVideosFound:      http.StatusNotFound,
	store.ErrNothingToUpdate:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError maps a (possibly wrapped) domain error to an HTTP status
// code. Unknown errors are reported as 500 without leaking the cause.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
