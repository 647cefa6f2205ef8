package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/expense-tracker/internal/service"
	"github.com/MKhiriev/expense-tracker/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrInactiveUser:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:      http.StatusUnauthorized,
	store.ErrExpenseNotFound:   http.StatusNotFound,
	store.ErrSalaryNotFound:    http.StatusNotFound,
	store.ErrCategoryNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
