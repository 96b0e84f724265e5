// Package httperr maps domain errors onto huma status errors.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-insights/internal/operator"
	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/service"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// FromRead converts an error from a read service. msg is used for failures
// the client cannot fix.
func FromRead(err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrInvalidQuery):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPersistenceUnavailable):
		return huma.NewError(http.StatusServiceUnavailable, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}

// FromAction converts an error returned by the operator for a write action.
func FromAction(err error, msg string) error {
	switch {
	case errors.Is(err, actions.ErrInvalidInput):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, sqlconfig.ErrCategoryNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, operator.ErrStopped):
		return huma.NewError(http.StatusServiceUnavailable, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
