package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPError maps a service error to the echo HTTP error the presentation
// layer should return: 404 for NotFound, 409 for Conflict, 422 for
// InvalidFormat, 400 for anything else (validation failures).
func HTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidFormat):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
