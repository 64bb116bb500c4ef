package datastore

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ReloadHandler returns a handler that re-reads the data file and swaps the
// in-memory collections. Intended for the admin surface, after the document
// has been edited out of band.
func ReloadHandler(s *Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := s.Reload(); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "reloaded"})
	}
}
