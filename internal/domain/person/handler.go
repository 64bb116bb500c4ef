package person

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safetynet/alerts/internal/platform/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/person", h.ListPersons)
	g.GET("/person/:firstName/:lastName", h.GetPerson)
	g.POST("/person", h.CreatePerson)
	g.PUT("/person/:firstName/:lastName", h.UpdatePerson)
	g.DELETE("/person/:firstName/:lastName", h.DeletePerson)
}

func (h *Handler) ListPersons(c echo.Context) error {
	persons, err := h.svc.ListPersons(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, persons)
}

func (h *Handler) GetPerson(c echo.Context) error {
	p, err := h.svc.GetPerson(c.Request().Context(), c.Param("firstName"), c.Param("lastName"))
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePerson(c echo.Context) error {
	var p Person
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePerson(c.Request().Context(), &p); err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdatePerson(c echo.Context) error {
	var p Person
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdatePerson(c.Request().Context(), c.Param("firstName"), c.Param("lastName"), &p); err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePerson(c echo.Context) error {
	if err := h.svc.DeletePerson(c.Request().Context(), c.Param("firstName"), c.Param("lastName")); err != nil {
		return apperr.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
