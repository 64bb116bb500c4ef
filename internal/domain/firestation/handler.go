package firestation

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
	g.GET("/firestation", h.ListFirestations)
	g.GET("/firestation/:address", h.GetFirestation)
	g.POST("/firestation", h.CreateFirestation)
	g.PUT("/firestation/:address", h.UpdateFirestation)
	g.DELETE("/firestation/:address", h.DeleteFirestation)
}

func (h *Handler) ListFirestations(c echo.Context) error {
	firestations, err := h.svc.ListFirestations(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, firestations)
}

func (h *Handler) GetFirestation(c echo.Context) error {
	f, err := h.svc.GetFirestation(c.Request().Context(), c.Param("address"))
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *Handler) CreateFirestation(c echo.Context) error {
	var f Firestation
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateFirestation(c.Request().Context(), &f); err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *Handler) UpdateFirestation(c echo.Context) error {
	var f Firestation
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateFirestation(c.Request().Context(), c.Param("address"), &f); err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *Handler) DeleteFirestation(c echo.Context) error {
	if err := h.svc.DeleteFirestation(c.Request().Context(), c.Param("address")); err != nil {
		return apperr.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
