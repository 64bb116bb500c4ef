package medicalrecord

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
	g.GET("/medicalRecord", h.ListMedicalRecords)
	g.GET("/medicalRecord/:firstName/:lastName", h.GetMedicalRecord)
	g.POST("/medicalRecord", h.CreateMedicalRecord)
	g.PUT("/medicalRecord/:firstName/:lastName", h.UpdateMedicalRecord)
	g.DELETE("/medicalRecord/:firstName/:lastName", h.DeleteMedicalRecord)
}

func (h *Handler) ListMedicalRecords(c echo.Context) error {
	records, err := h.svc.ListMedicalRecords(c.Request().Context())
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) GetMedicalRecord(c echo.Context) error {
	m, err := h.svc.GetMedicalRecord(c.Request().Context(), c.Param("firstName"), c.Param("lastName"))
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) CreateMedicalRecord(c echo.Context) error {
	var m MedicalRecord
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateMedicalRecord(c.Request().Context(), &m); err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) UpdateMedicalRecord(c echo.Context) error {
	var m MedicalRecord
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateMedicalRecord(c.Request().Context(), c.Param("firstName"), c.Param("lastName"), &m); err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMedicalRecord(c echo.Context) error {
	if err := h.svc.DeleteMedicalRecord(c.Request().Context(), c.Param("firstName"), c.Param("lastName")); err != nil {
		return apperr.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
