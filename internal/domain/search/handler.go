package search

import (
	"net/http"
	"strconv"
	"strings"

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
	g.GET("/firestationCoverage", h.StationCoverage)
	g.GET("/childAlert", h.ChildAlert)
	g.GET("/phoneAlert", h.PhoneAlert)
	g.GET("/fire", h.Fire)
	g.GET("/flood/stations", h.FloodStations)
	g.GET("/personInfo", h.PersonInfo)
	g.GET("/communityEmail", h.CommunityEmail)
}

func (h *Handler) StationCoverage(c echo.Context) error {
	stationNumber, err := strconv.Atoi(c.QueryParam("stationNumber"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "stationNumber must be an integer")
	}
	coverage, err := h.svc.StationCoverage(c.Request().Context(), stationNumber)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, coverage)
}

func (h *Handler) ChildAlert(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "address is required")
	}
	alert, err := h.svc.ChildAlert(c.Request().Context(), address)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, alert)
}

func (h *Handler) PhoneAlert(c echo.Context) error {
	stationNumber, err := strconv.Atoi(c.QueryParam("firestation"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "firestation must be an integer")
	}
	alert, err := h.svc.PhoneAlert(c.Request().Context(), stationNumber)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, alert)
}

func (h *Handler) Fire(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "address is required")
	}
	fire, err := h.svc.Fire(c.Request().Context(), address)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, fire)
}

func (h *Handler) FloodStations(c echo.Context) error {
	raw := c.QueryParam("stations")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "stations is required")
	}
	var stationNumbers []int
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "stations must be a comma-separated list of integers")
		}
		stationNumbers = append(stationNumbers, n)
	}
	flood, err := h.svc.FloodStations(c.Request().Context(), stationNumbers)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, flood)
}

func (h *Handler) PersonInfo(c echo.Context) error {
	lastName := c.QueryParam("lastName")
	if lastName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "lastName is required")
	}
	info, err := h.svc.PersonsByLastName(c.Request().Context(), lastName)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) CommunityEmail(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "city is required")
	}
	emails, err := h.svc.EmailsByCity(c.Request().Context(), city)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, emails)
}
