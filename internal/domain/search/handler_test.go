package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func performSearch(t *testing.T, h *Handler, target string, fn echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, fn(c)
}

func TestStationCoverageHandler_OK(t *testing.T) {
	h := NewHandler(newTestService(fixture()))

	rec, err := performSearch(t, h, "/firestationCoverage?stationNumber=3", h.StationCoverage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		AdultCount int `json:"adultCount"`
		ChildCount int `json:"childCount"`
		Persons    []struct {
			FirstName string `json:"firstName"`
		} `json:"persons"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.AdultCount != 2 || body.ChildCount != 2 || len(body.Persons) != 4 {
		t.Errorf("unexpected payload: %s", rec.Body.String())
	}
}

func TestStationCoverageHandler_BadStationNumber(t *testing.T) {
	h := NewHandler(newTestService(fixture()))

	_, err := performSearch(t, h, "/firestationCoverage?stationNumber=three", h.StationCoverage)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestStationCoverageHandler_UnknownStation(t *testing.T) {
	h := NewHandler(newTestService(fixture()))

	_, err := performSearch(t, h, "/firestationCoverage?stationNumber=9", h.StationCoverage)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestChildAlertHandler_EmptyResultSerializesEmptyList(t *testing.T) {
	h := NewHandler(newTestService(fixture()))

	rec, err := performSearch(t, h, "/childAlert?address=1+Nowhere+Ln", h.ChildAlert)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"children":[]`) {
		t.Errorf("expected empty list, not null: %s", rec.Body.String())
	}
}

func TestChildAlertHandler_MissingAddress(t *testing.T) {
	h := NewHandler(newTestService(fixture()))

	_, err := performSearch(t, h, "/childAlert", h.ChildAlert)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPhoneAlertHandler_OK(t *testing.T) {
	h := NewHandler(newTestService(fixture()))

	rec, err := performSearch(t, h, "/phoneAlert?firestation=2", h.PhoneAlert)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body struct {
		Phones []string `json:"phones"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Phones) != 1 || body.Phones[0] != "841-874-6513" {
		t.Errorf("unexpected phones: %v", body.Phones)
	}
}

func TestFloodStationsHandler_ParsesList(t *testing.T) {
	h := NewHandler(newTestService(fixture()))

	rec, err := performSearch(t, h, "/flood/stations?stations=2,+3", h.FloodStations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body struct {
		Persons []struct {
			Address string `json:"address"`
		} `json:"persons"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Persons) != 5 {
		t.Errorf("expected all 5 residents, got %s", rec.Body.String())
	}
}

func TestFloodStationsHandler_BadList(t *testing.T) {
	h := NewHandler(newTestService(fixture()))

	_, err := performSearch(t, h, "/flood/stations?stations=1,x", h.FloodStations)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPersonInfoHandler_OK(t *testing.T) {
	h := NewHandler(newTestService(fixture()))

	rec, err := performSearch(t, h, "/personInfo?lastName=Carman", h.PersonInfo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"lastName":"Carman"`) {
		t.Errorf("unexpected payload: %s", rec.Body.String())
	}
}

func TestCommunityEmailHandler_UnknownCity(t *testing.T) {
	h := NewHandler(newTestService(fixture()))

	_, err := performSearch(t, h, "/communityEmail?city=Gotham", h.CommunityEmail)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}
