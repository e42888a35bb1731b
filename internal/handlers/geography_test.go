package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/gatabank/internal/dto"
)

type stubGeographyService struct {
	lastCity     string
	lastDistrict string
}

func (s *stubGeographyService) ListCities(_ context.Context) ([]dto.CityResponse, error) {
	return []dto.CityResponse{{Name: "Ulaanbaatar"}}, nil
}

func (s *stubGeographyService) ListDistricts(_ context.Context, cityID string) ([]dto.DistrictResponse, error) {
	s.lastCity = cityID
	return []dto.DistrictResponse{}, nil
}

func (s *stubGeographyService) ListVillages(_ context.Context, districtID string) ([]dto.VillageResponse, error) {
	s.lastDistrict = districtID
	return []dto.VillageResponse{}, nil
}

func TestGeographyRoutes(t *testing.T) {
	svc := &stubGeographyService{}
	resp := &stubResponseHandler{}
	r := chi.NewRouter()
	NewGeographyHandlers(&Deps{ResponseHandler: resp, GeographySvc: svc}).Register(r)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/districts/unknown", nil))
	if svc.lastCity != "unknown" {
		t.Fatalf("city id = %q", svc.lastCity)
	}
	if resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("unknown city should still succeed, got %d", resp.writeSuccessStatus)
	}
	if got := resp.writeSuccessData.([]dto.DistrictResponse); got == nil {
		t.Fatal("expected an empty list, got nil")
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/villages/d1", nil))
	if svc.lastDistrict != "d1" {
		t.Fatalf("district id = %q", svc.lastDistrict)
	}
}

func TestHealth(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewHealthHandlers(&Deps{ResponseHandler: resp, Ping: func(context.Context) error { return nil }})
	h.Health(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.writeSuccessStatus)
	}

	resp = &stubResponseHandler{}
	h = NewHealthHandlers(&Deps{ResponseHandler: resp, Ping: func(context.Context) error { return errors.New("down") }})
	h.Health(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if !resp.errorWriteCalled || resp.errorWriteStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got called=%v status=%d", resp.errorWriteCalled, resp.errorWriteStatus)
	}
}
