package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/gatabank/internal/dto"
	"github.com/GregMSThompson/gatabank/internal/response"
)

type GeographyService interface {
	ListCities(ctx context.Context) ([]dto.CityResponse, error)
	ListDistricts(ctx context.Context, cityID string) ([]dto.DistrictResponse, error)
	ListVillages(ctx context.Context, districtID string) ([]dto.VillageResponse, error)
}

type geographyHandlers struct {
	ResponseHandler response.ResponseHandler
	GeographySvc    GeographyService
}

func NewGeographyHandlers(deps *Deps) *geographyHandlers {
	return &geographyHandlers{
		ResponseHandler: deps.ResponseHandler,
		GeographySvc:    deps.GeographySvc,
	}
}

// Register mounts the read-only geography listings. Geography is
// maintained through the admin tool, never over HTTP.
func (h *geographyHandlers) Register(r chi.Router) {
	r.Get("/cities", h.ListCities)
	r.Get("/districts/{cityId}", h.ListDistricts)
	r.Get("/villages/{districtId}", h.ListVillages)
}

func (h *geographyHandlers) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.GeographySvc.ListCities(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, cities)
}

func (h *geographyHandlers) ListDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.GeographySvc.ListDistricts(r.Context(), chi.URLParam(r, "cityId"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, districts)
}

func (h *geographyHandlers) ListVillages(w http.ResponseWriter, r *http.Request) {
	villages, err := h.GeographySvc.ListVillages(r.Context(), chi.URLParam(r, "districtId"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, villages)
}
