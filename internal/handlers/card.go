package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/gatabank/internal/dto"
	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/internal/response"
)

type CardService interface {
	ListCards(ctx context.Context) ([]dto.CardResponse, error)
	GetCard(ctx context.Context, id string) (dto.CardResponse, error)
	CreateCard(ctx context.Context, req dto.CardRequest) (dto.CardResponse, error)
	UpdateCard(ctx context.Context, id string, req dto.CardRequest) (dto.CardResponse, error)
	DeleteCard(ctx context.Context, id string) error

	AddBasic(ctx context.Context, cardID string, req dto.CardBasicRequest) (dto.CardBasicResponse, error)
	AddBenefit(ctx context.Context, cardID string, req dto.LabelRequest) (dto.LabelResponse, error)
	AddDiscount(ctx context.Context, cardID string, req dto.LabelRequest) (dto.LabelResponse, error)
	AddFee(ctx context.Context, cardID string, req dto.CardFeeRequest) (dto.CardFeeResponse, error)
	AddRequirement(ctx context.Context, cardID string, req dto.CardRequirementRequest) (dto.CardRequirementResponse, error)
	RemoveBasic(ctx context.Context, cardID, id string) error
	RemoveBenefit(ctx context.Context, cardID, id string) error
	RemoveDiscount(ctx context.Context, cardID, id string) error
	RemoveFee(ctx context.Context, cardID, id string) error
	RemoveRequirement(ctx context.Context, cardID, id string) error
}

type cardHandlers struct {
	ResponseHandler response.ResponseHandler
	CardSvc         CardService
	guard           []func(http.Handler) http.Handler
}

func NewCardHandlers(deps *Deps) *cardHandlers {
	return &cardHandlers{
		ResponseHandler: deps.ResponseHandler,
		CardSvc:         deps.CardSvc,
		guard:           deps.guard(models.CapCatalogWrite),
	}
}

func (h *cardHandlers) CardRoutes() chi.Router {
	rh := h.ResponseHandler
	r := chi.NewRouter()
	r.Get("/", h.ListCards)
	r.Get("/{id}", h.GetCard)

	r.Group(func(r chi.Router) {
		r.Use(h.guard...)
		r.Post("/", h.CreateCard)
		r.Put("/{id}", h.UpdateCard)
		r.Post("/{id}", h.UpdateCard)
		r.Delete("/{id}", h.DeleteCard)

		r.Post("/{id}/basics", createDetail(rh, h.CardSvc.AddBasic))
		r.Delete("/{id}/basics/{childId}", removeDetail(rh, h.CardSvc.RemoveBasic))
		r.Post("/{id}/benefits", createDetail(rh, h.CardSvc.AddBenefit))
		r.Delete("/{id}/benefits/{childId}", removeDetail(rh, h.CardSvc.RemoveBenefit))
		r.Post("/{id}/discounts", createDetail(rh, h.CardSvc.AddDiscount))
		r.Delete("/{id}/discounts/{childId}", removeDetail(rh, h.CardSvc.RemoveDiscount))
		r.Post("/{id}/fees", createDetail(rh, h.CardSvc.AddFee))
		r.Delete("/{id}/fees/{childId}", removeDetail(rh, h.CardSvc.RemoveFee))
		r.Post("/{id}/requirements", createDetail(rh, h.CardSvc.AddRequirement))
		r.Delete("/{id}/requirements/{childId}", removeDetail(rh, h.CardSvc.RemoveRequirement))
	})
	return r
}

func (h *cardHandlers) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.CardSvc.ListCards(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, cards)
}

func (h *cardHandlers) GetCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.CardSvc.GetCard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, card)
}

func (h *cardHandlers) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req dto.CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	card, err := h.CardSvc.CreateCard(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, card)
}

func (h *cardHandlers) UpdateCard(w http.ResponseWriter, r *http.Request) {
	var req dto.CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	card, err := h.CardSvc.UpdateCard(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, card)
}

func (h *cardHandlers) DeleteCard(w http.ResponseWriter, r *http.Request) {
	if err := h.CardSvc.DeleteCard(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
