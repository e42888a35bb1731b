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

type BankService interface {
	ListBanks(ctx context.Context) ([]dto.BankResponse, error)
	GetBank(ctx context.Context, id string) (dto.BankResponse, error)
	CreateBank(ctx context.Context, req dto.BankRequest) (dto.BankResponse, error)
	UpdateBank(ctx context.Context, id string, req dto.BankRequest) (dto.BankResponse, error)
	DeleteBank(ctx context.Context, id string) error

	AddFee(ctx context.Context, bankID string, req dto.BankFeeRequest) (dto.BankFeeResponse, error)
	AddRequirement(ctx context.Context, bankID string, req dto.BankRequirementRequest) (dto.BankRequirementResponse, error)
	AddDiscount(ctx context.Context, bankID string, req dto.LabelRequest) (dto.LabelResponse, error)
	RemoveFee(ctx context.Context, bankID, id string) error
	RemoveRequirement(ctx context.Context, bankID, id string) error
	RemoveDiscount(ctx context.Context, bankID, id string) error
}

type bankHandlers struct {
	ResponseHandler response.ResponseHandler
	BankSvc         BankService
	guard           []func(http.Handler) http.Handler
}

func NewBankHandlers(deps *Deps) *bankHandlers {
	return &bankHandlers{
		ResponseHandler: deps.ResponseHandler,
		BankSvc:         deps.BankSvc,
		guard:           deps.guard(models.CapCatalogWrite),
	}
}

func (h *bankHandlers) BankRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBanks)
	r.Get("/{id}", h.GetBank)

	r.Group(func(r chi.Router) {
		r.Use(h.guard...)
		r.Post("/", h.CreateBank)
		r.Put("/{id}", h.UpdateBank)
		r.Post("/{id}", h.UpdateBank) // older clients update with POST
		r.Delete("/{id}", h.DeleteBank)

		r.Post("/{id}/fees", createDetail(h.ResponseHandler, h.BankSvc.AddFee))
		r.Delete("/{id}/fees/{childId}", removeDetail(h.ResponseHandler, h.BankSvc.RemoveFee))
		r.Post("/{id}/requirements", createDetail(h.ResponseHandler, h.BankSvc.AddRequirement))
		r.Delete("/{id}/requirements/{childId}", removeDetail(h.ResponseHandler, h.BankSvc.RemoveRequirement))
		r.Post("/{id}/discounts", createDetail(h.ResponseHandler, h.BankSvc.AddDiscount))
		r.Delete("/{id}/discounts/{childId}", removeDetail(h.ResponseHandler, h.BankSvc.RemoveDiscount))
	})
	return r
}

func (h *bankHandlers) ListBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.BankSvc.ListBanks(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, banks)
}

func (h *bankHandlers) GetBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.BankSvc.GetBank(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, bank)
}

func (h *bankHandlers) CreateBank(w http.ResponseWriter, r *http.Request) {
	var req dto.BankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	bank, err := h.BankSvc.CreateBank(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, bank)
}

func (h *bankHandlers) UpdateBank(w http.ResponseWriter, r *http.Request) {
	var req dto.BankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	bank, err := h.BankSvc.UpdateBank(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, bank)
}

func (h *bankHandlers) DeleteBank(w http.ResponseWriter, r *http.Request) {
	if err := h.BankSvc.DeleteBank(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
