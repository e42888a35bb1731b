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

type UserService interface {
	ListUsers(ctx context.Context, view models.AccountView) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, view models.AccountView, id string) (dto.UserResponse, error)
	CreateUser(ctx context.Context, view models.AccountView, req dto.UserRequest) (dto.UserResponse, error)
	UpdateUser(ctx context.Context, view models.AccountView, id string, req dto.UserRequest) (dto.UserResponse, error)
	DeleteUser(ctx context.Context, view models.AccountView, id string) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.UserResponse, error)
}

// userHandlers serves one account view: /users for staff, /collaborators
// for everyone else.
type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
	View            models.AccountView
	guard           []func(http.Handler) http.Handler
}

func NewUserHandlers(deps *Deps, view models.AccountView) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
		View:            view,
		guard:           deps.guard(models.CapUsersManage),
	}
}

func (h *userHandlers) UserRoutes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.guard...)
	r.Get("/", h.ListUsers)
	r.Post("/", h.CreateUser)
	r.Get("/{id}", h.GetUser)
	r.Put("/{id}", h.UpdateUser)
	r.Delete("/{id}", h.DeleteUser)
	return r
}

func (h *userHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserSvc.ListUsers(r.Context(), h.View)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, users)
}

func (h *userHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserSvc.GetUser(r.Context(), h.View, chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *userHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	user, err := h.UserSvc.CreateUser(r.Context(), h.View, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, user)
}

func (h *userHandlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	user, err := h.UserSvc.UpdateUser(r.Context(), h.View, chi.URLParam(r, "id"), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *userHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.UserSvc.DeleteUser(r.Context(), h.View, chi.URLParam(r, "id")); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
