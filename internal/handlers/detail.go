package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/gatabank/internal/response"
)

// createDetail decodes a detail row and attaches it to the parent in {id}.
func createDetail[Req, Resp any](rh response.ResponseHandler, add func(context.Context, string, Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			rh.HandleError(w, r, err)
			return
		}
		out, err := add(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			rh.HandleError(w, r, err)
			return
		}
		rh.WriteSuccess(w, r, http.StatusCreated, out)
	}
}

// removeDetail retires the detail row {childId} of the parent {id}.
func removeDetail(rh response.ResponseHandler, remove func(context.Context, string, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := remove(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "childId")); err != nil {
			rh.HandleError(w, r, err)
			return
		}
		rh.WriteSuccess(w, r, http.StatusOK, nil)
	}
}
