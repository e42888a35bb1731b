package handlers

import (
	"context"
	"net/http"

	"github.com/GregMSThompson/gatabank/internal/response"
	"github.com/GregMSThompson/gatabank/pkg/logger"
)

type healthHandlers struct {
	ResponseHandler response.ResponseHandler
	Ping            func(ctx context.Context) error
}

func NewHealthHandlers(deps *Deps) *healthHandlers {
	return &healthHandlers{ResponseHandler: deps.ResponseHandler, Ping: deps.Ping}
}

func (h *healthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.Ping != nil {
		if err := h.Ping(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error("health check failed", "error", err)
			h.ResponseHandler.WriteError(w, r, http.StatusServiceUnavailable, "unavailable", "database unreachable")
			return
		}
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
