package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/gatabank/internal/handlers"
	"github.com/GregMSThompson/gatabank/internal/middleware"
	"github.com/GregMSThompson/gatabank/internal/models"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		deps.ResponseHandler.WriteError(w, req, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		deps.ResponseHandler.WriteError(w, req, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", handlers.NewHealthHandlers(deps).Health)
	handlers.NewGeographyHandlers(deps).Register(r)

	r.Mount("/banks", handlers.NewBankHandlers(deps).BankRoutes())
	r.Mount("/cards", handlers.NewCardHandlers(deps).CardRoutes())
	r.Mount("/users", handlers.NewUserHandlers(deps, models.ViewStaff).UserRoutes())
	r.Mount("/collaborators", handlers.NewUserHandlers(deps, models.ViewCollaborator).UserRoutes())
	r.Mount("/auth", handlers.NewAuthHandlers(deps).AuthRoutes())
	return r
}
