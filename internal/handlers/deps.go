package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/internal/response"
)

// Authenticator guards write routes. A nil Authenticator leaves every route open.
type Authenticator interface {
	FirebaseAuth(next http.Handler) http.Handler
	Require(c models.Capability) func(http.Handler) http.Handler
}

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	GeographySvc    GeographyService
	BankSvc         BankService
	CardSvc         CardService
	UserSvc         UserService
	Auth            Authenticator
	Ping            func(ctx context.Context) error
}

// guard returns the middleware chain that enforces capability c.
func (d *Deps) guard(c models.Capability) []func(http.Handler) http.Handler {
	if d.Auth == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{d.Auth.FirebaseAuth, d.Auth.Require(c)}
}
