package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/gatabank/internal/errs"
	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/internal/response"
	"github.com/GregMSThompson/gatabank/pkg/logger"
)

// phoneClaim carries the verified number of a phone sign-in.
const phoneClaim = "phone_number"

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type accountResolver interface {
	FetchByPhone(ctx context.Context, phone string) (*models.User, error)
}

type Middleware struct {
	Verifier        tokenVerifier
	Accounts        accountResolver
	ResponseHandler response.ResponseHandler
}

func NewMiddleware(verifier tokenVerifier, accounts accountResolver, rh response.ResponseHandler) *Middleware {
	return &Middleware{Verifier: verifier, Accounts: accounts, ResponseHandler: rh}
}

// context key
type contextKey string

const userKey contextKey = "user"

// FirebaseAuth verifies the bearer ID token and loads the active account
// registered under its phone number.
func (m *Middleware) FirebaseAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			m.ResponseHandler.HandleError(w, r, errs.NewAuthenticationError("unauthenticated", "missing Authorization header"))
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.ResponseHandler.HandleError(w, r, errs.NewAuthenticationError("unauthenticated", "invalid Authorization header"))
			return
		}

		token, err := m.Verifier.VerifyIDToken(r.Context(), parts[1])
		if err != nil {
			logger.FromContext(r.Context()).Warn("token verification failed", "error", err)
			m.ResponseHandler.HandleError(w, r, errs.NewAuthenticationError("unauthenticated", "invalid or expired token"))
			return
		}

		phone, _ := token.Claims[phoneClaim].(string)
		if phone == "" {
			m.ResponseHandler.HandleError(w, r, errs.NewAuthenticationError("unauthenticated", "token carries no phone number"))
			return
		}

		user, err := m.Accounts.FetchByPhone(r.Context(), phone)
		if err != nil {
			var nf *errs.NotFoundError
			if errors.As(err, &nf) {
				err = errs.NewAuthenticationError("unknown_account", "no active account for this phone number")
			}
			m.ResponseHandler.HandleError(w, r, err)
			return
		}

		_, ctx := logger.With(r.Context(), "user_id", user.ID, "role", user.Role)
		ctx = context.WithValue(ctx, userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Require lets the request through only when the authenticated account
// holds capability c.
func (m *Middleware) Require(c models.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := CurrentUser(r.Context())
			if user == nil {
				m.ResponseHandler.HandleError(w, r, errs.NewAuthenticationError("unauthenticated", "authentication required"))
				return
			}
			if !user.HasPermission(c) {
				m.ResponseHandler.HandleError(w, r, errs.NewPermissionDeniedError("missing permission "+string(c)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CurrentUser returns the authenticated account, or nil.
func CurrentUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
