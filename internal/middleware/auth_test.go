package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/gatabank/internal/errs"
	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/internal/response"
	"github.com/GregMSThompson/gatabank/pkg/logger"
)

type stubVerifier struct {
	token *auth.Token
	err   error
	seen  string
}

func (v *stubVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	v.seen = idToken
	return v.token, v.err
}

type stubAccounts struct {
	users map[string]*models.User
	phone string
}

func (a *stubAccounts) FetchByPhone(_ context.Context, phone string) (*models.User, error) {
	a.phone = phone
	if u, ok := a.users[phone]; ok {
		return u, nil
	}
	return nil, errs.NewNotFoundError("user not found")
}

func activeUser(id string, role models.Role) *models.User {
	u := &models.User{PhoneNumber: "+97699112233", Role: role}
	u.ID = id
	u.Status = models.StatusActive
	return u
}

func newAuthMiddleware(v tokenVerifier, a accountResolver) *Middleware {
	return NewMiddleware(v, a, response.New(logger.New("", logger.NewTestHandler)))
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Code
}

func TestFirebaseAuthRejects(t *testing.T) {
	phoneToken := &auth.Token{UID: "uid", Claims: map[string]any{phoneClaim: "+97699112233"}}
	cases := []struct {
		name     string
		header   string
		verifier *stubVerifier
		code     string
	}{
		{"missing header", "", &stubVerifier{}, "unauthenticated"},
		{"not bearer", "Basic abc", &stubVerifier{}, "unauthenticated"},
		{"bad token", "Bearer abc", &stubVerifier{err: errors.New("expired")}, "unauthenticated"},
		{"no phone claim", "Bearer abc", &stubVerifier{token: &auth.Token{UID: "uid", Claims: map[string]any{}}}, "unauthenticated"},
		{"unknown account", "Bearer abc", &stubVerifier{token: phoneToken}, "unknown_account"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newAuthMiddleware(tc.verifier, &stubAccounts{})
			called := false
			h := m.FirebaseAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

			req := httptest.NewRequest(http.MethodPost, "/banks", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if called {
				t.Fatalf("next handler should not run")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if got := errorCode(t, rec); got != tc.code {
				t.Fatalf("code = %q, want %q", got, tc.code)
			}
		})
	}
}

func TestFirebaseAuthLoadsAccount(t *testing.T) {
	staff := activeUser("u1", models.RoleStaff)
	verifier := &stubVerifier{token: &auth.Token{UID: "uid", Claims: map[string]any{phoneClaim: "+97699112233"}}}
	accounts := &stubAccounts{users: map[string]*models.User{"+97699112233": staff}}
	m := newAuthMiddleware(verifier, accounts)

	var got *models.User
	h := m.FirebaseAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CurrentUser(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer token-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if verifier.seen != "token-123" {
		t.Fatalf("verifier saw %q", verifier.seen)
	}
	if got != staff {
		t.Fatalf("CurrentUser = %+v, want staff account", got)
	}
}

func TestRequireCapability(t *testing.T) {
	cases := []struct {
		name   string
		user   *models.User
		status int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"collaborator", activeUser("c", models.RoleCollaborator), http.StatusForbidden},
		{"staff", activeUser("s", models.RoleStaff), http.StatusOK},
		{"retired staff", func() *models.User {
			u := activeUser("r", models.RoleStaff)
			u.Status = models.StatusInactive
			return u
		}(), http.StatusForbidden},
	}
	m := newAuthMiddleware(&stubVerifier{}, &stubAccounts{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := m.Require(models.CapCatalogWrite)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(http.MethodPost, "/cards", nil)
			if tc.user != nil {
				req = req.WithContext(context.WithValue(req.Context(), userKey, tc.user))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
		})
	}
}
