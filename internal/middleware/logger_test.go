package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/gatabank/pkg/logger"
)

func TestLoggerMiddlewareAttachesLogger(t *testing.T) {
	base := logger.New("debug", logger.NewTestHandler)
	mw := NewLoggerMiddleware(base)

	var attached bool
	h := mw.LoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attached = logger.FromContext(r.Context()) != base
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cities", nil))

	if !attached {
		t.Fatalf("handler did not receive a request-scoped logger")
	}
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}
}
