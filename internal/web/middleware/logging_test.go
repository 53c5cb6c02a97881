package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestResponseWriter_CapturesStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	ww := &responseWriter{ResponseWriter: rec, status: http.StatusOK}

	ww.WriteHeader(http.StatusNotFound)
	ww.WriteHeader(http.StatusOK) // second call is ignored
	ww.Write([]byte("not found"))

	if ww.status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", ww.status)
	}
	if ww.bytes != len("not found") {
		t.Errorf("bytes = %d, want %d", ww.bytes, len("not found"))
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("recorded code = %d, want 404", rec.Code)
	}
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	ww := &responseWriter{ResponseWriter: rec, status: http.StatusOK}

	ww.Write([]byte("ok"))
	if ww.status != http.StatusOK || ww.bytes != 2 {
		t.Errorf("status/bytes = %d/%d, want 200/2", ww.status, ww.bytes)
	}
}

func TestLogger_PassesRequestsThrough(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Logger)
	r.Get("/api/products/{productID}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chi.URLParam(r, "productID")))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/P-1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "P-1" {
		t.Errorf("body = %q, want P-1", rec.Body.String())
	}
}
