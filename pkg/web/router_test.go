package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/physics-lab/pkg/web"
)

func TestRouterHandleFunc(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /pendulum", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("pendulum"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pendulum", nil))

	body, _ := io.ReadAll(w.Result().Body)
	if string(body) != "pendulum" {
		t.Errorf("body = %q, want %q", string(body), "pendulum")
	}
}

func TestRouterWithoutFallback(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /exists", func(w http.ResponseWriter, req *http.Request) {})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRouterFallback(t *testing.T) {
	r := web.NewRouter()
	r.HandleFunc("GET /exists", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("exists"))
	})
	r.SetFallback(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("fallback"))
	})

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
	}{
		{"matched", http.MethodGet, "/exists", http.StatusOK, "exists"},
		{"head matches get", http.MethodHead, "/exists", http.StatusOK, "exists"},
		{"unknown path", http.MethodGet, "/nonexistent", http.StatusTeapot, "fallback"},
		{"method mismatch", http.MethodPost, "/exists", http.StatusTeapot, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}
