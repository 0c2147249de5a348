package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redlinehq/redline/pkg/module"
)

func echoPathRouter() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(r.URL.Path))
	})
}

func TestNewValidatesPrefix(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		wantPanic bool
	}{
		{"valid single level", "/api", false},
		{"empty", "", true},
		{"missing leading slash", "api", true},
		{"multi level", "/api/v1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tt.wantPanic && r == nil {
					t.Errorf("New(%q) did not panic", tt.prefix)
				}
				if !tt.wantPanic && r != nil {
					t.Errorf("New(%q) panicked: %v", tt.prefix, r)
				}
			}()
			module.New(tt.prefix, echoPathRouter())
		})
	}
}

func TestModuleServeStripsPrefix(t *testing.T) {
	m := module.New("/api", echoPathRouter())

	tests := []struct {
		name     string
		path     string
		wantPath string
	}{
		{"nested path", "/api/comparisons/abc", "/comparisons/abc"},
		{"prefix only", "/api", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			m.Serve(rec, req)

			if got := rec.Body.String(); got != tt.wantPath {
				t.Errorf("inner path = %q, want %q", got, tt.wantPath)
			}
			// The original request must not be mutated.
			if req.URL.Path != tt.path {
				t.Errorf("original request path mutated to %q", req.URL.Path)
			}
		})
	}
}

func TestModuleUse(t *testing.T) {
	m := module.New("/api", echoPathRouter())
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "applied")
			next.ServeHTTP(w, r)
		})
	})

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest(http.MethodGet, "/api/anything", nil))

	if rec.Header().Get("X-Test") != "applied" {
		t.Error("module middleware not applied")
	}
}

func TestRouterDispatch(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPathRouter()))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	t.Run("module prefix", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/comparisons", nil))
		if rec.Body.String() != "/comparisons" {
			t.Errorf("body = %q, want /comparisons", rec.Body.String())
		}
	})

	t.Run("native fallback", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if rec.Body.String() != "ok" {
			t.Errorf("body = %q, want ok", rec.Body.String())
		}
	})

	t.Run("unmatched path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/comparisons/", nil))
		if rec.Body.String() != "/comparisons" {
			t.Errorf("body = %q, want /comparisons", rec.Body.String())
		}
	})
}
