package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redlinehq/redline/pkg/routes"
)

func handlerReturning(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

func TestRegister(t *testing.T) {
	t.Run("flat group", func(t *testing.T) {
		mux := http.NewServeMux()
		routes.Register(mux, routes.Group{
			Prefix: "/comparisons",
			Routes: []routes.Route{
				{Method: http.MethodGet, Pattern: "", Handler: handlerReturning(http.StatusOK)},
				{Method: http.MethodGet, Pattern: "/{id}", Handler: handlerReturning(http.StatusOK)},
				{Method: http.MethodDelete, Pattern: "/{id}", Handler: handlerReturning(http.StatusNoContent)},
			},
		})

		tests := []struct {
			name   string
			method string
			path   string
			want   int
		}{
			{"list", http.MethodGet, "/comparisons", http.StatusOK},
			{"find", http.MethodGet, "/comparisons/abc", http.StatusOK},
			{"delete", http.MethodDelete, "/comparisons/abc", http.StatusNoContent},
			{"wrong method", http.MethodPost, "/comparisons/abc", http.StatusMethodNotAllowed},
			{"unknown path", http.MethodGet, "/documents", http.StatusNotFound},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
				if rec.Code != tt.want {
					t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
				}
			})
		}
	})

	t.Run("nested groups join prefixes", func(t *testing.T) {
		mux := http.NewServeMux()
		routes.Register(mux, routes.Group{
			Prefix: "/comparisons",
			Children: []routes.Group{
				{
					Prefix: "/documents",
					Routes: []routes.Route{
						{Method: http.MethodGet, Pattern: "/{doc1Id}/{doc2Id}", Handler: handlerReturning(http.StatusOK)},
					},
				},
			},
		})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comparisons/documents/a/b", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("nested route = %d, want 200", rec.Code)
		}
	})

	t.Run("multiple groups", func(t *testing.T) {
		mux := http.NewServeMux()
		routes.Register(mux,
			routes.Group{
				Prefix: "/documents",
				Routes: []routes.Route{
					{Method: http.MethodGet, Pattern: "", Handler: handlerReturning(http.StatusOK)},
				},
			},
			routes.Group{
				Prefix: "/prompts",
				Routes: []routes.Route{
					{Method: http.MethodGet, Pattern: "", Handler: handlerReturning(http.StatusOK)},
				},
			},
		)

		for _, path := range []string{"/documents", "/prompts"} {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Code != http.StatusOK {
				t.Errorf("GET %s = %d, want 200", path, rec.Code)
			}
		}
	})
}
