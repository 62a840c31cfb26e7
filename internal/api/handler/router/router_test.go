package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRouter(t *testing.T) {
	var calls []string
	trace := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(
		Route{Path: "/v1/sales", Method: http.MethodGet, Handler: okHandler()},
		Route{
			Path:        "/v1/sales/sync",
			Method:      http.MethodPost,
			Handler:     okHandler(),
			Middlewares: []func(http.Handler) http.Handler{trace("primeiro"), trace("segundo")},
		},
	))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "Rota registrada", method: http.MethodGet, path: "/v1/sales", wantStatus: http.StatusOK},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v1/unknown", wantStatus: http.StatusNotFound, wantCode: apiErrors.ErrRouteNotFound},
		{name: "Método não suportado", method: http.MethodGet, path: "/v1/sales/sync", wantStatus: http.StatusMethodNotAllowed, wantCode: apiErrors.ErrMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				return
			}

			var apiErr apiErrors.APIError
			require.NoError(t, jsoniter.NewDecoder(rec.Body).Decode(&apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}

	t.Run("Middlewares da rota na ordem declarada", func(t *testing.T) {
		calls = nil
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sales/sync", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"primeiro", "segundo"}, calls)
	})

	t.Run("Lista de rotas", func(t *testing.T) {
		assert.Equal(t, []string{"GET /v1/sales", "POST /v1/sales/sync"}, rt.Routes())
	})
}
