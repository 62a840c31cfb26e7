package digistoreclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	digistoredomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{
		Digistore: config.Digistore{
			URL:          server.URL,
			APIKey:       "test-key",
			Language:     "de",
			Timeout:      100 * time.Millisecond,
			RangeTimeout: 100 * time.Millisecond,
		},
	})
	require.NoError(t, err)

	return client
}

func TestNewClient_WithoutAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
	}{
		{name: "Chave vazia", apiKey: ""},
		{name: "Somente espaços", apiKey: "   "},
		{name: "Valor de exemplo do .env", apiKey: config.PlaceholderAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(&config.Config{
				Digistore: config.Digistore{APIKey: tt.apiKey},
			})
			assert.Nil(t, client)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestClient_GetSalesSummary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/"+EndpointSalesSummary, r.URL.Path)
		assert.Equal(t, "de", r.URL.Query().Get("language"))
		assert.Equal(t, "test-key", r.Header.Get("X-DS-API-KEY"))

		_, _ = w.Write([]byte(`{
			"api_version": "1.2",
			"result": "success",
			"data": {"for": {"day": {"amounts": {"EUR": {"vendor_netto_amount": "120.00"}}}}}
		}`))
	})

	summary, err := client.GetSalesSummary(context.Background())
	require.NoError(t, err)

	amount, ok := summary.NetAmount(digistoredomain.PeriodDay, digistoredomain.CurrencyEUR)
	assert.True(t, ok)
	assert.Equal(t, "120", amount.String())
}

func TestClient_ListPurchasesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)

		query := r.URL.Query()
		assert.Equal(t, "2026-02-05", query.Get("from"))
		assert.Equal(t, "2026-02-06", query.Get("to"))
		assert.Equal(t, "2", query.Get("page_no"))
		assert.Equal(t, "500", query.Get("page_size"))

		_, _ = w.Write([]byte(`{
			"result": "success",
			"data": {
				"page_no": "2", "page_count": 3, "item_count": "1001",
				"purchase_list": [{"id": "P1", "created_at": "2026-02-06 10:00:00", "main_product_id": 55, "main_product_name": "PACL | Basic"}]
			}
		}`))
	})

	list, err := client.ListPurchases(context.Background(), digistoredomain.PurchaseQuery{
		From:     "2026-02-05",
		To:       "2026-02-06",
		PageNo:   2,
		PageSize: 500,
	})
	require.NoError(t, err)

	assert.Equal(t, digistoredomain.Count(3), list.PageCount)
	assert.Equal(t, digistoredomain.Count(1001), list.ItemCount)
	require.Len(t, list.PurchaseList, 1)
	assert.Equal(t, digistoredomain.ID("55"), list.PurchaseList[0].MainProductID)
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantKind error
	}{
		{
			name: "Erro sinalizado no envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result": "error", "message": "Invalid API key"}`))
			},
			wantKind: domain.ErrUpstreamRejected,
		},
		{
			name: "Envelope sem data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"result": "success"}`))
			},
			wantKind: domain.ErrUpstreamRejected,
		},
		{
			name: "Corpo que não é JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>Wartung</html>`))
			},
			wantKind: domain.ErrUpstreamRejected,
		},
		{
			name: "Status HTTP 503",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantKind: domain.ErrUpstreamUnavailable,
		},
		{
			name: "Resposta acima do timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
			wantKind: domain.ErrUpstreamTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			_, err := client.GetSalesSummary(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)

			var upstreamErr *domain.UpstreamError
			require.ErrorAs(t, err, &upstreamErr)
			assert.Equal(t, EndpointSalesSummary, upstreamErr.Endpoint)
		})
	}
}

func TestClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(&config.Config{
		Digistore: config.Digistore{URL: url, APIKey: "test-key", Timeout: time.Second},
	})
	require.NoError(t, err)

	_, err = client.ListBuyers(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
