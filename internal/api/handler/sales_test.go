package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	reportingmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	syncingmocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newSalesRouter(t *testing.T) (http.Handler, *reportingmocks.MockReportingService, *syncingmocks.MockSyncService) {
	ctrl := gomock.NewController(t)
	reportingService := reportingmocks.NewMockReportingService(ctrl)
	syncService := syncingmocks.NewMockSyncService(ctrl)

	rt := router.New(router.WithRoutes(Sales(reportingService, syncService)...))
	return rt, reportingService, syncService
}

func doRequest(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetSales(t *testing.T) {
	t.Run("Sem snapshot responde 204", func(t *testing.T) {
		rt, reportingService, _ := newSalesRouter(t)
		reportingService.EXPECT().GetSnapshot(gomock.Any()).Return(nil, domain.ErrNoSnapshot)

		rec := doRequest(rt, http.MethodGet, "/v1/sales")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Snapshot do cache", func(t *testing.T) {
		rt, reportingService, _ := newSalesRouter(t)

		snapshot := domain.NewSalesSnapshot(time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC))
		snapshot.OrdersToday = 4
		snapshot.TotalCustomers = 1870
		reportingService.EXPECT().GetSnapshot(gomock.Any()).Return(snapshot, nil)

		rec := doRequest(rt, http.MethodGet, "/v1/sales")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		body := decodeBody(t, rec)
		assert.Equal(t, float64(4), body["ordersToday"])
		assert.Equal(t, float64(1870), body["totalCustomers"])
		assert.Contains(t, body, "ordersByGroup")
		assert.Contains(t, body, "dailyRevenue")
	})

	t.Run("Falha no cache responde 500", func(t *testing.T) {
		rt, reportingService, _ := newSalesRouter(t)
		reportingService.EXPECT().GetSnapshot(gomock.Any()).Return(nil, domain.ErrPersistence)

		rec := doRequest(rt, http.MethodGet, "/v1/sales")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeBody(t, rec)["code"])
	})
}

func TestSyncSales(t *testing.T) {
	t.Run("Ciclo concluído", func(t *testing.T) {
		rt, _, syncService := newSalesRouter(t)

		snapshot := domain.NewSalesSnapshot(time.Now())
		snapshot.RevenueToday = decimal.RequireFromString("120")
		syncService.EXPECT().SyncAndWait(gomock.Any()).Return(&domain.SyncResult{
			RunID:    "abc123",
			Outcome:  domain.SyncOutcomeUpdated,
			Message:  domain.SyncMessageUpdated,
			Snapshot: snapshot,
		}, nil)

		rec := doRequest(rt, http.MethodPost, "/v1/sales/sync")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, domain.SyncMessageUpdated, body["message"])
		assert.Equal(t, string(domain.SyncOutcomeUpdated), body["outcome"])
		assert.NotNil(t, body["data"])
	})

	t.Run("Cache preservado", func(t *testing.T) {
		rt, _, syncService := newSalesRouter(t)

		syncService.EXPECT().SyncAndWait(gomock.Any()).Return(&domain.SyncResult{
			Outcome:  domain.SyncOutcomePreserved,
			Message:  domain.SyncMessagePreserved,
			Snapshot: domain.NewSalesSnapshot(time.Now()),
		}, nil)

		rec := doRequest(rt, http.MethodPost, "/v1/sales/sync")
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, domain.SyncMessagePreserved, body["message"])
		assert.Equal(t, string(domain.SyncOutcomePreserved), body["outcome"])
	})

	t.Run("Falha de persistência", func(t *testing.T) {
		rt, _, syncService := newSalesRouter(t)
		syncService.EXPECT().SyncAndWait(gomock.Any()).Return(nil, domain.ErrPersistence)

		rec := doRequest(rt, http.MethodPost, "/v1/sales/sync")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, apiErrors.ErrDatabaseOperation, body["code"])
	})

	t.Run("GET não é aceito", func(t *testing.T) {
		rt, _, _ := newSalesRouter(t)

		rec := doRequest(rt, http.MethodGet, "/v1/sales/sync")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestGetSalesRange(t *testing.T) {
	t.Run("Período válido", func(t *testing.T) {
		rt, reportingService, _ := newSalesRouter(t)

		reportingService.EXPECT().
			GetRange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, filters *domain.RangeFilters) (*domain.SalesRange, error) {
				assert.True(t, filters.IncludeBreakdown)
				return &domain.SalesRange{
					DateFrom:     "2026-01-01",
					DateTo:       "2026-01-31",
					TotalRevenue: decimal.RequireFromString("15230.40"),
					TotalOrders:  412,
				}, nil
			})

		rec := doRequest(rt, http.MethodGet, "/v1/sales/range?dateFrom=2026-01-01&dateTo=2026-01-31&breakdown=true")
		require.Equal(t, http.StatusOK, rec.Code)

		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.Equal(t, "2026-01-01", data["dateFrom"])
		assert.Equal(t, float64(412), data["totalOrders"])
	})

	t.Run("Período invertido responde 400", func(t *testing.T) {
		rt, _, _ := newSalesRouter(t)

		rec := doRequest(rt, http.MethodGet, "/v1/sales/range?dateFrom=2026-02-01&dateTo=2026-01-01")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeBody(t, rec)["code"])
	})

	t.Run("Timeout da API responde 502 com o endpoint", func(t *testing.T) {
		rt, reportingService, _ := newSalesRouter(t)

		reportingService.EXPECT().GetRange(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewUpstreamError(domain.ErrUpstreamTimeout, "listPurchases", context.DeadlineExceeded))

		rec := doRequest(rt, http.MethodGet, "/v1/sales/range?dateFrom=2026-01-01&dateTo=2026-01-31")
		assert.Equal(t, http.StatusBadGateway, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, apiErrors.ErrExternalService, body["code"])
		details := body["details"].(map[string]any)
		assert.Equal(t, "listPurchases", details["endpoint"])
		assert.Equal(t, domain.ErrUpstreamTimeout.Error(), details["reason"])
	})
}

func TestListProducts(t *testing.T) {
	rt, reportingService, _ := newSalesRouter(t)

	group := domain.ProductGroupPACL
	reportingService.EXPECT().ListProducts(gomock.Any()).Return([]domain.Product{
		{ID: "1", Name: "PACL | Basic", Group: &group},
		{ID: "2", Name: "Gutschein"},
	}, nil)

	rec := doRequest(rt, http.MethodGet, "/v1/sales/products")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeBody(t, rec)["data"].([]any)
	require.Len(t, products, 2)
	assert.Equal(t, "PACL", products[0].(map[string]any)["group"])
	assert.Nil(t, products[1].(map[string]any)["group"])
}
