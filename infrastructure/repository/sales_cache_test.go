package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestBuildSaveSalesCacheQuery(t *testing.T) {
	updatedAt := time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC)

	sqlQuery, args, err := buildSaveSalesCacheQuery([]byte(`{"revenueToday":1}`), updatedAt).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, "INSERT INTO sales_cache (id,data,updated_at) VALUES ($1,$2,$3)")
	assert.Contains(t, sqlQuery, "ON CONFLICT (id) DO UPDATE SET")
	assert.Equal(t, []any{1, `{"revenueToday":1}`, updatedAt}, args)
}

func TestBuildGetSalesCacheQuery(t *testing.T) {
	sqlQuery, args, err := buildGetSalesCacheQuery().ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT data FROM sales_cache WHERE id = $1", sqlQuery)
	assert.Equal(t, []any{1}, args)
}

func TestEncodeDecodeSnapshot(t *testing.T) {
	t.Run("Snapshot gravado volta normalizado", func(t *testing.T) {
		snapshot := domain.NewSalesSnapshot(time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC))
		snapshot.RevenueToday = decimal.RequireFromString("120.5")
		snapshot.OrdersByGroup[domain.ProductGroupPACL] = 3
		snapshot.DailyRevenue = []domain.RevenueEntry{
			{Day: "2026-02-07", Amount: decimal.RequireFromString("120.5")},
			{Day: "2026-02-06", Amount: decimal.RequireFromString("80")},
		}

		data, err := encodeSnapshot(snapshot)
		require.NoError(t, err)

		decoded, err := decodeSnapshot(data)
		require.NoError(t, err)

		assert.True(t, snapshot.RevenueToday.Equal(decoded.RevenueToday))
		assert.Equal(t, 3, decoded.OrdersByGroup[domain.ProductGroupPACL])
		assert.Equal(t, "2026-02-06", decoded.DailyRevenue[0].Day)
		assert.True(t, snapshot.FetchedAt.Equal(decoded.FetchedAt))
	})

	t.Run("Cache legado sem grupos recebe todos zerados", func(t *testing.T) {
		decoded, err := decodeSnapshot([]byte(`{"revenueToday": 99.5, "ordersByGroup": {"PAC": 2}, "fetchedAt": "2026-02-07T09:00:00Z"}`))
		require.NoError(t, err)

		assert.Len(t, decoded.OrdersByGroup, len(domain.ProductGroups))
		assert.Equal(t, 2, decoded.OrdersByGroup[domain.ProductGroupPAC])
		assert.Equal(t, "99.5", decoded.RevenueToday.String())
		assert.NotNil(t, decoded.DailyRevenue)
	})

	t.Run("Conteúdo inválido é erro de persistência", func(t *testing.T) {
		_, err := decodeSnapshot([]byte(`not-json`))
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})

	t.Run("Snapshot nulo", func(t *testing.T) {
		_, err := encodeSnapshot(nil)
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})
}
