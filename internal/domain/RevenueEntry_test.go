package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestRevenueHistory_WindowAndSum(t *testing.T) {
	history := RevenueHistory{
		"2026-01-30": amount("100"),
		"2026-02-01": amount("200.50"),
		"2026-02-03": amount("300"),
		"2026-02-10": amount("50"),
	}

	window := history.Window("2026-02-01", "2026-02-05")
	assert.Equal(t, []RevenueEntry{
		{Day: "2026-02-01", Amount: amount("200.50")},
		{Day: "2026-02-03", Amount: amount("300")},
	}, window)

	assert.True(t, amount("500.50").Equal(history.Sum("2026-02-01", "2026-02-05")))
	assert.True(t, history.Sum("2025-01-01", "2025-12-31").IsZero())
	assert.Empty(t, history.Window("2027-01-01", "2027-01-31"))
}

func TestRevenueHistory_Derived(t *testing.T) {
	history := RevenueHistory{
		"2026-01-15": amount("1000"),
		"2026-01-31": amount("500"),
		"2026-02-01": amount("200"),
		"2026-02-05": amount("120"),
		"2026-02-06": amount("80"),
	}

	today := time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC)
	derived := history.Derived(today)

	assert.True(t, amount("80").Equal(derived.Today))
	assert.True(t, amount("120").Equal(derived.Yesterday))
	assert.True(t, amount("400").Equal(derived.ThisMonth))
	assert.True(t, amount("1500").Equal(derived.LastMonth))
}

func TestRevenueHistory_DerivedInJanuary(t *testing.T) {
	history := RevenueHistory{
		"2025-12-01": amount("10"),
		"2025-12-31": amount("20"),
		"2026-01-01": amount("5"),
	}

	derived := history.Derived(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, amount("5").Equal(derived.Today))
	assert.True(t, amount("20").Equal(derived.Yesterday))
	assert.True(t, amount("5").Equal(derived.ThisMonth))
	assert.True(t, amount("30").Equal(derived.LastMonth))
}

func TestSortRevenueEntries(t *testing.T) {
	entries := SortRevenueEntries([]RevenueEntry{
		{Day: "2026-02-03", Amount: amount("3")},
		{Day: "2026-02-01", Amount: amount("1")},
		{Day: "2026-02-03", Amount: amount("30")},
	})

	assert.Equal(t, []RevenueEntry{
		{Day: "2026-02-01", Amount: amount("1")},
		{Day: "2026-02-03", Amount: amount("30")},
	}, entries)
}

func TestSalesSnapshot_NormalizeAndClone(t *testing.T) {
	snapshot := &SalesSnapshot{
		OrdersByGroup: OrdersByGroup{ProductGroupPAC: 2},
		DailyRevenue: []RevenueEntry{
			{Day: "2026-02-02", Amount: amount("2")},
			{Day: "2026-02-01", Amount: amount("1")},
		},
	}

	snapshot.Normalize()

	assert.Len(t, snapshot.OrdersByGroup, len(ProductGroups))
	assert.Equal(t, 2, snapshot.OrdersByGroup[ProductGroupPAC])
	assert.Equal(t, "2026-02-01", snapshot.DailyRevenue[0].Day)

	clone := snapshot.Clone()
	clone.OrdersByGroup[ProductGroupPAC] = 9
	clone.DailyRevenue[0].Amount = amount("99")

	assert.Equal(t, 2, snapshot.OrdersByGroup[ProductGroupPAC])
	assert.True(t, amount("1").Equal(snapshot.DailyRevenue[0].Amount))
}

func TestSalesSnapshot_HasRevenue(t *testing.T) {
	var nilSnapshot *SalesSnapshot
	assert.False(t, nilSnapshot.HasRevenue())

	snapshot := NewSalesSnapshot(time.Now())
	assert.False(t, snapshot.HasRevenue())

	snapshot.RevenueThisMonth = amount("3400")
	assert.True(t, snapshot.HasRevenue())

	snapshot = NewSalesSnapshot(time.Now())
	snapshot.RevenueYesterday = amount("10")
	assert.False(t, snapshot.HasRevenue())
}

func TestUpstreamError(t *testing.T) {
	cause := assert.AnError
	err := NewUpstreamError(ErrUpstreamTimeout, "statsSalesSummary", cause)

	assert.ErrorIs(t, err, ErrUpstreamTimeout)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsUpstreamError(err))
	assert.Contains(t, err.Error(), "statsSalesSummary")

	assert.False(t, IsUpstreamError(ErrPersistence))
}
