package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// RevenueEntry representa o faturamento líquido de um dia do calendário
type RevenueEntry struct {
	Day    string          `json:"day"` // "YYYY-MM-DD"
	Amount decimal.Decimal `json:"amount"`
}

// RevenueHistory é o mapa dia -> valor do livro de faturamento
type RevenueHistory map[string]decimal.Decimal

// Entries retorna as entradas do histórico em ordem crescente
func (h RevenueHistory) Entries() []RevenueEntry {
	entries := make([]RevenueEntry, 0, len(h))
	for day, amount := range h {
		entries = append(entries, RevenueEntry{Day: day, Amount: amount})
	}
	return SortRevenueEntries(entries)
}

// Window retorna as entradas entre from e to (inclusive), em ordem crescente
func (h RevenueHistory) Window(from, to string) []RevenueEntry {
	entries := make([]RevenueEntry, 0)
	for day, amount := range h {
		if day >= from && day <= to {
			entries = append(entries, RevenueEntry{Day: day, Amount: amount})
		}
	}
	return SortRevenueEntries(entries)
}

// Sum soma as entradas entre from e to (inclusive)
func (h RevenueHistory) Sum(from, to string) decimal.Decimal {
	total := decimal.Zero
	for day, amount := range h {
		if day >= from && day <= to {
			total = total.Add(amount)
		}
	}
	return total
}

// Derived calcula os quatro valores de faturamento do dashboard a partir do histórico
func (h RevenueHistory) Derived(today time.Time) DerivedRevenue {
	thisMonthStart := utils.FirstDayOfMonth(today)
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)
	lastMonthEnd := thisMonthStart.AddDate(0, 0, -1)

	return DerivedRevenue{
		Today:     h[utils.FormatDay(today)],
		Yesterday: h[utils.FormatDay(today.AddDate(0, 0, -1))],
		ThisMonth: h.Sum(utils.FormatDay(thisMonthStart), utils.FormatDay(today)),
		LastMonth: h.Sum(utils.FormatDay(lastMonthStart), utils.FormatDay(lastMonthEnd)),
	}
}

// DerivedRevenue contém os valores de faturamento calculados a partir do histórico
type DerivedRevenue struct {
	Today     decimal.Decimal
	Yesterday decimal.Decimal
	ThisMonth decimal.Decimal
	LastMonth decimal.Decimal
}
