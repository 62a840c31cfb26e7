package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSnapshot representa um conjunto completo e consistente de números do dashboard
type SalesSnapshot struct {
	RevenueToday     decimal.Decimal `json:"revenueToday"`
	RevenueYesterday decimal.Decimal `json:"revenueYesterday"`
	OrdersToday      int             `json:"ordersToday"`
	OrdersYesterday  int             `json:"ordersYesterday"`
	OrdersByGroup    OrdersByGroup   `json:"ordersByGroup"`
	RevenueThisMonth decimal.Decimal `json:"revenueThisMonth"`
	RevenueLastMonth decimal.Decimal `json:"revenueLastMonth"`
	TotalCustomers   int             `json:"totalCustomers"`
	DailyRevenue     []RevenueEntry  `json:"dailyRevenue"` // Últimos 14 dias, ordem crescente
	FetchedAt        time.Time       `json:"fetchedAt"`
}

// NewSalesSnapshot cria um snapshot zerado com todos os grupos de produto presentes
func NewSalesSnapshot(fetchedAt time.Time) *SalesSnapshot {
	return &SalesSnapshot{
		OrdersByGroup: NewOrdersByGroup(),
		DailyRevenue:  []RevenueEntry{},
		FetchedAt:     fetchedAt,
	}
}

// Clone retorna uma cópia profunda do snapshot
func (s *SalesSnapshot) Clone() *SalesSnapshot {
	if s == nil {
		return nil
	}

	clone := *s
	clone.OrdersByGroup = s.OrdersByGroup.Clone()
	clone.DailyRevenue = append([]RevenueEntry{}, s.DailyRevenue...)
	return &clone
}

// Normalize garante os invariantes do snapshot: todos os grupos presentes e a série
// diária ordenada, com no máximo uma entrada por dia
func (s *SalesSnapshot) Normalize() {
	if s.OrdersByGroup == nil {
		s.OrdersByGroup = NewOrdersByGroup()
	}
	for _, group := range ProductGroups {
		if _, ok := s.OrdersByGroup[group]; !ok {
			s.OrdersByGroup[group] = 0
		}
	}
	s.DailyRevenue = SortRevenueEntries(s.DailyRevenue)
}

// HasRevenue informa se o snapshot traz faturamento de hoje ou do mês
func (s *SalesSnapshot) HasRevenue() bool {
	return s != nil && (!s.RevenueToday.IsZero() || !s.RevenueThisMonth.IsZero())
}

// SortRevenueEntries ordena as entradas por dia; em dias repetidos vale a última
func SortRevenueEntries(entries []RevenueEntry) []RevenueEntry {
	byDay := make(map[string]decimal.Decimal, len(entries))
	for _, entry := range entries {
		byDay[entry.Day] = entry.Amount
	}

	result := make([]RevenueEntry, 0, len(byDay))
	for day, amount := range byDay {
		result = append(result, RevenueEntry{Day: day, Amount: amount})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Day < result[j].Day
	})

	return result
}
