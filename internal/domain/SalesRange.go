package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRange representa faturamento e pedidos de um período arbitrário
type SalesRange struct {
	DateFrom      string          `json:"dateFrom"`
	DateTo        string          `json:"dateTo"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	OrdersByGroup OrdersByGroup   `json:"ordersByGroup,omitempty"`
	FetchedAt     time.Time       `json:"fetchedAt"`
}

// RangeFilters são os filtros da consulta por período
type RangeFilters struct {
	StartDate        time.Time
	EndDate          time.Time
	IncludeBreakdown bool
}
