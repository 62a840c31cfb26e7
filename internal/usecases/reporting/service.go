package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Maior período aceito na consulta por intervalo
const MaxRangeDays = 366

type ReportingService interface {
	// GetSnapshot devolve o último snapshot aceito ou domain.ErrNoSnapshot
	GetSnapshot(ctx context.Context) (*domain.SalesSnapshot, error)
	GetRange(ctx context.Context, filters *domain.RangeFilters) (*domain.SalesRange, error)
	// ListProducts lista os produtos da plataforma com o grupo em que cada nome se encaixa
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type Service struct {
	cache      repository.SalesCacheRepository
	ledger     repository.RevenueLedgerRepository
	integrator digistore.DigistoreIntegrator
	classifier *domain.ProductClassifier
	now        func() time.Time
}

func NewService(
	cache repository.SalesCacheRepository,
	ledger repository.RevenueLedgerRepository,
	integrator digistore.DigistoreIntegrator,
	classifier *domain.ProductClassifier,
) ReportingService {
	return &Service{
		cache:      cache,
		ledger:     ledger,
		integrator: integrator,
		classifier: classifier,
		now:        time.Now,
	}
}

func (s *Service) GetSnapshot(ctx context.Context) (*domain.SalesSnapshot, error) {
	snapshot, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	if snapshot == nil {
		return nil, domain.ErrNoSnapshot
	}

	return snapshot, nil
}

// GetRange soma o faturamento do livro no período e conta os pedidos na API.
// Com breakdown percorre todas as páginas e classifica cada compra; sem breakdown
// faz uma única chamada lendo apenas o total.
func (s *Service) GetRange(ctx context.Context, filters *domain.RangeFilters) (*domain.SalesRange, error) {
	if err := ValidateRange(filters); err != nil {
		return nil, err
	}

	totalRevenue, err := s.ledger.SumRange(ctx, filters.StartDate, filters.EndDate)
	if err != nil {
		return nil, err
	}

	result := &domain.SalesRange{
		DateFrom:     utils.FormatDay(filters.StartDate),
		DateTo:       utils.FormatDay(filters.EndDate),
		TotalRevenue: totalRevenue,
		FetchedAt:    s.now(),
	}

	if !filters.IncludeBreakdown {
		count, err := s.integrator.CountPurchases(ctx, filters.StartDate, filters.EndDate)
		if err != nil {
			return nil, err
		}

		result.TotalOrders = count
		return result, nil
	}

	purchases, err := s.integrator.ListPurchases(ctx, filters.StartDate, filters.EndDate)
	if err != nil {
		return nil, err
	}

	ordersByGroup := domain.NewOrdersByGroup()
	unclassified := 0
	for _, purchase := range purchases {
		group, ok := s.classifier.Classify(purchase.MainProductName, string(purchase.MainProductID))
		if !ok {
			unclassified++
			continue
		}
		ordersByGroup[group]++
	}

	if unclassified > 0 {
		logrus.WithFields(logrus.Fields{
			"date_from":    result.DateFrom,
			"date_to":      result.DateTo,
			"unclassified": unclassified,
		}).Debug("Compras sem grupo de produto no período")
	}

	result.TotalOrders = len(purchases)
	result.OrdersByGroup = ordersByGroup

	return result, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.integrator.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Product, 0, len(products))
	for _, product := range products {
		item := domain.Product{
			ID:   string(product.ID),
			Name: product.Name,
		}

		if group, ok := s.classifier.Classify(product.Name, string(product.ID)); ok {
			item.Group = &group
		}

		result = append(result, item)
	}

	return result, nil
}

// ParseRangeFilters valida os parâmetros da consulta por período ("YYYY-MM-DD")
func ParseRangeFilters(dateFrom, dateTo string, includeBreakdown bool) (*domain.RangeFilters, error) {
	if dateFrom == "" || dateTo == "" {
		return nil, fmt.Errorf("%w: dateFrom e dateTo são obrigatórios", domain.ErrInvalidRange)
	}

	startDate, err := time.Parse(utils.DateLayout, dateFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: dateFrom inválido, use o formato YYYY-MM-DD", domain.ErrInvalidRange)
	}

	endDate, err := time.Parse(utils.DateLayout, dateTo)
	if err != nil {
		return nil, fmt.Errorf("%w: dateTo inválido, use o formato YYYY-MM-DD", domain.ErrInvalidRange)
	}

	filters := &domain.RangeFilters{
		StartDate:        startDate,
		EndDate:          endDate,
		IncludeBreakdown: includeBreakdown,
	}

	if err := ValidateRange(filters); err != nil {
		return nil, err
	}

	return filters, nil
}

func ValidateRange(filters *domain.RangeFilters) error {
	if filters == nil || filters.StartDate.IsZero() || filters.EndDate.IsZero() {
		return fmt.Errorf("%w: é necessário informar as datas de início e fim", domain.ErrInvalidRange)
	}

	if filters.StartDate.After(filters.EndDate) {
		return fmt.Errorf("%w: a data de início não pode ser posterior à data de fim", domain.ErrInvalidRange)
	}

	if utils.DaysBetween(filters.StartDate, filters.EndDate) > MaxRangeDays {
		return fmt.Errorf("%w: o período máximo é de %d dias", domain.ErrInvalidRange, MaxRangeDays)
	}

	return nil
}
