package digistore

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/digistoreclient"
	digistoredomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
//go:generate mockgen -source=digistoreclient/client.go -destination=mocks/client.go -package=mocks

type DigistoreIntegrator interface {
	GetSalesSummary(ctx context.Context) (*digistoredomain.SalesSummary, error)
	GetDailyAmounts(ctx context.Context, from, to time.Time) ([]digistoredomain.DailyAmount, error)
	GetBuyerCount(ctx context.Context) (int, error)
	ListPurchases(ctx context.Context, from, to time.Time) ([]digistoredomain.Purchase, error)
	CountPurchases(ctx context.Context, from, to time.Time) (int, error)
	ListProducts(ctx context.Context) ([]digistoredomain.Product, error)
}

type DigistoreService struct {
	Client   digistoreclient.Client
	maxPages int
	pageSize int
}

func New(cfg *config.Config, client digistoreclient.Client) DigistoreIntegrator {
	pageSize := cfg.Digistore.PageSize
	if pageSize <= 0 {
		pageSize = 500
	}

	return &DigistoreService{
		Client:   client,
		maxPages: cfg.Digistore.MaxPages,
		pageSize: pageSize,
	}
}

func (s *DigistoreService) GetSalesSummary(ctx context.Context) (*digistoredomain.SalesSummary, error) {
	return s.Client.GetSalesSummary(ctx)
}

func (s *DigistoreService) GetDailyAmounts(ctx context.Context, from, to time.Time) ([]digistoredomain.DailyAmount, error) {
	resp, err := s.Client.GetDailyAmounts(ctx, utils.FormatDay(from), utils.FormatDay(to))
	if err != nil {
		return nil, err
	}

	return resp.AmountList, nil
}

func (s *DigistoreService) GetBuyerCount(ctx context.Context) (int, error) {
	resp, err := s.Client.ListBuyers(ctx)
	if err != nil {
		return 0, err
	}

	return int(resp.ItemCount), nil
}

// ListPurchases busca todas as compras do período, página a página
func (s *DigistoreService) ListPurchases(ctx context.Context, from, to time.Time) ([]digistoredomain.Purchase, error) {
	query := digistoredomain.PurchaseQuery{
		From:     utils.FormatDay(from),
		To:       utils.FormatDay(to),
		PageSize: s.pageSize,
	}

	return digistoreclient.Paginate(ctx, digistoreclient.EndpointListPurchase, s.maxPages, s.pageSize,
		func(ctx context.Context, pageNo int) ([]digistoredomain.Purchase, int, error) {
			query.PageNo = pageNo

			resp, err := s.Client.ListPurchases(ctx, query)
			if err != nil {
				return nil, 0, err
			}

			return resp.PurchaseList, int(resp.PageCount), nil
		},
	)
}

// CountPurchases lê apenas o total de compras do período (page_size=1)
func (s *DigistoreService) CountPurchases(ctx context.Context, from, to time.Time) (int, error) {
	resp, err := s.Client.ListPurchases(ctx, digistoredomain.PurchaseQuery{
		From:     utils.FormatDay(from),
		To:       utils.FormatDay(to),
		PageNo:   1,
		PageSize: 1,
	})
	if err != nil {
		return 0, err
	}

	return int(resp.ItemCount), nil
}

func (s *DigistoreService) ListProducts(ctx context.Context) ([]digistoredomain.Product, error) {
	resp, err := s.Client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	return resp.Products, nil
}
