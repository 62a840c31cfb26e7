package digistoreclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	digistoredomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"golang.org/x/time/rate"
)

// Endpoints usados da API da Digistore24
const (
	EndpointSalesSummary = "statsSalesSummary"
	EndpointDailyAmounts = "statsDailyAmounts"
	EndpointListBuyers   = "listBuyers"
	EndpointListPurchase = "listPurchases"
	EndpointListProducts = "listProducts"
)

type Client interface {
	GetSalesSummary(ctx context.Context) (*digistoredomain.SalesSummary, error)
	GetDailyAmounts(ctx context.Context, from, to string) (*digistoredomain.DailyAmounts, error)
	ListBuyers(ctx context.Context) (*digistoredomain.BuyerList, error)
	ListPurchases(ctx context.Context, query digistoredomain.PurchaseQuery) (*digistoredomain.PurchaseList, error)
	ListProducts(ctx context.Context) (*digistoredomain.ProductList, error)
}

type DigistoreClient struct {
	httpClient   *http.Client
	limiter      *rate.Limiter
	baseURL      string
	apiKey       string
	language     string
	timeout      time.Duration
	rangeTimeout time.Duration
}

// NewClient cria o cliente da Digistore24. Retorna ErrConfiguration quando a chave
// da API não está configurada, para que o erro apareça na inicialização.
func NewClient(cfg *config.Config) (Client, error) {
	if !cfg.Digistore.HasAPIKey() {
		return nil, errors.Wrap(domain.ErrConfiguration, "DIGISTORE_API_KEY não configurada")
	}

	timeout := cfg.Digistore.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	rangeTimeout := cfg.Digistore.RangeTimeout
	if rangeTimeout <= 0 {
		rangeTimeout = 60 * time.Second
	}

	limit := rate.Inf
	if cfg.Digistore.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Digistore.RequestsPerSecond)
	}

	burst := cfg.Digistore.Burst
	if burst <= 0 {
		burst = 1
	}

	return &DigistoreClient{
		// O timeout de cada chamada é controlado pelo contexto
		httpClient:   &http.Client{},
		limiter:      rate.NewLimiter(limit, burst),
		baseURL:      strings.TrimRight(cfg.Digistore.URL, "/"),
		apiKey:       strings.TrimSpace(cfg.Digistore.APIKey),
		language:     cfg.Digistore.Language,
		timeout:      timeout,
		rangeTimeout: rangeTimeout,
	}, nil
}
