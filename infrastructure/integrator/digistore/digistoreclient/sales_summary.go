package digistoreclient

import (
	"context"
	"net/http"

	digistoredomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/domain"
)

// GetSalesSummary busca o resumo de vendas por período (dia, semana, mês, ano)
func (c *DigistoreClient) GetSalesSummary(ctx context.Context) (*digistoredomain.SalesSummary, error) {
	var summary digistoredomain.SalesSummary

	if err := c.call(ctx, EndpointSalesSummary, http.MethodPost, nil, c.timeout, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}
