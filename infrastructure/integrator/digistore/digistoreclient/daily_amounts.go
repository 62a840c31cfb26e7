package digistoreclient

import (
	"context"
	"net/http"
	"net/url"

	digistoredomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/domain"
)

// GetDailyAmounts busca o faturamento líquido por dia entre from e to ("YYYY-MM-DD")
func (c *DigistoreClient) GetDailyAmounts(ctx context.Context, from, to string) (*digistoredomain.DailyAmounts, error) {
	var amounts digistoredomain.DailyAmounts

	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)

	if err := c.call(ctx, EndpointDailyAmounts, http.MethodPost, params, c.rangeTimeout, &amounts); err != nil {
		return nil, err
	}

	return &amounts, nil
}
