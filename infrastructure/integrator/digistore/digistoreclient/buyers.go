package digistoreclient

import (
	"context"
	"net/http"
	"net/url"

	digistoredomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/domain"
)

// ListBuyers busca a primeira página de compradores; só o item_count é usado
func (c *DigistoreClient) ListBuyers(ctx context.Context) (*digistoredomain.BuyerList, error) {
	var buyers digistoredomain.BuyerList

	params := url.Values{}
	params.Set("page_size", "1")

	if err := c.call(ctx, EndpointListBuyers, http.MethodGet, params, c.timeout, &buyers); err != nil {
		return nil, err
	}

	return &buyers, nil
}
