package digistoreclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	digistoredomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/domain"
)

// ListPurchases busca uma página de compras no período informado
func (c *DigistoreClient) ListPurchases(ctx context.Context, query digistoredomain.PurchaseQuery) (*digistoredomain.PurchaseList, error) {
	var purchases digistoredomain.PurchaseList

	params := url.Values{}
	if query.From != "" {
		params.Set("from", query.From)
	}
	if query.To != "" {
		params.Set("to", query.To)
	}
	if query.PageNo > 0 {
		params.Set("page_no", strconv.Itoa(query.PageNo))
	}
	if query.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(query.PageSize))
	}

	if err := c.call(ctx, EndpointListPurchase, http.MethodGet, params, c.rangeTimeout, &purchases); err != nil {
		return nil, err
	}

	return &purchases, nil
}
