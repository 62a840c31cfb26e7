package digistoreclient

import (
	"context"
	"net/http"

	digistoredomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/domain"
)

func (c *DigistoreClient) ListProducts(ctx context.Context) (*digistoredomain.ProductList, error) {
	var products digistoredomain.ProductList

	if err := c.call(ctx, EndpointListProducts, http.MethodGet, nil, c.timeout, &products); err != nil {
		return nil, err
	}

	return &products, nil
}
