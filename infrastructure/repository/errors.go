package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// persistenceError envolve erros de banco em domain.ErrPersistence
func persistenceError(action string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%w: %s: erro no banco de dados: %w (código: %s)", domain.ErrPersistence, action, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, action, err)
}
