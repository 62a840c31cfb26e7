package syncing

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Builder monta um snapshot novo a partir da API externa
type Builder interface {
	Build(ctx context.Context) *BuildResult
}

// SnapshotReconciler combina o snapshot novo com o histórico e o cache anterior
type SnapshotReconciler interface {
	Reconcile(ctx context.Context, build *BuildResult) (*domain.SyncResult, error)
}
