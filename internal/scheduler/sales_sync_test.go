package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSalesSyncService(t *testing.T, enabled bool) (*SalesSyncService, *mocks.MockSyncService) {
	ctrl := gomock.NewController(t)
	syncService := mocks.NewMockSyncService(ctrl)

	service := NewSalesSyncService(syncService, &config.Config{
		App: config.App{Location: time.UTC},
		SalesSync: config.SalesSync{
			CronSchedule: "*/5 * * * *",
			Enabled:      enabled,
			CycleTimeout: 45 * time.Second,
		},
	})

	return service, syncService
}

func TestSalesSyncService_syncSales(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(syncService *mocks.MockSyncService)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Ciclo concluído registra run id e outcome",
			setup: func(syncService *mocks.MockSyncService) {
				syncService.EXPECT().Sync(gomock.Any()).Return(&domain.SyncResult{
					RunID:   "abc123",
					Outcome: domain.SyncOutcomePreserved,
				}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "abc123", status["last_run_id"])
				assert.Equal(t, domain.SyncOutcomePreserved, status["last_outcome"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["sync_running"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Erro no ciclo é registrado no status",
			setup: func(syncService *mocks.MockSyncService) {
				syncService.EXPECT().Sync(gomock.Any()).Return(nil, domain.ErrPersistence)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, domain.ErrPersistence.Error(), status["last_error"])
				assert.Equal(t, domain.SyncOutcome(""), status["last_outcome"])
				assert.Equal(t, false, status["sync_running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, syncService := newTestSalesSyncService(t, true)
			tt.setup(syncService)

			service.syncSales(context.Background())

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestSalesSyncService_IgnoresOverlappingRuns(t *testing.T) {
	service, syncService := newTestSalesSyncService(t, true)

	entered := make(chan struct{})
	release := make(chan struct{})

	syncService.EXPECT().Sync(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.SyncResult, error) {
		close(entered)
		<-release
		return &domain.SyncResult{RunID: "first", Outcome: domain.SyncOutcomeUpdated}, nil
	}).Times(1)

	done := make(chan struct{})
	go func() {
		service.syncSales(context.Background())
		close(done)
	}()

	<-entered
	assert.True(t, service.IsRunning())

	// Segundo disparo enquanto o primeiro roda não chama o serviço
	service.syncSales(context.Background())
	service.TriggerManualSync()

	close(release)
	<-done

	assert.False(t, service.IsRunning())
	assert.Equal(t, "first", service.GetStatus()["last_run_id"])
}

func TestSalesSyncService_StartDisabled(t *testing.T) {
	service, _ := newTestSalesSyncService(t, false)

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestSalesSyncService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewSalesSyncService(mocks.NewMockSyncService(ctrl), &config.Config{
		App:       config.App{Location: time.UTC},
		SalesSync: config.SalesSync{CronSchedule: "a cada cinco minutos", Enabled: true},
	})

	assert.Error(t, service.Start(context.Background()))
}
