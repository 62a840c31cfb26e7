package syncing

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const syncKey = "sales-sync"

type SyncService interface {
	// Sync executa (ou se junta a) um ciclo e espera o resultado
	Sync(ctx context.Context) (*domain.SyncResult, error)
	// SyncAndWait espera o ciclo até o timeout de espera; depois disso devolve o cache
	// atual com outcome pending e o ciclo termina em segundo plano
	SyncAndWait(ctx context.Context) (*domain.SyncResult, error)
}

// Service é dono do livro de faturamento e do cache: um ciclo por vez, e disparos
// simultâneos (agendador e requisições) compartilham o mesmo ciclo
type Service struct {
	builder      Builder
	reconciler   SnapshotReconciler
	cache        repository.SalesCacheRepository
	group        singleflight.Group
	cycleMutex   sync.Mutex
	cycleTimeout   time.Duration
	persistTimeout time.Duration
	waitTimeout    time.Duration
}

func NewService(cfg *config.Config, builder Builder, reconciler SnapshotReconciler, cache repository.SalesCacheRepository) *Service {
	cycleTimeout := cfg.SalesSync.CycleTimeout
	if cycleTimeout <= 0 {
		cycleTimeout = 45 * time.Second
	}

	persistTimeout := cfg.SalesSync.PersistTimeout
	if persistTimeout <= 0 {
		persistTimeout = 15 * time.Second
	}

	waitTimeout := cfg.SalesSync.WaitTimeout
	if waitTimeout <= 0 {
		waitTimeout = 15 * time.Second
	}

	return &Service{
		builder:      builder,
		reconciler:   reconciler,
		cache:        cache,
		cycleTimeout:   cycleTimeout,
		persistTimeout: persistTimeout,
		waitTimeout:    waitTimeout,
	}
}

func (s *Service) Sync(ctx context.Context) (*domain.SyncResult, error) {
	select {
	case res := <-s.group.DoChan(syncKey, s.runCycle):
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.SyncResult), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Service) SyncAndWait(ctx context.Context) (*domain.SyncResult, error) {
	timer := time.NewTimer(s.waitTimeout)
	defer timer.Stop()

	select {
	case res := <-s.group.DoChan(syncKey, s.runCycle):
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.SyncResult), nil
	case <-timer.C:
		snapshot, err := s.cache.Get(ctx)
		if err != nil {
			return nil, err
		}

		logrus.WithField("wait_timeout", s.waitTimeout.String()).
			Info("Sincronização ainda em andamento, devolvendo o cache atual")

		return &domain.SyncResult{
			Outcome:  domain.SyncOutcomePending,
			Message:  domain.SyncMessagePending,
			Snapshot: snapshot,
		}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// runCycle executa um ciclo completo. O contexto é desacoplado do chamador para que
// o ciclo termine mesmo se a requisição que o disparou for cancelada.
// O prazo do ciclo vale só para a consulta à API: a gravação no livro e no cache
// recebe um prazo próprio e acontece mesmo quando a consulta estourou o prazo.
func (s *Service) runCycle() (any, error) {
	s.cycleMutex.Lock()
	defer s.cycleMutex.Unlock()

	runID := utils.NewRunID()
	logger := logrus.WithField("run_id", runID)
	startedAt := time.Now()

	logger.Info("Iniciando sincronização de vendas")

	buildCtx, cancelBuild := context.WithTimeout(context.Background(), s.cycleTimeout)
	build := s.builder.Build(buildCtx)
	if buildCtx.Err() != nil {
		logger.WithField("cycle_timeout", s.cycleTimeout.String()).
			Warn("Consulta à API excedeu o prazo do ciclo, gravando os dados parciais")
	}
	cancelBuild()

	persistCtx, cancelPersist := context.WithTimeout(context.Background(), s.persistTimeout)
	defer cancelPersist()

	result, err := s.reconciler.Reconcile(persistCtx, build)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"duration": time.Since(startedAt).String(),
			"error":    err.Error(),
		}).Error("Erro na sincronização de vendas")
		return nil, errors.Wrapf(err, "sincronização %s", runID)
	}

	result.RunID = runID
	result.Duration = time.Since(startedAt)

	logger.WithFields(logrus.Fields{
		"outcome":            result.Outcome,
		"duration":           result.Duration.String(),
		"revenue_today":      result.Snapshot.RevenueToday.String(),
		"revenue_this_month": result.Snapshot.RevenueThisMonth.String(),
		"orders_today":       result.Snapshot.OrdersToday,
	}).Info("Sincronização de vendas concluída")

	return result, nil
}
