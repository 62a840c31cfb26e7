package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/syncing"
)

// SalesSyncConfig representa a configuração do agendador de sincronização de vendas
type SalesSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	RunOnStart   bool
	CycleTimeout time.Duration
}

// SalesSyncService gerencia o agendamento e execução da sincronização de vendas
type SalesSyncService struct {
	scheduler           *gocron.Scheduler
	config              SalesSyncConfig
	syncService         syncing.SyncService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastOutcome         domain.SyncOutcome
	lastError           string
}

// NewSalesSyncService cria uma nova instância do serviço de sincronização de vendas
func NewSalesSyncService(syncService syncing.SyncService, appConfig *config.Config) *SalesSyncService {
	syncConfig := SalesSyncConfig{
		CronSchedule: appConfig.SalesSync.CronSchedule,
		SyncEnabled:  appConfig.SalesSync.Enabled,
		RunOnStart:   appConfig.SalesSync.RunOnStart,
		CycleTimeout: appConfig.SalesSync.CycleTimeout,
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.Local
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(location)
	scheduler.SingletonModeAll()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"run_on_start":  syncConfig.RunOnStart,
		"cycle_timeout": syncConfig.CycleTimeout.String(),
		"timezone":      location.String(),
	}).Info("Configuração do agendador de vendas carregada")

	return &SalesSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		syncService: syncService,
	}
}

// Start inicia o agendador
func (s *SalesSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de vendas")

	// Agendar a sincronização de vendas
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSales(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de vendas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	if s.config.RunOnStart {
		go s.syncSales(ctx)
	}

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSales executa um ciclo de sincronização; disparos sobrepostos são ignorados
func (s *SalesSyncService) syncSales(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vendas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result, err := s.syncService.Sync(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		s.lastOutcome = ""
		logrus.WithError(err).Error("Erro na sincronização agendada de vendas")
		return
	}

	s.lastError = ""
	s.lastRunID = result.RunID
	s.lastOutcome = result.Outcome
}

// TriggerManualSync dispara uma sincronização fora do agendamento
func (s *SalesSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de vendas")
	go s.syncSales(context.Background())
}

// IsRunning informa se há um ciclo em andamento
func (s *SalesSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SalesSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"cycle_timeout":          s.config.CycleTimeout.String(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_outcome":           s.lastOutcome,
		"last_error":             s.lastError,
	}
}
