package main

import (
	"context"
	"os"
	"path"
	"runtime"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/redis"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/digistoreclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)

	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dependencies := map[string]handler.Pinger{
		"postgres": pgConn,
	}

	ledgerRepo := repository.NewRevenueLedgerRepository(pgConn)

	var cacheRepo repository.SalesCacheRepository
	switch cfg.App.Cache {
	case config.CacheBackendRedis:
		redisClient := redisconn(ctx, cfg.Redis)
		defer redisClient.Close()

		cacheRepo = repository.NewSalesCacheRedisRepository(redisClient)
		dependencies["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	default:
		cacheRepo = repository.NewSalesCacheRepository(pgConn)
	}

	groupsByProductID, err := domain.ParseProductGroupIDs(cfg.Digistore.ProductGroupIDs)
	if err != nil {
		logrus.WithError(err).Fatal("DIGISTORE_PRODUCT_GROUP_IDS inválido")
	}
	classifier := domain.NewProductClassifier(groupsByProductID)

	// Sem chave da API o serviço não sobe
	digistoreClient, err := digistoreclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o cliente da Digistore24")
	}
	digistoreIntegrator := digistore.New(cfg, digistoreClient)

	builder := syncing.NewSnapshotBuilder(cfg, digistoreIntegrator, classifier)
	reconciler := syncing.NewReconciler(cfg, ledgerRepo, cacheRepo)
	syncService := syncing.NewService(cfg, builder, reconciler, cacheRepo)

	reportingService := reporting.NewService(cacheRepo, ledgerRepo, digistoreIntegrator, classifier)

	// Inicializa o agendador de sincronização de vendas
	salesSyncService := scheduler.NewSalesSyncService(syncService, cfg)

	if err := salesSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de vendas")
	} else {
		logrus.Info("Agendador de sincronização de vendas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		syncService,
		salesSyncService,
		dependencies,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o diretório de trabalho para encontrar o .env
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	log.Setup("info")
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisconn cria a conexão com o Redis usado como cache de vendas
func redisconn(ctx context.Context, redisConfig config.Redis) *goredis.Client {
	client, err := redis.NewClient(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.WithField("addr", redisConfig.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return client
}
