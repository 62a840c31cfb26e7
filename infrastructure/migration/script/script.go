package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Quantidade de dias gravados por transação
const batchSize = 50

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS revenue_history (
		day        DATE PRIMARY KEY,
		amount     NUMERIC(14, 2) NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sales_cache (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func main() {
	dataDir := flag.String("data", "data", "diretório com revenue-history.json e sales-cache.json")
	schemaOnly := flag.Bool("schema-only", false, "apenas cria as tabelas")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	logrus.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := createSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar as tabelas")
	}

	if *schemaOnly {
		logrus.Info("Tabelas criadas, importação ignorada")
		return
	}

	cutoff := time.Now().In(cfg.App.Location).AddDate(0, 0, -cfg.SalesSync.RetentionDays)

	ledger := repository.NewRevenueLedgerRepository(conn)
	if err := importRevenueHistory(ctx, ledger, filepath.Join(*dataDir, "revenue-history.json"), cutoff); err != nil {
		logrus.WithError(err).Error("ERRO ao importar o histórico de faturamento")
	}

	// O script grava sempre no Postgres, mesmo com CACHE_BACKEND=redis
	cache := repository.NewSalesCacheRepository(conn)
	if err := importSalesCache(ctx, cache, filepath.Join(*dataDir, "sales-cache.json")); err != nil {
		logrus.WithError(err).Error("ERRO ao importar o cache de vendas")
	}

	logrus.Info("Migração concluída")
}

func createSchema(ctx context.Context, conn postgres.Conn) error {
	for _, statement := range schemaStatements {
		if _, err := conn.ExecContext(ctx, statement); err != nil {
			return err
		}
	}

	logrus.Info("Tabelas revenue_history e sales_cache verificadas")
	return nil
}

// importRevenueHistory importa o arquivo {"YYYY-MM-DD": valor} em lotes
func importRevenueHistory(ctx context.Context, ledger repository.RevenueLedgerRepository, path string, cutoff time.Time) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logrus.WithField("file", path).Info("Arquivo de histórico não encontrado, pulando")
		return nil
	}
	if err != nil {
		return err
	}

	var history map[string]decimal.Decimal
	if err := json.Unmarshal(raw, &history); err != nil {
		return err
	}

	entries := domain.RevenueHistory(history).Entries()
	if len(entries) == 0 {
		logrus.Info("Histórico vazio, nada a importar")
		return nil
	}

	startTime := time.Now()
	successCount := 0
	errorCount := 0

	for i := 0; i < len(entries); i += batchSize {
		end := min(i+batchSize, len(entries))

		if err := ledger.Merge(ctx, entries[i:end], cutoff); err != nil {
			logrus.WithError(err).WithField("batch_start", i).Error("ERRO ao gravar lote do histórico")
			errorCount += end - i
			continue
		}
		successCount += end - i
	}

	logrus.WithFields(logrus.Fields{
		"elapsed": time.Since(startTime).String(),
		"success": successCount,
		"errors":  errorCount,
	}).Info("Importação do histórico concluída")

	return nil
}

func importSalesCache(ctx context.Context, cache repository.SalesCacheRepository, path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logrus.WithField("file", path).Info("Arquivo de cache não encontrado, pulando")
		return nil
	}
	if err != nil {
		return err
	}

	var snapshot domain.SalesSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return err
	}
	snapshot.Normalize()

	if err := cache.Save(ctx, &snapshot); err != nil {
		return err
	}

	logrus.WithField("fetched_at", snapshot.FetchedAt.Format(time.RFC3339)).Info("Cache de vendas importado")
	return nil
}
