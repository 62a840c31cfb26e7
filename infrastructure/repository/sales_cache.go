package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=sales_cache.go -destination=mocks/sales_cache.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	salesCacheTable = "sales_cache"
	// O cache é um slot único
	salesCacheID = 1
)

// SalesCacheRepository guarda o último snapshot aceito pelo reconciliador
type SalesCacheRepository interface {
	// Get retorna nil, nil enquanto nenhum snapshot foi gravado
	Get(ctx context.Context) (*domain.SalesSnapshot, error)
	Save(ctx context.Context, snapshot *domain.SalesSnapshot) error
}

type salesCacheRepository struct {
	conn *postgres.Connection
}

func NewSalesCacheRepository(conn *postgres.Connection) SalesCacheRepository {
	return &salesCacheRepository{
		conn: conn,
	}
}

func (r *salesCacheRepository) Get(ctx context.Context) (*domain.SalesSnapshot, error) {
	sqlQuery, args, err := buildGetSalesCacheQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var data []byte
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceError("ler cache de vendas", err)
	}

	return decodeSnapshot(data)
}

func (r *salesCacheRepository) Save(ctx context.Context, snapshot *domain.SalesSnapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	sqlQuery, args, err := buildSaveSalesCacheQuery(data, time.Now()).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return persistenceError("gravar cache de vendas", err)
	}

	return nil
}

func buildGetSalesCacheQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("data").
		From(salesCacheTable).
		Where(squirrel.Eq{"id": salesCacheID}).
		PlaceholderFormat(squirrel.Dollar)
}

func buildSaveSalesCacheQuery(data []byte, updatedAt time.Time) squirrel.InsertBuilder {
	return squirrel.
		Insert(salesCacheTable).
		Columns("id", "data", "updated_at").
		Values(salesCacheID, string(data), updatedAt).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				data = EXCLUDED.data,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func encodeSnapshot(snapshot *domain.SalesSnapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: snapshot nulo", domain.ErrPersistence)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao serializar snapshot: %w", domain.ErrPersistence, err)
	}

	return data, nil
}

func decodeSnapshot(data []byte) (*domain.SalesSnapshot, error) {
	var snapshot domain.SalesSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: erro ao ler snapshot do cache: %w", domain.ErrPersistence, err)
	}

	snapshot.Normalize()
	return &snapshot, nil
}
