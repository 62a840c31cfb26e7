// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=revenue_ledger.go -destination=mocks/revenue_ledger.go -package=mocks

const revenueHistoryTable = "revenue_history"

// RevenueLedgerRepository é o livro de faturamento diário (dia -> valor)
type RevenueLedgerRepository interface {
	Load(ctx context.Context) (domain.RevenueHistory, error)
	// Merge grava as entradas (upsert por dia) e apaga os dias anteriores a cutoff,
	// na mesma transação
	Merge(ctx context.Context, entries []domain.RevenueEntry, cutoff time.Time) error
	SumRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

type revenueLedgerRepository struct {
	conn *postgres.Connection
}

func NewRevenueLedgerRepository(conn *postgres.Connection) RevenueLedgerRepository {
	return &revenueLedgerRepository{
		conn: conn,
	}
}

func (r *revenueLedgerRepository) Load(ctx context.Context) (domain.RevenueHistory, error) {
	sqlQuery, args, err := buildLoadLedgerQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, persistenceError("carregar histórico de faturamento", err)
	}
	defer rows.Close()

	history := domain.RevenueHistory{}
	for rows.Next() {
		var (
			day    time.Time
			amount decimal.Decimal
		)

		if err := rows.Scan(&day, &amount); err != nil {
			return nil, persistenceError("escanear histórico de faturamento", err)
		}

		history[utils.FormatDay(day)] = amount
	}

	if err := rows.Err(); err != nil {
		return nil, persistenceError("iterar histórico de faturamento", err)
	}

	return history, nil
}

func (r *revenueLedgerRepository) Merge(ctx context.Context, entries []domain.RevenueEntry, cutoff time.Time) error {
	// Dias repetidos no mesmo INSERT quebram o ON CONFLICT; vale a última entrada
	entries = domain.SortRevenueEntries(entries)

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if len(entries) > 0 {
			if err := execBuilder(ctx, tx, buildMergeLedgerQuery(entries, time.Now())); err != nil {
				return persistenceError("gravar histórico de faturamento", err)
			}
		}

		if err := execBuilder(ctx, tx, buildTrimLedgerQuery(cutoff)); err != nil {
			return persistenceError("remover histórico antigo", err)
		}

		return nil
	})

	// Falhas de BeginTx/Commit chegam sem ErrPersistence
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		return persistenceError("transação do histórico", err)
	}

	return err
}

func (r *revenueLedgerRepository) SumRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	sqlQuery, args, err := buildSumLedgerQuery(from, to).ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		return decimal.Zero, persistenceError("somar histórico de faturamento", err)
	}

	return total, nil
}

func buildLoadLedgerQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("day", "amount").
		From(revenueHistoryTable).
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func buildMergeLedgerQuery(entries []domain.RevenueEntry, updatedAt time.Time) squirrel.InsertBuilder {
	query := squirrel.
		Insert(revenueHistoryTable).
		Columns("day", "amount", "updated_at")

	for _, entry := range entries {
		query = query.Values(entry.Day, entry.Amount.Round(2), updatedAt)
	}

	return query.
		Suffix(`
			ON CONFLICT (day) DO UPDATE SET
				amount = EXCLUDED.amount,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func buildTrimLedgerQuery(cutoff time.Time) squirrel.DeleteBuilder {
	return squirrel.
		Delete(revenueHistoryTable).
		Where(squirrel.Lt{"day": utils.FormatDay(cutoff)}).
		PlaceholderFormat(squirrel.Dollar)
}

func buildSumLedgerQuery(from, to time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(revenueHistoryTable).
		Where(squirrel.And{
			squirrel.GtOrEq{"day": utils.FormatDay(from)},
			squirrel.LtOrEq{"day": utils.FormatDay(to)},
		}).
		PlaceholderFormat(squirrel.Dollar)
}

func execBuilder(ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer) error {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = q.ExecContext(ctx, sqlQuery, args...)
	return err
}
