package syncing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Reconciler combina o snapshot novo com o livro de faturamento e o cache anterior.
// É o único que escreve no livro e no cache.
type Reconciler struct {
	ledger        repository.RevenueLedgerRepository
	cache         repository.SalesCacheRepository
	location      *time.Location
	retentionDays int
	seriesDays    int
}

func NewReconciler(cfg *config.Config, ledger repository.RevenueLedgerRepository, cache repository.SalesCacheRepository) *Reconciler {
	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	seriesDays := cfg.SalesSync.SeriesDays
	if seriesDays <= 0 {
		seriesDays = 14
	}

	retentionDays := cfg.SalesSync.RetentionDays
	if retentionDays <= 0 {
		retentionDays = 365
	}
	if retentionDays < seriesDays {
		retentionDays = seriesDays
	}

	return &Reconciler{
		ledger:        ledger,
		cache:         cache,
		location:      location,
		retentionDays: retentionDays,
		seriesDays:    seriesDays,
	}
}

// Reconcile executa um ciclo de reconciliação. Erros de persistência são devolvidos
// ao chamador e o cache anterior permanece intacto.
func (r *Reconciler) Reconcile(ctx context.Context, build *BuildResult) (*domain.SyncResult, error) {
	fresh := build.Snapshot.Clone()
	fresh.Normalize()

	today := utils.StartOfDay(fresh.FetchedAt.In(r.location))
	todayKey := utils.FormatDay(today)

	previous, err := r.cache.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cache anterior")
	}

	// 1. Gravar os dias novos no livro e descartar os antigos
	entries := build.DailyAmounts
	if len(entries) == 0 {
		entries = fresh.DailyRevenue
	}

	cutoff := today.AddDate(0, 0, -r.retentionDays)
	if err := r.ledger.Merge(ctx, entries, cutoff); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar o histórico de faturamento")
	}

	history, err := r.ledger.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar o histórico de faturamento")
	}

	// 2. Série diária reconstruída a partir do livro
	seriesStart := utils.FormatDay(today.AddDate(0, 0, -(r.seriesDays - 1)))
	fresh.DailyRevenue = history.Window(seriesStart, todayKey)

	// 3. Fallback do histórico para cada valor de faturamento zerado
	derived := history.Derived(today)
	fresh.RevenueToday = fallback(fresh.RevenueToday, derived.Today)
	fresh.RevenueYesterday = fallback(fresh.RevenueYesterday, derived.Yesterday)
	fresh.RevenueThisMonth = fallback(fresh.RevenueThisMonth, derived.ThisMonth)
	fresh.RevenueLastMonth = fallback(fresh.RevenueLastMonth, derived.LastMonth)

	// 4. Pedidos e clientes do cache anterior quando a API não trouxe nada
	if previous != nil {
		if fresh.OrdersToday == 0 && previous.OrdersToday > 0 {
			fresh.OrdersToday = previous.OrdersToday
			fresh.OrdersYesterday = previous.OrdersYesterday
			fresh.OrdersByGroup = previous.OrdersByGroup.Clone()
		}
		if fresh.TotalCustomers == 0 && previous.TotalCustomers > 0 {
			fresh.TotalCustomers = previous.TotalCustomers
		}
	}

	// 5. Nunca sobrescrever um cache com faturamento por um resultado zerado
	result := &domain.SyncResult{
		Outcome:  domain.SyncOutcomeUpdated,
		Message:  domain.SyncMessageUpdated,
		Snapshot: fresh,
	}

	if !fresh.HasRevenue() && previous.HasRevenue() {
		preserved := previous.Clone()
		preserved.DailyRevenue = fresh.DailyRevenue
		preserved.FetchedAt = fresh.FetchedAt
		preserved.Normalize()

		result.Outcome = domain.SyncOutcomePreserved
		result.Message = domain.SyncMessagePreserved
		result.Snapshot = preserved

		logrus.WithFields(logrus.Fields{
			"previous_revenue_today":      previous.RevenueToday.String(),
			"previous_revenue_this_month": previous.RevenueThisMonth.String(),
		}).Warn("Faturamento zerado na API, mantendo o cache anterior")
	}

	// 6. Gravar o slot do cache
	if err := r.cache.Save(ctx, result.Snapshot); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar o cache de vendas")
	}

	return result, nil
}

// fallback substitui o valor zerado pelo valor do histórico, se houver
func fallback(current, fromHistory decimal.Decimal) decimal.Decimal {
	if current.IsZero() && !fromHistory.IsZero() {
		return fromHistory
	}
	return current
}
