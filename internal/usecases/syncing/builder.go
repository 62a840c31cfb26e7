package syncing

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore"
	digistoredomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/digistore/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// BuildResult é o snapshot montado a partir da API, junto com o faturamento diário
// de toda a janela consultada (gravado no livro pelo reconciliador)
type BuildResult struct {
	Snapshot     *domain.SalesSnapshot
	DailyAmounts []domain.RevenueEntry
}

// SnapshotBuilder consulta a API em paralelo e monta um SalesSnapshot.
// Falhas de uma fonte são registradas e a fonte contribui com zero.
type SnapshotBuilder struct {
	integrator digistore.DigistoreIntegrator
	classifier *domain.ProductClassifier
	location   *time.Location
	seriesDays int
	now        func() time.Time
}

func NewSnapshotBuilder(cfg *config.Config, integrator digistore.DigistoreIntegrator, classifier *domain.ProductClassifier) *SnapshotBuilder {
	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	seriesDays := cfg.SalesSync.SeriesDays
	if seriesDays <= 0 {
		seriesDays = 14
	}

	return &SnapshotBuilder{
		integrator: integrator,
		classifier: classifier,
		location:   location,
		seriesDays: seriesDays,
		now:        time.Now,
	}
}

func (b *SnapshotBuilder) Build(ctx context.Context) *BuildResult {
	now := b.now().In(b.location)
	today := utils.StartOfDay(now)
	yesterday := today.AddDate(0, 0, -1)
	previousMonthStart := utils.FirstDayOfMonth(today).AddDate(0, -1, 0)

	// Variáveis para armazenar os resultados
	var (
		summary      *digistoredomain.SalesSummary
		dailyAmounts []digistoredomain.DailyAmount
		buyerCount   int
		purchases    []digistoredomain.Purchase
		summaryErr   error
		dailyErr     error
		buyerErr     error
		purchasesErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		summary, summaryErr = b.integrator.GetSalesSummary(ctx)
	}()

	go func() {
		defer wg.Done()
		dailyAmounts, dailyErr = b.integrator.GetDailyAmounts(ctx, previousMonthStart, today)
	}()

	go func() {
		defer wg.Done()
		buyerCount, buyerErr = b.integrator.GetBuyerCount(ctx)
	}()

	go func() {
		defer wg.Done()
		purchases, purchasesErr = b.integrator.ListPurchases(ctx, yesterday, today)
	}()

	wg.Wait()

	logSourceError("resumo de vendas", summaryErr)
	logSourceError("faturamento diário", dailyErr)
	logSourceError("compradores", buyerErr)
	logSourceError("compras", purchasesErr)

	snapshot := domain.NewSalesSnapshot(now)
	daily := dailyAmountsByDay(dailyAmounts)

	todayKey := utils.FormatDay(today)
	yesterdayKey := utils.FormatDay(yesterday)
	monthStartKey := utils.FormatDay(utils.FirstDayOfMonth(today))

	// Faturamento de hoje e do mês: o resumo tem prioridade, a lista diária é o fallback
	if amount, ok := summary.NetAmount(digistoredomain.PeriodDay, digistoredomain.CurrencyEUR); ok && !amount.IsZero() {
		snapshot.RevenueToday = amount
	} else {
		snapshot.RevenueToday = daily[todayKey]
	}

	if amount, ok := summary.NetAmount(digistoredomain.PeriodMonth, digistoredomain.CurrencyEUR); ok && !amount.IsZero() {
		snapshot.RevenueThisMonth = amount
	} else {
		snapshot.RevenueThisMonth = daily.Sum(monthStartKey, todayKey)
	}

	snapshot.RevenueYesterday = daily[yesterdayKey]
	snapshot.RevenueLastMonth = estimateLastMonth(summary, snapshot.RevenueThisMonth, today)
	snapshot.TotalCustomers = buyerCount

	for _, purchase := range purchases {
		switch purchase.CreatedDay() {
		case todayKey:
			snapshot.OrdersToday++

			group, ok := b.classifier.Classify(purchase.MainProductName, string(purchase.MainProductID))
			if ok {
				snapshot.OrdersByGroup[group]++
			}
		case yesterdayKey:
			snapshot.OrdersYesterday++
		}
	}

	seriesStart := utils.FormatDay(today.AddDate(0, 0, -(b.seriesDays - 1)))
	snapshot.DailyRevenue = daily.Window(seriesStart, todayKey)

	return &BuildResult{
		Snapshot:     snapshot,
		DailyAmounts: daily.Entries(),
	}
}

// estimateLastMonth estima o faturamento do mês anterior como a média mensal do ano:
// (ano até hoje - mês atual) / meses completos. Em janeiro não há estimativa e o
// valor fica zero, para o reconciliador usar o histórico.
func estimateLastMonth(summary *digistoredomain.SalesSummary, thisMonth decimal.Decimal, today time.Time) decimal.Decimal {
	monthsElapsed := int(today.Month()) - 1
	if monthsElapsed <= 0 {
		return decimal.Zero
	}

	yearToDate, ok := summary.NetAmount(digistoredomain.PeriodYear, digistoredomain.CurrencyEUR)
	if !ok {
		return decimal.Zero
	}

	estimate := yearToDate.Sub(thisMonth).Div(decimal.NewFromInt(int64(monthsElapsed))).Round(2)
	if estimate.IsNegative() {
		return decimal.Zero
	}

	return estimate
}

// dailyAmountsByDay indexa a lista diária por dia, ignorando outras moedas
func dailyAmountsByDay(amounts []digistoredomain.DailyAmount) domain.RevenueHistory {
	daily := domain.RevenueHistory{}
	for _, amount := range amounts {
		if amount.Day == "" {
			continue
		}
		if amount.Currency != "" && amount.Currency != digistoredomain.CurrencyEUR {
			continue
		}
		daily[amount.Day] = amount.VendorNettoAmount.Decimal
	}
	return daily
}

func logSourceError(source string, err error) {
	if err == nil {
		return
	}

	logrus.WithFields(logrus.Fields{
		"source": source,
		"error":  err.Error(),
	}).Warn("Falha ao consultar a Digistore24, usando valor zero")
}
