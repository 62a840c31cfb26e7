package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetSales retorna o último snapshot aceito; 204 enquanto nenhuma sincronização terminou
func GetSales(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.GetSnapshot(r.Context())
		if err != nil {
			if errors.Is(err, domain.ErrNoSnapshot) {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			writeServiceError(w, r, err, "Erro ao buscar dados de vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

// SyncSales executa (ou aguarda) um ciclo de sincronização
func SyncSales(service syncing.SyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("sales-sync: sincronização solicitada")

		result, err := service.SyncAndWait(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao sincronizar dados de vendas")
			return
		}

		logger.WithFields(log.Fields{
			"run_id":  result.RunID,
			"outcome": result.Outcome,
		}).Info("sales-sync: sincronização finalizada")

		writeJSON(w, r, http.StatusOK, Response{
			Success: true,
			Data:    result.Snapshot,
			Message: result.Message,
			Outcome: string(result.Outcome),
		})
	})
}

// GetSalesRange retorna faturamento e pedidos de um período (dateFrom/dateTo, breakdown=true opcional)
func GetSalesRange(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		filters, err := reporting.ParseRangeFilters(
			query.Get("dateFrom"),
			query.Get("dateTo"),
			query.Get("breakdown") == "true",
		)
		if err != nil {
			writeServiceError(w, r, err, "Período inválido")
			return
		}

		logger.WithFields(log.Fields{
			"date_from": query.Get("dateFrom"),
			"date_to":   query.Get("dateTo"),
			"breakdown": filters.IncludeBreakdown,
		}).Info("sales-range: buscando vendas do período")

		result, err := service.GetRange(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar vendas do período")
			return
		}

		writeJSON(w, r, http.StatusOK, Response{
			Success: true,
			Data:    result,
		})
	})
}

// ListProducts lista os produtos e o grupo em que cada nome é classificado
func ListProducts(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, r, http.StatusOK, Response{
			Success: true,
			Data:    products,
		})
	})
}
