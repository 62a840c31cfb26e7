package digistoreclient

import (
	"context"

	"github.com/sirupsen/logrus"
)

// PageFetcher busca a página pageNo (a partir de 1) e retorna os itens e o total de páginas
type PageFetcher[T any] func(ctx context.Context, pageNo int) (items []T, pageCount int, err error)

// Paginate percorre as páginas de uma listagem até o fim ou até maxPages.
// Falha na primeira página é devolvida ao chamador; falha em uma página seguinte
// encerra a paginação e devolve o que já foi acumulado.
// Sem page_count na resposta, o fim é uma página vazia ou menor que pageSize.
func Paginate[T any](ctx context.Context, endpoint string, maxPages, pageSize int, fetch PageFetcher[T]) ([]T, error) {
	if maxPages <= 0 {
		maxPages = 1
	}

	var all []T

	for pageNo := 1; pageNo <= maxPages; pageNo++ {
		items, pageCount, err := fetch(ctx, pageNo)
		if err != nil {
			if pageNo == 1 {
				return nil, err
			}

			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"page":     pageNo,
				"items":    len(all),
				"error":    err.Error(),
			}).Warn("Falha ao buscar página, retornando resultados parciais")
			return all, nil
		}

		all = append(all, items...)

		if len(items) == 0 {
			return all, nil
		}

		if pageCount > 0 {
			if pageNo >= pageCount {
				return all, nil
			}
			continue
		}

		if pageNo == 1 {
			logrus.WithField("endpoint", endpoint).
				Debug("Resposta sem page_count, paginando até uma página incompleta")
		}
		if pageSize > 0 && len(items) < pageSize {
			return all, nil
		}
	}

	logrus.WithFields(logrus.Fields{
		"endpoint":  endpoint,
		"max_pages": maxPages,
		"items":     len(all),
	}).Warn("Limite de páginas atingido, resultado truncado")

	return all, nil
}
