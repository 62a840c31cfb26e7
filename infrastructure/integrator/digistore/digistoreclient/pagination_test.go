package digistoreclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestPaginate(t *testing.T) {
	pageFailure := domain.NewUpstreamError(domain.ErrUpstreamUnavailable, EndpointListPurchase, nil)

	tests := []struct {
		name       string
		maxPages   int
		pageCount  int
		failOnPage int
		wantItems  []int
		wantErr    bool
		wantCalls  int
	}{
		{
			name:      "Todas as páginas",
			maxPages:  10,
			pageCount: 3,
			wantItems: []int{1, 2, 3},
			wantCalls: 3,
		},
		{
			name:       "Falha na página 3 de 5 devolve as páginas 1 e 2",
			maxPages:   10,
			pageCount:  5,
			failOnPage: 3,
			wantItems:  []int{1, 2},
			wantCalls:  3,
		},
		{
			name:       "Falha na primeira página é erro",
			maxPages:   10,
			pageCount:  5,
			failOnPage: 1,
			wantErr:    true,
			wantCalls:  1,
		},
		{
			name:      "Limite de páginas trunca o resultado",
			maxPages:  2,
			pageCount: 5,
			wantItems: []int{1, 2},
			wantCalls: 2,
		},
		{
			name:      "Limite zero busca uma página",
			maxPages:  0,
			pageCount: 5,
			wantItems: []int{1},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0

			items, err := Paginate(context.Background(), EndpointListPurchase, tt.maxPages, 1,
				func(ctx context.Context, pageNo int) ([]int, int, error) {
					calls++
					if pageNo == tt.failOnPage {
						return nil, 0, pageFailure
					}
					return []int{pageNo}, tt.pageCount, nil
				},
			)

			assert.Equal(t, tt.wantCalls, calls)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
				assert.Nil(t, items)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantItems, items)
		})
	}
}

func TestPaginate_StopsOnEmptyPage(t *testing.T) {
	calls := 0

	items, err := Paginate(context.Background(), EndpointListPurchase, 10, 1,
		func(ctx context.Context, pageNo int) ([]string, int, error) {
			calls++
			if pageNo == 2 {
				return nil, 99, nil
			}
			return []string{"a"}, 99, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, items)
	assert.Equal(t, 2, calls)
}

func TestPaginate_WithoutPageCount(t *testing.T) {
	pages := map[int][]int{
		1: {1, 2},
		2: {3, 4},
		3: {5},
	}

	tests := []struct {
		name      string
		maxPages  int
		pageSize  int
		pages     map[int][]int
		wantItems []int
		wantCalls int
	}{
		{
			name:      "Para na página incompleta",
			maxPages:  10,
			pageSize:  2,
			pages:     pages,
			wantItems: []int{1, 2, 3, 4, 5},
			wantCalls: 3,
		},
		{
			name:      "Para na página vazia",
			maxPages:  10,
			pageSize:  2,
			pages:     map[int][]int{1: {1, 2}, 2: {3, 4}},
			wantItems: []int{1, 2, 3, 4},
			wantCalls: 3,
		},
		{
			name:      "Respeita o limite de páginas",
			maxPages:  2,
			pageSize:  2,
			pages:     pages,
			wantItems: []int{1, 2, 3, 4},
			wantCalls: 2,
		},
		{
			name:      "Sem tamanho de página segue até a página vazia",
			maxPages:  10,
			pageSize:  0,
			pages:     pages,
			wantItems: []int{1, 2, 3, 4, 5},
			wantCalls: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0

			items, err := Paginate(context.Background(), EndpointListPurchase, tt.maxPages, tt.pageSize,
				func(ctx context.Context, pageNo int) ([]int, int, error) {
					calls++
					return tt.pages[pageNo], 0, nil
				},
			)

			require.NoError(t, err)
			assert.Equal(t, tt.wantItems, items)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}
