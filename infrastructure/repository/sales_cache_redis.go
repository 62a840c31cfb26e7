package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Chave do slot do snapshot; sem TTL
const salesCacheRedisKey = "sales:snapshot"

type salesCacheRedisRepository struct {
	client *redis.Client
}

// NewSalesCacheRedisRepository cria o slot de cache no Redis (CACHE_BACKEND=redis)
func NewSalesCacheRedisRepository(client *redis.Client) SalesCacheRepository {
	return &salesCacheRedisRepository{
		client: client,
	}
}

func (r *salesCacheRedisRepository) Get(ctx context.Context) (*domain.SalesSnapshot, error) {
	data, err := r.client.Get(ctx, salesCacheRedisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, persistenceError("ler cache de vendas no redis", err)
	}

	return decodeSnapshot(data)
}

func (r *salesCacheRedisRepository) Save(ctx context.Context, snapshot *domain.SalesSnapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, salesCacheRedisKey, data, 0).Err(); err != nil {
		return persistenceError("gravar cache de vendas no redis", err)
	}

	return nil
}
