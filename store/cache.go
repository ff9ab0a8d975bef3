package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/avoronkov/stockfolio"
)

// Backend holds cached histories keyed by portfolio name. A Get miss
// returns (nil, false, nil). Backends may evict entries at any time.
type Backend interface {
	Get(ctx context.Context, portfolio string) ([]stockfolio.Transaction, bool, error)
	Set(ctx context.Context, portfolio string, txs []stockfolio.Transaction) error
	Delete(ctx context.Context, portfolio string) error
}

// Cache decorates a Store with a read cache. Every write to a portfolio
// drops its cache entry, so readers never see a stale history. Backend
// failures degrade to the underlying store and are only logged.
type Cache struct {
	store   Store
	backend Backend
	logger  zerolog.Logger
}

// NewCache wraps store with backend.
func NewCache(store Store, backend Backend, logger zerolog.Logger) *Cache {
	return &Cache{store: store, backend: backend, logger: logger}
}

func (c *Cache) Portfolios(ctx context.Context) ([]string, error) {
	return c.store.Portfolios(ctx)
}

func (c *Cache) CreatePortfolio(ctx context.Context, portfolio string) error {
	return c.store.CreatePortfolio(ctx, portfolio)
}

func (c *Cache) Transactions(ctx context.Context, portfolio string) ([]stockfolio.Transaction, error) {
	txs, ok, err := c.backend.Get(ctx, portfolio)
	if err != nil {
		c.logger.Warn().Err(err).Str("portfolio", portfolio).Msg("cache read failed")
	}
	if ok {
		return txs, nil
	}
	txs, err = c.store.Transactions(ctx, portfolio)
	if err != nil {
		return nil, err
	}
	if err := c.backend.Set(ctx, portfolio, txs); err != nil {
		c.logger.Warn().Err(err).Str("portfolio", portfolio).Msg("cache write failed")
	}
	return txs, nil
}

func (c *Cache) Add(ctx context.Context, portfolio string, tx stockfolio.Transaction) (stockfolio.Transaction, error) {
	stored, err := c.store.Add(ctx, portfolio, tx)
	if err != nil {
		return stockfolio.Transaction{}, err
	}
	c.invalidate(ctx, portfolio)
	return stored, nil
}

func (c *Cache) Remove(ctx context.Context, portfolio string, id int64) error {
	if err := c.store.Remove(ctx, portfolio, id); err != nil {
		return err
	}
	c.invalidate(ctx, portfolio)
	return nil
}

func (c *Cache) invalidate(ctx context.Context, portfolio string) {
	if err := c.backend.Delete(ctx, portfolio); err != nil {
		c.logger.Warn().Err(err).Str("portfolio", portfolio).Msg("cache invalidation failed")
	}
}
