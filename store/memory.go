package store

import (
	"context"
	"slices"
	"sync"

	"github.com/avoronkov/stockfolio"
)

// MemoryBackend is an in-process cache backend.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string][]stockfolio.Transaction
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string][]stockfolio.Transaction)}
}

func (b *MemoryBackend) Get(ctx context.Context, portfolio string) ([]stockfolio.Transaction, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	txs, ok := b.entries[portfolio]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(txs), true, nil
}

func (b *MemoryBackend) Set(ctx context.Context, portfolio string, txs []stockfolio.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[portfolio] = slices.Clone(txs)
	return nil
}

func (b *MemoryBackend) Delete(ctx context.Context, portfolio string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, portfolio)
	return nil
}
