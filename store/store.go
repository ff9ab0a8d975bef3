// Package store persists portfolio transaction histories.
//
// A Store keeps one ordered transaction list per named portfolio and
// assigns every transaction a unique, monotonically increasing id on
// insertion. Implementations: FileStore (JSONL files, one per
// portfolio) and mongostore.Store (MongoDB collection). Wrap either in
// a Cache to keep read-mostly workloads off the backend.
package store

import (
	"context"
	"errors"

	"github.com/avoronkov/stockfolio"
)

var (
	// ErrNotFound reports a missing portfolio or transaction.
	ErrNotFound = errors.New("store: not found")
	// ErrExist reports an attempt to create a portfolio that already exists.
	ErrExist = errors.New("store: portfolio already exists")
)

// Store is the persistence contract for transaction histories.
type Store interface {
	// Portfolios returns the names of all known portfolios, sorted.
	Portfolios(ctx context.Context) ([]string, error)
	// CreatePortfolio registers an empty portfolio. ErrExist if taken.
	CreatePortfolio(ctx context.Context, portfolio string) error
	// Transactions returns the portfolio's full history.
	// ErrNotFound if the portfolio does not exist.
	Transactions(ctx context.Context, portfolio string) ([]stockfolio.Transaction, error)
	// Add appends a transaction, assigning its ID, and returns the
	// stored copy. The portfolio is created if absent.
	Add(ctx context.Context, portfolio string, tx stockfolio.Transaction) (stockfolio.Transaction, error)
	// Remove deletes the transaction with the given id.
	// ErrNotFound if the portfolio or the id is unknown.
	Remove(ctx context.Context, portfolio string, id int64) error
}

// nextID returns the id to assign after the given history.
func nextID(txs []stockfolio.Transaction) int64 {
	var max int64
	for _, tx := range txs {
		if tx.ID > max {
			max = tx.ID
		}
	}
	return max + 1
}
