package stockfolio

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrInvalidOperation reports a transaction whose operation is neither
// Purchase nor Sale. It indicates a bug in upstream validation and aborts
// the whole aggregation.
var ErrInvalidOperation = errors.New("invalid operation")

// ErrOversold reports a Sale that exceeds the position held at that point
// in time, including a sale of a symbol that was never bought. Recorded
// transactions that oversell are a data-integrity error; the aggregation
// fails rather than producing a negative or invented position.
var ErrOversold = errors.New("sale exceeds held position")

// Holding is the current net position in a symbol: the share count still
// held and the weighted average cost of those shares. Holdings are derived,
// never stored; every report recomputes them from the transaction list.
type Holding struct {
	Symbol       string
	Shares       int64
	AveragePrice Money
}

// Cost is the total cost basis of the holding (average price times shares).
func (h Holding) Cost() Money { return h.AveragePrice.MulShares(h.Shares) }

// Aggregate folds a transaction list into the list of current holdings.
//
// Transactions are processed per symbol in chronological order, ties broken
// by the store-assigned ID; the input slice is left untouched. A Purchase
// re-weights the average price; a Sale only reduces the share count. A
// position sold down to exactly zero disappears, and with it its cost
// history: a later Purchase of the same symbol starts a fresh average.
//
// The result is ordered by symbol ascending. Aggregate is pure and safe to
// call concurrently on independent inputs.
func Aggregate(txs []Transaction) ([]Holding, error) {
	sorted := slices.Clone(txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})

	positions := make(map[string]*Holding)
	for _, tx := range sorted {
		h, held := positions[tx.Symbol]
		switch tx.Operation {
		case Purchase:
			if !held {
				positions[tx.Symbol] = &Holding{Symbol: tx.Symbol, Shares: tx.Shares, AveragePrice: tx.Price}
				continue
			}
			total := h.Shares + tx.Shares
			h.AveragePrice = h.Cost().Add(tx.Total()).DivShares(total)
			h.Shares = total
		case Sale:
			if !held {
				return nil, fmt.Errorf("%s on %s: sale of %d shares with no open position: %w",
					tx.Symbol, tx.Date, tx.Shares, ErrOversold)
			}
			if tx.Shares > h.Shares {
				return nil, fmt.Errorf("%s on %s: sale of %d shares but only %d held: %w",
					tx.Symbol, tx.Date, tx.Shares, h.Shares, ErrOversold)
			}
			h.Shares -= tx.Shares
			if h.Shares == 0 {
				delete(positions, tx.Symbol)
			}
		default:
			return nil, fmt.Errorf("%s on %s: operation %q: %w",
				tx.Symbol, tx.Date, tx.Operation, ErrInvalidOperation)
		}
	}

	symbols := make([]string, 0, len(positions))
	for symbol := range positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	holdings := make([]Holding, 0, len(positions))
	for _, symbol := range symbols {
		holdings = append(holdings, *positions[symbol])
	}
	return holdings, nil
}
