package stockfolio

import (
	"fmt"
	"regexp"
	"strings"
)

// USD is the default transaction currency when none is recorded.
const USD = "USD"

// Operation is the kind of a recorded transaction.
type Operation string

const (
	// Purchase records shares being bought into the portfolio.
	Purchase Operation = "Purchase"
	// Sale records shares being sold out of the portfolio.
	Sale Operation = "Sale"
)

// ParseOperation parses a user-supplied operation string. It accepts the
// short forms "P" and "S" and is case-insensitive.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", "purchase":
		return Purchase, nil
	case "s", "sale", "sell":
		return Sale, nil
	default:
		return "", fmt.Errorf("unknown operation: %q", s)
	}
}

// Transaction is an immutable record of a single buy or sell event. It is
// created once from user input, assigned a stable ID by the store, and
// never mutated; the only way to undo one is to remove it by ID.
type Transaction struct {
	ID        int64     `json:"id,omitempty" bson:"id"`
	Symbol    string    `json:"symbol" bson:"symbol"`
	Operation Operation `json:"operation" bson:"operation"`
	Shares    int64     `json:"shares" bson:"shares"`
	Price     Money     `json:"-" bson:"-"`
	Date      Date      `json:"date" bson:"date"`
}

// Total is the cash amount of the transaction (price times share count).
func (t Transaction) Total() Money { return t.Price.MulShares(t.Shares) }

func (t Transaction) String() string {
	return fmt.Sprintf("#%d %s %s %d @ %s on %s", t.ID, t.Operation, t.Symbol, t.Shares, t.Price, t.Date)
}

var (
	symbolRegex = regexp.MustCompile(`^[A-Z0-9.]+$`)
	priceRegex  = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	sharesRegex = regexp.MustCompile(`^[0-9]+$`)
)

// CheckTransaction validates raw user input for a new transaction and
// returns the parsed record (without an ID, the store assigns one).
// This is the boundary validation: Aggregate assumes it already happened.
func CheckTransaction(symbol, price, shares, operation, date string) (Transaction, error) {
	if !symbolRegex.MatchString(symbol) {
		return Transaction{}, fmt.Errorf("invalid symbol %q: want uppercase letters, digits or dots", symbol)
	}
	if !priceRegex.MatchString(price) {
		return Transaction{}, fmt.Errorf("invalid price %q: want a positive decimal", price)
	}
	p, err := ParsePrice(price)
	if err != nil {
		return Transaction{}, err
	}
	if !p.IsPositive() {
		return Transaction{}, fmt.Errorf("invalid price %q: must be positive", price)
	}
	if !sharesRegex.MatchString(shares) {
		return Transaction{}, fmt.Errorf("invalid share count %q: want a positive integer", shares)
	}
	var n int64
	if _, err := fmt.Sscanf(shares, "%d", &n); err != nil || n <= 0 {
		return Transaction{}, fmt.Errorf("invalid share count %q: must be positive", shares)
	}
	op, err := ParseOperation(operation)
	if err != nil {
		return Transaction{}, err
	}
	on, err := ParseDate(date)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		Symbol:    symbol,
		Operation: op,
		Shares:    n,
		Price:     p,
		Date:      on,
	}, nil
}

// Symbols returns the unique symbols appearing in the transaction list, in
// order of first appearance.
func Symbols(txs []Transaction) []string {
	seen := make(map[string]struct{}, len(txs))
	var symbols []string
	for _, tx := range txs {
		if _, ok := seen[tx.Symbol]; ok {
			continue
		}
		seen[tx.Symbol] = struct{}{}
		symbols = append(symbols, tx.Symbol)
	}
	return symbols
}
