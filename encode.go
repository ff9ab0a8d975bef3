package stockfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txRecord is the wire shape of a transaction: the price amount and its
// currency are separate fields, and the currency is omitted when it is the
// default.
type txRecord struct {
	ID        int64           `json:"id,omitempty"`
	Symbol    string          `json:"symbol"`
	Operation Operation       `json:"operation"`
	Shares    int64           `json:"shares"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency,omitempty"`
	Date      Date            `json:"date"`
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	r := txRecord{
		ID:        t.ID,
		Symbol:    t.Symbol,
		Operation: t.Operation,
		Shares:    t.Shares,
		Price:     t.Price.Amount(),
		Date:      t.Date,
	}
	if c := t.Price.Currency(); c != USD {
		r.Currency = c
	}
	return json.Marshal(r)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var r txRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	currency := r.Currency
	if currency == "" {
		currency = USD
	}
	*t = Transaction{
		ID:        r.ID,
		Symbol:    r.Symbol,
		Operation: r.Operation,
		Shares:    r.Shares,
		Price:     M(r.Price, currency),
		Date:      r.Date,
	}
	return nil
}

// EncodeTransaction writes a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	line, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not encode transaction %v: %w", tx, err)
	}
	if _, err := w.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeTransactions writes transactions as JSONL, one per line, in the
// order given.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTransactions reads a JSONL stream of transactions. Empty lines are
// skipped; a malformed line fails the whole decode.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("could not decode transaction line %q: %w", string(line), err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}
