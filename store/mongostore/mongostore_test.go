package mongostore

import (
	"reflect"
	"testing"

	"github.com/avoronkov/stockfolio"
)

func TestTxDocRoundTrip(t *testing.T) {
	tx := stockfolio.Transaction{
		ID:        7,
		Symbol:    "AAPL",
		Operation: stockfolio.Purchase,
		Shares:    3,
		Price:     stockfolio.M(100.5, stockfolio.USD),
		Date:      stockfolio.MustParseDate("2025-03-01"),
	}

	doc := newTxDoc("main", tx)
	if doc.Portfolio != "main" {
		t.Errorf("Portfolio = %q", doc.Portfolio)
	}
	if doc.Price != "100.5" || doc.Currency != "USD" {
		t.Errorf("Price = %q %q", doc.Price, doc.Currency)
	}

	got, err := doc.transaction()
	if err != nil {
		t.Fatalf("transaction() error = %v", err)
	}
	if !reflect.DeepEqual(got, tx) {
		t.Errorf("round trip = %+v, want %+v", got, tx)
	}
}

func TestTxDocInvalid(t *testing.T) {
	if _, err := (txDoc{Price: "not-a-number", Date: "2025-03-01"}).transaction(); err == nil {
		t.Error("bad price accepted")
	}
	if _, err := (txDoc{Price: "1", Date: "yesterday"}).transaction(); err == nil {
		t.Error("bad date accepted")
	}
}
