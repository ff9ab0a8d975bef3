package stockfolio

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestAggregate_WeightedAverage(t *testing.T) {
	holdings, err := Aggregate([]Transaction{
		buy(1, "AAPL", 100, 10, d(1)),
		buy(2, "AAPL", 200, 10, d(2)),
	})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(holdings) != 1 {
		t.Fatalf("len(holdings) = %d, want 1", len(holdings))
	}
	h := holdings[0]
	if h.Symbol != "AAPL" || h.Shares != 20 {
		t.Errorf("holding = %+v, want AAPL with 20 shares", h)
	}
	if !h.AveragePrice.Equal(usd(150)) {
		t.Errorf("AveragePrice = %v, want %v", h.AveragePrice, usd(150))
	}
}

func TestAggregate_FullLiquidation(t *testing.T) {
	holdings, err := Aggregate([]Transaction{
		buy(1, "AAPL", 100, 10, d(1)),
		sell(2, "AAPL", 150, 10, d(2)),
	})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(holdings) != 0 {
		t.Errorf("holdings = %v, want empty after full liquidation", holdings)
	}
}

func TestAggregate_SaleKeepsAveragePrice(t *testing.T) {
	holdings, err := Aggregate([]Transaction{
		buy(1, "AAPL", 100, 10, d(1)),
		sell(2, "AAPL", 150, 5, d(2)),
	})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(holdings) != 1 {
		t.Fatalf("len(holdings) = %d, want 1", len(holdings))
	}
	h := holdings[0]
	if h.Shares != 5 {
		t.Errorf("Shares = %d, want 5", h.Shares)
	}
	if !h.AveragePrice.Equal(usd(100)) {
		t.Errorf("AveragePrice = %v, want unchanged %v", h.AveragePrice, usd(100))
	}
}

func TestAggregate_TwoSymbolsInterleaved(t *testing.T) {
	holdings, err := Aggregate([]Transaction{
		buy(1, "AAPL", 100, 10, d(1)),
		buy(2, "MSFT", 50, 20, d(1)),
		buy(3, "AAPL", 120, 10, d(2)),
	})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	want := []Holding{
		{Symbol: "AAPL", Shares: 20, AveragePrice: usd(110)},
		{Symbol: "MSFT", Shares: 20, AveragePrice: usd(50)},
	}
	if len(holdings) != len(want) {
		t.Fatalf("len(holdings) = %d, want %d", len(holdings), len(want))
	}
	for i := range want {
		if holdings[i].Symbol != want[i].Symbol || holdings[i].Shares != want[i].Shares {
			t.Errorf("holdings[%d] = %+v, want %+v", i, holdings[i], want[i])
		}
		if !holdings[i].AveragePrice.Equal(want[i].AveragePrice) {
			t.Errorf("holdings[%d].AveragePrice = %v, want %v", i, holdings[i].AveragePrice, want[i].AveragePrice)
		}
	}
}

func TestAggregate_LiquidationDiscardsCostHistory(t *testing.T) {
	// After selling everything, a fresh purchase starts a new average from
	// its own price, not blended with pre-liquidation history.
	holdings, err := Aggregate([]Transaction{
		buy(1, "AAPL", 100, 10, d(1)),
		sell(2, "AAPL", 150, 10, d(2)),
		buy(3, "AAPL", 300, 4, d(3)),
	})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(holdings) != 1 {
		t.Fatalf("len(holdings) = %d, want 1", len(holdings))
	}
	if !holdings[0].AveragePrice.Equal(usd(300)) {
		t.Errorf("AveragePrice = %v, want fresh %v", holdings[0].AveragePrice, usd(300))
	}
	if holdings[0].Shares != 4 {
		t.Errorf("Shares = %d, want 4", holdings[0].Shares)
	}
}

func TestAggregate_PurchasesOnly_WeightedMean(t *testing.T) {
	// avg = (10*10 + 20*30 + 14*8) / 48
	holdings, err := Aggregate([]Transaction{
		buy(1, "VTI", 10, 10, d(1)),
		buy(2, "VTI", 20, 30, d(2)),
		buy(3, "VTI", 14, 8, d(3)),
	})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if n := holdings[0].Shares; n != 48 {
		t.Errorf("Shares = %d, want 48", n)
	}
	want := usd(10*10 + 20*30 + 14*8).DivShares(48)
	if !holdings[0].AveragePrice.Equal(want) {
		t.Errorf("AveragePrice = %v, want %v", holdings[0].AveragePrice, want)
	}
}

func TestAggregate_SaleWithoutPosition(t *testing.T) {
	_, err := Aggregate([]Transaction{
		sell(1, "AAPL", 100, 5, d(1)),
	})
	if !errors.Is(err, ErrOversold) {
		t.Errorf("Aggregate() error = %v, want ErrOversold", err)
	}
}

func TestAggregate_Oversell(t *testing.T) {
	_, err := Aggregate([]Transaction{
		buy(1, "AAPL", 100, 5, d(1)),
		sell(2, "AAPL", 100, 6, d(2)),
	})
	if !errors.Is(err, ErrOversold) {
		t.Errorf("Aggregate() error = %v, want ErrOversold", err)
	}
}

func TestAggregate_InvalidOperation(t *testing.T) {
	_, err := Aggregate([]Transaction{
		{ID: 1, Symbol: "AAPL", Operation: "Hold", Shares: 1, Price: usd(1), Date: d(1)},
	})
	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Aggregate() error = %v, want ErrInvalidOperation", err)
	}
}

func TestAggregate_OutOfOrderInput(t *testing.T) {
	// The fold must order per symbol chronologically whatever the input
	// order, otherwise a sale could net against shares bought later.
	holdings, err := Aggregate([]Transaction{
		sell(3, "AAPL", 150, 5, d(2)),
		buy(1, "AAPL", 100, 10, d(1)),
	})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if holdings[0].Shares != 5 {
		t.Errorf("Shares = %d, want 5", holdings[0].Shares)
	}
}

func TestAggregate_SameDayTieBrokenByID(t *testing.T) {
	// Purchase and full sale on the same day: the store-assigned id decides.
	holdings, err := Aggregate([]Transaction{
		sell(2, "AAPL", 110, 10, d(1)),
		buy(1, "AAPL", 100, 10, d(1)),
	})
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(holdings) != 0 {
		t.Errorf("holdings = %v, want empty", holdings)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	txs := []Transaction{
		buy(1, "AAPL", 100, 10, d(1)),
		buy(2, "MSFT", 50, 20, d(1)),
		sell(3, "AAPL", 120, 3, d(2)),
		buy(4, "GOOG", 2800, 2, d(3)),
	}
	first, err := Aggregate(txs)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	second, err := Aggregate(txs)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-aggregation differs:\n%v\n%v", first, second)
	}
}

func TestAggregate_InputNotMutated(t *testing.T) {
	txs := []Transaction{
		sell(2, "AAPL", 150, 5, d(2)),
		buy(1, "AAPL", 100, 10, d(1)),
	}
	if _, err := Aggregate(txs); err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if txs[0].Operation != Sale || txs[1].Operation != Purchase {
		t.Errorf("input slice was reordered: %v", txs)
	}
}

func TestAggregate_SymbolIndependence(t *testing.T) {
	base := []Transaction{
		buy(1, "AAPL", 100, 10, d(1)),
		sell(2, "AAPL", 120, 4, d(2)),
	}
	noise := []Transaction{
		buy(3, "MSFT", 50, 20, d(1)),
		sell(4, "MSFT", 60, 20, d(2)),
		buy(5, "TSLA", 200, 1, d(3)),
	}

	alone, err := Aggregate(base)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	// Shuffle the other symbols' transactions between the AAPL ones.
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		mixed := append(append([]Transaction{}, base...), noise...)
		rng.Shuffle(len(mixed), func(i, j int) { mixed[i], mixed[j] = mixed[j], mixed[i] })

		got, err := Aggregate(mixed)
		if err != nil {
			t.Fatalf("Aggregate() error = %v", err)
		}
		var aapl *Holding
		for i := range got {
			if got[i].Symbol == "AAPL" {
				aapl = &got[i]
			}
		}
		if aapl == nil {
			t.Fatalf("AAPL missing from %v", got)
		}
		if aapl.Shares != alone[0].Shares || !aapl.AveragePrice.Equal(alone[0].AveragePrice) {
			t.Errorf("AAPL = %+v, want %+v regardless of other symbols", *aapl, alone[0])
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	holdings, err := Aggregate(nil)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(holdings) != 0 {
		t.Errorf("holdings = %v, want empty", holdings)
	}
}

func TestHolding_Cost(t *testing.T) {
	h := Holding{Symbol: "AAPL", Shares: 3, AveragePrice: usd(110.5)}
	if !h.Cost().Equal(usd(331.5)) {
		t.Errorf("Cost() = %v, want %v", h.Cost(), usd(331.5))
	}
}
