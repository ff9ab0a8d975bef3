package stockfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func quoted(symbol string, current float64) Quote {
	return Quote{Symbol: symbol, Current: usd(current)}
}

func TestNewPerformanceReport(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Shares: 10, AveragePrice: usd(100)},
		{Symbol: "MSFT", Shares: 20, AveragePrice: usd(50)},
	}
	quotes := map[string]Quote{
		"AAPL": quoted("AAPL", 150),
		"MSFT": quoted("MSFT", 40),
	}

	r := NewPerformanceReport(holdings, quotes)
	if len(r.Positions) != 2 {
		t.Fatalf("len(Positions) = %d, want 2", len(r.Positions))
	}

	aapl := r.Positions[0]
	if !aapl.Gain.Equal(usd(50)) {
		t.Errorf("AAPL Gain = %v, want %v", aapl.Gain, usd(50))
	}
	if !aapl.GainPercent.Equal(decimal.NewFromInt(50)) {
		t.Errorf("AAPL GainPercent = %v, want 50", aapl.GainPercent)
	}
	if !aapl.Earn.Equal(usd(500)) {
		t.Errorf("AAPL Earn = %v, want %v", aapl.Earn, usd(500))
	}

	// totals: value 150*10 + 40*20 = 2300, earn 500 - 200 = 300, invested 2000
	if !r.TotalValue.Equal(usd(2300)) {
		t.Errorf("TotalValue = %v, want %v", r.TotalValue, usd(2300))
	}
	if !r.TotalEarn.Equal(usd(300)) {
		t.Errorf("TotalEarn = %v, want %v", r.TotalEarn, usd(300))
	}
	if !r.TotalPercent.Equal(decimal.NewFromInt(15)) {
		t.Errorf("TotalPercent = %v, want 15", r.TotalPercent)
	}
}

func TestNewPerformanceReport_UnsupportedSymbol(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Shares: 10, AveragePrice: usd(100)},
		{Symbol: "WEIRD", Shares: 5, AveragePrice: usd(10)},
	}
	quotes := map[string]Quote{
		"AAPL":  quoted("AAPL", 110),
		"WEIRD": {Symbol: "WEIRD", Unsupported: true},
	}
	r := NewPerformanceReport(holdings, quotes)
	if !r.Positions[1].Unsupported {
		t.Error("WEIRD position not flagged unsupported")
	}
	// the unsupported row must not contribute to the totals
	if !r.TotalValue.Equal(usd(1100)) {
		t.Errorf("TotalValue = %v, want %v", r.TotalValue, usd(1100))
	}
}

func TestNewTargetReport(t *testing.T) {
	holdings := []Holding{{Symbol: "AAPL", Shares: 10, AveragePrice: usd(100)}}
	quotes := map[string]Quote{"AAPL": quoted("AAPL", 200)}
	targets := map[string]PriceTarget{
		"AAPL": {Symbol: "AAPL", Mean: usd(250), High: usd(300), Low: usd(180)},
	}
	r := NewTargetReport(holdings, quotes, targets)
	if len(r.Positions) != 1 {
		t.Fatalf("len(Positions) = %d, want 1", len(r.Positions))
	}
	if !r.Positions[0].Upside.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Upside = %v, want 25", r.Positions[0].Upside)
	}
}

func TestNewTargetReport_MissingTarget(t *testing.T) {
	holdings := []Holding{{Symbol: "AAPL", Shares: 10, AveragePrice: usd(100)}}
	quotes := map[string]Quote{"AAPL": quoted("AAPL", 200)}
	r := NewTargetReport(holdings, quotes, nil)
	if !r.Positions[0].Unsupported {
		t.Error("position without a target not flagged unsupported")
	}
}

func TestNewTargetReport_ZeroCurrentPrice(t *testing.T) {
	// A quote may still carry a previous close while the current price is
	// zero (halted or delisted symbol). That row must come back flagged,
	// not divide the upside by zero.
	holdings := []Holding{{Symbol: "HALT", Shares: 10, AveragePrice: usd(100)}}
	quotes := map[string]Quote{
		"HALT": {Symbol: "HALT", Current: usd(0), PreviousClose: usd(100)},
	}
	targets := map[string]PriceTarget{
		"HALT": {Symbol: "HALT", Mean: usd(250), High: usd(300), Low: usd(180)},
	}
	r := NewTargetReport(holdings, quotes, targets)
	if len(r.Positions) != 1 {
		t.Fatalf("len(Positions) = %d, want 1", len(r.Positions))
	}
	if !r.Positions[0].Unsupported {
		t.Error("position with a zero current price not flagged unsupported")
	}
}

func TestNewWeightReport(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Shares: 10, AveragePrice: usd(100)}, // value 1500
		{Symbol: "MSFT", Shares: 10, AveragePrice: usd(40)},  // value 500
	}
	quotes := map[string]Quote{
		"AAPL": quoted("AAPL", 150),
		"MSFT": quoted("MSFT", 50),
	}
	r := NewWeightReport(holdings, quotes)
	if !r.TotalValue.Equal(usd(2000)) {
		t.Errorf("TotalValue = %v, want %v", r.TotalValue, usd(2000))
	}
	if !r.Positions[0].Weight.Equal(decimal.NewFromInt(75)) {
		t.Errorf("AAPL Weight = %v, want 75", r.Positions[0].Weight)
	}
	if !r.Positions[1].Weight.Equal(decimal.NewFromInt(25)) {
		t.Errorf("MSFT Weight = %v, want 25", r.Positions[1].Weight)
	}
}

func TestNewTendencies(t *testing.T) {
	candles := []Candles{
		{Symbol: "AAPL", Closes: []float64{100, 105, 110}},
		{Symbol: "MSFT", Closes: []float64{50, 45}},
		{Symbol: "FLAT", Closes: []float64{70}}, // too short, skipped
	}
	got := NewTendencies(candles)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ChangePercent != 10 {
		t.Errorf("AAPL change = %v, want 10", got[0].ChangePercent)
	}
	if got[1].ChangePercent != -10 {
		t.Errorf("MSFT change = %v, want -10", got[1].ChangePercent)
	}
}
