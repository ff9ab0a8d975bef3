package stockfolio

import (
	"math"
	"testing"
)

func TestBeta_AgainstItself(t *testing.T) {
	series := []float64{100, 102, 101, 105, 104, 108}
	got, err := Beta(series, series)
	if err != nil {
		t.Fatalf("Beta() error = %v", err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("Beta(x, x) = %v, want 1", got)
	}
}

func TestBeta_Leverage(t *testing.T) {
	// A portfolio whose returns are exactly twice the index returns has beta 2.
	index := []float64{100, 110, 99, 108.9}
	portfolio := make([]float64, len(index))
	portfolio[0] = 100
	for i := 1; i < len(index); i++ {
		r := index[i]/index[i-1] - 1
		portfolio[i] = portfolio[i-1] * (1 + 2*r)
	}
	got, err := Beta(portfolio, index)
	if err != nil {
		t.Fatalf("Beta() error = %v", err)
	}
	if math.Abs(got-2) > 1e-9 {
		t.Errorf("Beta = %v, want 2", got)
	}
}

func TestBeta_Errors(t *testing.T) {
	if _, err := Beta([]float64{1, 2}, []float64{1, 2, 3}); err == nil {
		t.Error("length mismatch accepted")
	}
	if _, err := Beta([]float64{1, 2}, []float64{1, 2}); err == nil {
		t.Error("too-short series accepted")
	}
	if _, err := Beta([]float64{1, 2, 3, 4}, []float64{5, 5, 5, 5}); err == nil {
		t.Error("flat index accepted")
	}
}

func TestPortfolioSeries(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Shares: 2, AveragePrice: usd(1)},
		{Symbol: "MSFT", Shares: 3, AveragePrice: usd(1)},
		{Symbol: "NOCANDLES", Shares: 5, AveragePrice: usd(1)},
	}
	candles := map[string]Candles{
		"AAPL": {Symbol: "AAPL", Closes: []float64{10, 11, 12}},
		"MSFT": {Symbol: "MSFT", Closes: []float64{20, 21}}, // shorter, bounds the result
	}
	got := PortfolioSeries(holdings, candles)
	want := []float64{2*10 + 3*20, 2*11 + 3*21}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("series[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPortfolioSeries_NoCandles(t *testing.T) {
	if got := PortfolioSeries([]Holding{{Symbol: "AAPL", Shares: 1}}, nil); got != nil {
		t.Errorf("series = %v, want nil", got)
	}
}

func TestPortfolioSeries_EmptySeries(t *testing.T) {
	// The provider answers an empty series for symbols it has no candle
	// data for. One such holding must be skipped like an absent entry,
	// not shrink the whole portfolio series to nothing.
	holdings := []Holding{
		{Symbol: "AAPL", Shares: 2, AveragePrice: usd(1)},
		{Symbol: "NODATA", Shares: 5, AveragePrice: usd(1)},
	}
	candles := map[string]Candles{
		"AAPL":   {Symbol: "AAPL", Closes: []float64{10, 11, 12}},
		"NODATA": {Symbol: "NODATA"},
	}
	got := PortfolioSeries(holdings, candles)
	want := []float64{20, 22, 24}
	if len(got) != len(want) {
		t.Fatalf("series = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("series[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
