package stockfolio

import (
	"github.com/shopspring/decimal"
)

// Market data shapes consumed by the reports. Providers (the finnhub
// package) produce them; a quote that the provider does not support is a
// tagged row, not an error, so one odd ticker does not sink a report.

// Quote is the current market price of a symbol.
type Quote struct {
	Symbol        string
	Current       Money
	PreviousClose Money
	Unsupported   bool // the provider does not know this symbol
}

// PriceTarget is the analyst consensus price target for a symbol.
type PriceTarget struct {
	Symbol string
	Mean   Money
	High   Money
	Low    Money
}

// Candles is a daily closing price series for a symbol.
type Candles struct {
	Symbol string
	Closes []float64
	Times  []int64 // Unix seconds, aligned with Closes
}

// Trend is one month of analyst recommendation counts for a symbol.
type Trend struct {
	Symbol     string
	Period     string
	StrongBuy  int
	Buy        int
	Hold       int
	Sell       int
	StrongSell int
}

// Earning is one entry of the earnings calendar.
type Earning struct {
	Symbol   string
	Date     Date
	Quarter  int
	Year     int
	EPSBeat  bool
	RevBeat  bool
	Reported bool
}

// PerformancePosition is one holding enriched with market data.
type PerformancePosition struct {
	Holding
	Current     Money
	Gain        Money           // per share, current minus average
	GainPercent decimal.Decimal // gain relative to the average price
	Value       Money           // current market value of the position
	Earn        Money           // unrealized gain of the position
	Unsupported bool
}

// PerformanceReport is the "actual data" view: every holding valued at the
// current quote, with portfolio totals.
type PerformanceReport struct {
	Positions    []PerformancePosition
	TotalValue   Money
	TotalEarn    Money
	TotalPercent decimal.Decimal // earn relative to the invested cost
}

// NewPerformanceReport values holdings at the given quotes. Quotes are
// keyed by symbol; a missing or unsupported quote marks the row instead of
// failing the report.
func NewPerformanceReport(holdings []Holding, quotes map[string]Quote) PerformanceReport {
	var r PerformanceReport
	r.TotalValue = M(0, USD)
	r.TotalEarn = M(0, USD)
	for _, h := range holdings {
		q, ok := quotes[h.Symbol]
		if !ok || q.Unsupported {
			r.Positions = append(r.Positions, PerformancePosition{Holding: h, Unsupported: true})
			continue
		}
		gain := q.Current.Sub(h.AveragePrice)
		p := PerformancePosition{
			Holding:     h,
			Current:     q.Current,
			Gain:        gain,
			GainPercent: gain.PercentOf(h.AveragePrice),
			Value:       q.Current.MulShares(h.Shares),
			Earn:        gain.MulShares(h.Shares),
		}
		r.TotalValue = r.TotalValue.Add(p.Value)
		r.TotalEarn = r.TotalEarn.Add(p.Earn)
		r.Positions = append(r.Positions, p)
	}
	invested := r.TotalValue.Sub(r.TotalEarn)
	if !invested.IsZero() {
		r.TotalPercent = r.TotalEarn.PercentOf(invested)
	}
	return r
}

// TargetPosition is one holding compared against its analyst price target.
type TargetPosition struct {
	Holding
	Current     Money
	Target      Money
	High        Money
	Low         Money
	Upside      decimal.Decimal // mean target relative to the current price
	Unsupported bool
}

// TargetReport compares every holding's current price with the analyst
// consensus target.
type TargetReport struct {
	Positions []TargetPosition
}

// NewTargetReport builds a target report from quotes and price targets,
// both keyed by symbol.
func NewTargetReport(holdings []Holding, quotes map[string]Quote, targets map[string]PriceTarget) TargetReport {
	var r TargetReport
	for _, h := range holdings {
		q, qok := quotes[h.Symbol]
		t, tok := targets[h.Symbol]
		// a zero current price cannot anchor an upside percentage
		if !qok || q.Unsupported || q.Current.IsZero() || !tok || t.Mean.IsZero() {
			r.Positions = append(r.Positions, TargetPosition{Holding: h, Unsupported: true})
			continue
		}
		p := TargetPosition{
			Holding: h,
			Current: q.Current,
			Target:  t.Mean,
			High:    t.High,
			Low:     t.Low,
			Upside:  t.Mean.Sub(q.Current).PercentOf(q.Current),
		}
		r.Positions = append(r.Positions, p)
	}
	return r
}

// WeightPosition is one holding's share of the portfolio market value.
type WeightPosition struct {
	Holding
	Value       Money
	Weight      decimal.Decimal // percent of total portfolio value
	Unsupported bool
}

// WeightReport is the portfolio allocation by market value.
type WeightReport struct {
	Positions  []WeightPosition
	TotalValue Money
}

// NewWeightReport computes each holding's weight in the portfolio at the
// given quotes. Unsupported symbols carry no value and no weight.
func NewWeightReport(holdings []Holding, quotes map[string]Quote) WeightReport {
	var r WeightReport
	r.TotalValue = M(0, USD)
	for _, h := range holdings {
		q, ok := quotes[h.Symbol]
		if !ok || q.Unsupported {
			r.Positions = append(r.Positions, WeightPosition{Holding: h, Unsupported: true})
			continue
		}
		value := q.Current.MulShares(h.Shares)
		r.TotalValue = r.TotalValue.Add(value)
		r.Positions = append(r.Positions, WeightPosition{Holding: h, Value: value})
	}
	for i := range r.Positions {
		if r.Positions[i].Unsupported || r.TotalValue.IsZero() {
			continue
		}
		r.Positions[i].Weight = r.Positions[i].Value.PercentOf(r.TotalValue)
	}
	return r
}

// Tendency is the percent change of a symbol over a candle series.
type Tendency struct {
	Symbol        string
	First         float64
	Last          float64
	ChangePercent float64
}

// NewTendencies computes week-over-week (or any range covered by the
// candles) price changes from daily closing series.
func NewTendencies(candles []Candles) []Tendency {
	var out []Tendency
	for _, c := range candles {
		if len(c.Closes) < 2 {
			continue
		}
		first, last := c.Closes[0], c.Closes[len(c.Closes)-1]
		t := Tendency{Symbol: c.Symbol, First: first, Last: last}
		if first != 0 {
			t.ChangePercent = (last - first) / first * 100
		}
		out = append(out, t)
	}
	return out
}
