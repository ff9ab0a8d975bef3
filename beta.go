package stockfolio

import (
	"errors"
	"fmt"
)

// PortfolioSeries collapses per-symbol candle series into a single series
// of portfolio values, weighting each close by the held share count.
// Series must be aligned on the same trading days; symbols without candles,
// including empty series the provider returns for symbols it has no data
// for, are skipped, and the shortest remaining series bounds the result.
func PortfolioSeries(holdings []Holding, candles map[string]Candles) []float64 {
	length := -1
	for _, h := range holdings {
		c, ok := candles[h.Symbol]
		if !ok || len(c.Closes) == 0 {
			continue
		}
		if length < 0 || len(c.Closes) < length {
			length = len(c.Closes)
		}
	}
	if length <= 0 {
		return nil
	}
	series := make([]float64, length)
	for _, h := range holdings {
		c, ok := candles[h.Symbol]
		if !ok || len(c.Closes) == 0 {
			continue
		}
		for i := 0; i < length; i++ {
			series[i] += c.Closes[i] * float64(h.Shares)
		}
	}
	return series
}

// Beta computes the portfolio beta against an index from two aligned
// series of closing prices: the covariance of their daily returns divided
// by the variance of the index returns.
func Beta(portfolio, index []float64) (float64, error) {
	if len(portfolio) != len(index) {
		return 0, fmt.Errorf("series length mismatch: %d vs %d", len(portfolio), len(index))
	}
	if len(portfolio) < 3 {
		return 0, errors.New("need at least 3 closes to compute returns")
	}

	pr := returns(portfolio)
	ir := returns(index)

	pm, im := mean(pr), mean(ir)
	var cov, varIndex float64
	for i := range pr {
		cov += (pr[i] - pm) * (ir[i] - im)
		varIndex += (ir[i] - im) * (ir[i] - im)
	}
	if varIndex == 0 {
		return 0, errors.New("index has zero variance")
	}
	return cov / varIndex, nil
}

// returns converts a price series into daily relative returns.
func returns(closes []float64) []float64 {
	out := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, closes[i]/closes[i-1]-1)
	}
	return out
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
