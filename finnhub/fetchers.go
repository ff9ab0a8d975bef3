package finnhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/avoronkov/stockfolio"
)

// This file contains functions to access the Finnhub API endpoints.

// unsupportedBody is the literal body Finnhub answers for an unknown
// symbol. It starts with a zero-width non-joiner, kept verbatim here.
const unsupportedBody = "‌Symbol not supported"

// Quote fetches the current price and previous close for a symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (stockfolio.Quote, error) {
	// https://finnhub.io/api/v1/quote?symbol=AAPL&token=...
	// {"c":261.74,"h":263.31,"l":260.68,"o":261.07,"pc":259.45,"t":1582641000}
	addr := fmt.Sprintf("%s/quote?symbol=%s&token=%s", c.baseURL, url.QueryEscape(symbol), c.token())

	body, err := wget(ctx, c.live, addr)
	if err != nil {
		return stockfolio.Quote{}, fmt.Errorf("could not fetch quote for %s: %w", symbol, err)
	}
	if bytes.Equal(bytes.TrimSpace(body), []byte(unsupportedBody)) {
		return stockfolio.Quote{Symbol: symbol, Unsupported: true}, nil
	}

	var info struct {
		Current       float64 `json:"c"`
		PreviousClose float64 `json:"pc"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return stockfolio.Quote{}, fmt.Errorf("could not decode quote for %s: %w", symbol, err)
	}
	if info.Current == 0 && info.PreviousClose == 0 {
		// Finnhub also answers all-zero quotes for symbols it does not track.
		return stockfolio.Quote{Symbol: symbol, Unsupported: true}, nil
	}
	return stockfolio.Quote{
		Symbol:        symbol,
		Current:       stockfolio.M(info.Current, stockfolio.USD),
		PreviousClose: stockfolio.M(info.PreviousClose, stockfolio.USD),
	}, nil
}

// Quotes fetches quotes for all symbols, within the client's rate budget.
// Unsupported symbols come back flagged; any other failure aborts.
func (c *Client) Quotes(ctx context.Context, symbols []string) (map[string]stockfolio.Quote, error) {
	quotes := make(map[string]stockfolio.Quote, len(symbols))
	for _, symbol := range symbols {
		q, err := c.Quote(ctx, symbol)
		if err != nil {
			return nil, err
		}
		quotes[symbol] = q
	}
	return quotes, nil
}

// PriceTarget fetches the analyst consensus price target for a symbol.
func (c *Client) PriceTarget(ctx context.Context, symbol string) (stockfolio.PriceTarget, error) {
	// https://finnhub.io/api/v1/stock/price-target?symbol=AAPL&token=...
	// {"lastUpdated":"2025-06-01 00:00:00","symbol":"AAPL","targetHigh":310,"targetLow":180,"targetMean":250.5,"targetMedian":245}
	addr := fmt.Sprintf("%s/stock/price-target?symbol=%s&token=%s", c.baseURL, url.QueryEscape(symbol), c.token())

	var info struct {
		TargetMean float64 `json:"targetMean"`
		TargetHigh float64 `json:"targetHigh"`
		TargetLow  float64 `json:"targetLow"`
	}
	if err := jwget(ctx, c.live, addr, &info); err != nil {
		return stockfolio.PriceTarget{}, fmt.Errorf("could not fetch price target for %s: %w", symbol, err)
	}
	return stockfolio.PriceTarget{
		Symbol: symbol,
		Mean:   stockfolio.M(info.TargetMean, stockfolio.USD),
		High:   stockfolio.M(info.TargetHigh, stockfolio.USD),
		Low:    stockfolio.M(info.TargetLow, stockfolio.USD),
	}, nil
}

// PriceTargets fetches targets for all symbols.
func (c *Client) PriceTargets(ctx context.Context, symbols []string) (map[string]stockfolio.PriceTarget, error) {
	targets := make(map[string]stockfolio.PriceTarget, len(symbols))
	for _, symbol := range symbols {
		t, err := c.PriceTarget(ctx, symbol)
		if err != nil {
			return nil, err
		}
		targets[symbol] = t
	}
	return targets, nil
}

// Candles fetches the daily closing prices of a symbol over a date range.
// Symbols without data in the range yield an empty series.
func (c *Client) Candles(ctx context.Context, symbol string, from, to stockfolio.Date) (stockfolio.Candles, error) {
	// https://finnhub.io/api/v1/stock/candle?symbol=AAPL&resolution=D&from=...&to=...
	// {"c":[217.68,221.03],"t":[1569297600,1569384000],"s":"ok"}
	addr := fmt.Sprintf("%s/stock/candle?symbol=%s&resolution=D&from=%d&to=%d&token=%s",
		c.baseURL, url.QueryEscape(symbol), from.Unix(), to.Unix(), c.token())

	var info struct {
		Closes []float64 `json:"c"`
		Times  []int64   `json:"t"`
		Status string    `json:"s"`
	}
	if err := jwget(ctx, c.cached, addr, &info); err != nil {
		return stockfolio.Candles{}, fmt.Errorf("could not fetch candles for %s: %w", symbol, err)
	}
	if info.Status != "ok" {
		return stockfolio.Candles{Symbol: symbol}, nil
	}
	return stockfolio.Candles{Symbol: symbol, Closes: info.Closes, Times: info.Times}, nil
}

// AllCandles fetches daily candles for all symbols over the range.
func (c *Client) AllCandles(ctx context.Context, symbols []string, from, to stockfolio.Date) (map[string]stockfolio.Candles, error) {
	candles := make(map[string]stockfolio.Candles, len(symbols))
	for _, symbol := range symbols {
		series, err := c.Candles(ctx, symbol, from, to)
		if err != nil {
			return nil, err
		}
		candles[symbol] = series
	}
	return candles, nil
}

// Trends fetches the analyst recommendation trend of a symbol, most
// recent month first.
func (c *Client) Trends(ctx context.Context, symbol string) ([]stockfolio.Trend, error) {
	// https://finnhub.io/api/v1/stock/recommendation?symbol=AAPL&token=...
	// [{"buy":24,"hold":7,"period":"2025-03-01","sell":0,"strongBuy":13,"strongSell":0,"symbol":"AAPL"}]
	addr := fmt.Sprintf("%s/stock/recommendation?symbol=%s&token=%s", c.baseURL, url.QueryEscape(symbol), c.token())

	type apiTrend struct {
		Period     string `json:"period"`
		StrongBuy  int    `json:"strongBuy"`
		Buy        int    `json:"buy"`
		Hold       int    `json:"hold"`
		Sell       int    `json:"sell"`
		StrongSell int    `json:"strongSell"`
	}
	content := make([]apiTrend, 0)
	if err := jwget(ctx, c.live, addr, &content); err != nil {
		return nil, fmt.Errorf("could not fetch trends for %s: %w", symbol, err)
	}

	trends := make([]stockfolio.Trend, 0, len(content))
	for _, t := range content {
		trends = append(trends, stockfolio.Trend{
			Symbol:     symbol,
			Period:     t.Period,
			StrongBuy:  t.StrongBuy,
			Buy:        t.Buy,
			Hold:       t.Hold,
			Sell:       t.Sell,
			StrongSell: t.StrongSell,
		})
	}
	return trends, nil
}

// Earnings fetches the earnings calendar for a date range, keeping only
// the given symbols. An entry beats when the actual figure exceeds the
// estimate.
func (c *Client) Earnings(ctx context.Context, from, to stockfolio.Date, symbols []string) ([]stockfolio.Earning, error) {
	// https://finnhub.io/api/v1/calendar/earnings?from=2025-01-01&to=2025-12-31&token=...
	// {"earningsCalendar":[{"date":"2025-01-28","epsActual":2.4,"epsEstimate":2.36,"quarter":1,
	//   "revenueActual":124300000000,"revenueEstimate":124120000000,"symbol":"AAPL","year":2025}]}
	addr := fmt.Sprintf("%s/calendar/earnings?from=%s&to=%s&token=%s", c.baseURL, from, to, c.token())

	var content struct {
		EarningsCalendar []struct {
			Symbol          string          `json:"symbol"`
			Date            stockfolio.Date `json:"date"`
			Quarter         int             `json:"quarter"`
			Year            int             `json:"year"`
			EPSActual       *float64        `json:"epsActual"`
			EPSEstimate     *float64        `json:"epsEstimate"`
			RevenueActual   *float64        `json:"revenueActual"`
			RevenueEstimate *float64        `json:"revenueEstimate"`
		} `json:"earningsCalendar"`
	}
	if err := jwget(ctx, c.cached, addr, &content); err != nil {
		return nil, fmt.Errorf("could not fetch earnings calendar: %w", err)
	}

	wanted := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		wanted[s] = struct{}{}
	}

	var earnings []stockfolio.Earning
	for _, e := range content.EarningsCalendar {
		if _, ok := wanted[e.Symbol]; !ok {
			continue
		}
		earning := stockfolio.Earning{
			Symbol:   e.Symbol,
			Date:     e.Date,
			Quarter:  e.Quarter,
			Year:     e.Year,
			Reported: e.EPSActual != nil,
		}
		if e.EPSActual != nil && e.EPSEstimate != nil {
			earning.EPSBeat = *e.EPSActual > *e.EPSEstimate
		}
		if e.RevenueActual != nil && e.RevenueEstimate != nil {
			earning.RevBeat = *e.RevenueActual > *e.RevenueEstimate
		}
		earnings = append(earnings, earning)
	}
	return earnings, nil
}
