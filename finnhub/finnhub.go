// Package finnhub fetches market data from the Finnhub API: intraday
// quotes, analyst price targets and recommendation trends, daily candles
// and the earnings calendar.
//
// Finnhub enforces a multi-tier call budget (calls per second and calls
// per minute). The client honors it with token buckets shared across all
// endpoints, and can spread the load over several API tokens.
package finnhub

import (
	"net/http"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "finnhub").Logger()

const defaultBaseURL = "https://finnhub.io/api/v1"

// Free tier budget: 30 calls per second, 60 calls per minute.
const (
	perSecondBudget = 30
	perMinuteBudget = 60
)

// Client talks to the Finnhub API within its rate budget.
type Client struct {
	baseURL string
	tokens  []string

	mu   sync.Mutex
	next int // next token to hand out, round robin

	// realtime endpoints (quotes) must never be served from cache;
	// slow-moving ones (candles, earnings) are cached for a day.
	live   *http.Client
	cached *http.Client
}

// NewClient creates a client using one or more API tokens. Requests
// rotate over the tokens; the rate budget is shared regardless.
func NewClient(tokens ...string) *Client {
	second := rate.NewLimiter(rate.Limit(perSecondBudget), perSecondBudget)
	minute := rate.NewLimiter(rate.Limit(float64(perMinuteBudget)/60), perMinuteBudget)

	throttle := &throttled{base: http.DefaultTransport, tiers: []*rate.Limiter{second, minute}}
	return &Client{
		baseURL: defaultBaseURL,
		tokens:  tokens,
		live:    &http.Client{Transport: throttle},
		cached:  &http.Client{Transport: &diskCache{base: throttle}},
	}
}

// token returns the next API token, round robin.
func (c *Client) token() string {
	if len(c.tokens) == 0 {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.tokens[c.next%len(c.tokens)]
	c.next++
	return t
}
