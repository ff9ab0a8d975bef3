package finnhub

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "info": {
	        "isin": "LS000IUSD016",
	        "chartType": "mini",
	        ...
	    },
	    "series": { "intraday": { "data": [[1756387200000, 1.047], ...] } }
	}
*/

// LatestEURPerUSD returns the latest intraday EUR/USD rate (EUR per one
// USD). Forex on Finnhub is a premium endpoint, so this reads the free
// ls-tc.de mini chart instead; that is where the EURUSD instrument lives.
func LatestEURPerUSD(ctx context.Context) (float64, error) {
	addr := "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=349938&series=intraday&type=mini"
	var jobj any
	err := jwget(ctx, new(http.Client), addr, &jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", "EUR/USD", err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", "EUR/USD", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", "EUR/USD", path, "not a float", jval)
	}
	return val, nil
}
