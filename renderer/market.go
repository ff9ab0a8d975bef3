package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/avoronkov/stockfolio"
)

// TendenciesMarkdown renders price changes over the covered range, with
// the portfolio beta when it could be computed.
func TendenciesMarkdown(tendencies []stockfolio.Tendency, beta float64, betaErr error) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tendencies")
	if len(tendencies) == 0 {
		doc.PlainText("Not enough price history.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "From", "To", "Change"},
	}
	for _, t := range tendencies {
		table.Rows = append(table.Rows, []string{
			t.Symbol,
			fmt.Sprintf("%.2f", t.First),
			fmt.Sprintf("%.2f", t.Last),
			signedFloatPercent(t.ChangePercent),
		})
	}
	doc.Table(table)

	if betaErr == nil {
		doc.PlainText(fmt.Sprintf("Portfolio beta vs SPY: %.2f", beta))
	}
	return doc.String()
}

// TrendsMarkdown renders analyst recommendation counts per symbol.
func TrendsMarkdown(trends []stockfolio.Trend) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Recommendation Trends")
	if len(trends) == 0 {
		doc.PlainText("No recommendations available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Period", "Strong Buy", "Buy", "Hold", "Sell", "Strong Sell"},
	}
	for _, t := range trends {
		table.Rows = append(table.Rows, []string{
			t.Symbol,
			t.Period,
			strconv.Itoa(t.StrongBuy),
			strconv.Itoa(t.Buy),
			strconv.Itoa(t.Hold),
			strconv.Itoa(t.Sell),
			strconv.Itoa(t.StrongSell),
		})
	}
	doc.Table(table)
	return doc.String()
}

// EarningsMarkdown renders the earnings calendar for the held symbols.
func EarningsMarkdown(earnings []stockfolio.Earning) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Earnings Calendar")
	if len(earnings) == 0 {
		doc.PlainText("No earnings in the period.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Symbol", "Date", "Quarter", "EPS", "Revenue"},
	}
	for _, e := range earnings {
		eps, rev := "pending", "pending"
		if e.Reported {
			eps = beatLabel(e.EPSBeat)
			rev = beatLabel(e.RevBeat)
		}
		table.Rows = append(table.Rows, []string{
			e.Symbol,
			e.Date.String(),
			fmt.Sprintf("Q%d %d", e.Quarter, e.Year),
			eps,
			rev,
		})
	}
	doc.Table(table)
	return doc.String()
}

func beatLabel(beat bool) string {
	if beat {
		return "beat"
	}
	return "miss"
}

// IndependenceMarkdown renders the compound growth projection.
func IndependenceMarkdown(p stockfolio.Independence) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Independence Day")
	doc.PlainText(fmt.Sprintf("Starting from %.2f, growing %.2f%% a year and adding %.2f yearly,",
		p.StartValue, p.GrowthPercent, p.AnnualReplenishment))
	doc.PlainText(fmt.Sprintf("the portfolio reaches %.2f in %d years (final value %.2f).",
		p.Target, p.Years, p.FinalValue))
	return doc.String()
}
