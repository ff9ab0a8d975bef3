package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/avoronkov/stockfolio"
)

// PerformanceMarkdown renders every position valued at the current quote,
// with portfolio totals. Rows the provider could not quote show n/a and
// stay out of the totals.
func PerformanceMarkdown(r stockfolio.PerformanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Performance")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Shares", "Avg. Price", "Current", "Gain", "Value", "Earn"},
	}
	for _, p := range r.Positions {
		if p.Unsupported {
			table.Rows = append(table.Rows, []string{
				p.Symbol,
				strconv.FormatInt(p.Shares, 10),
				p.AveragePrice.String(),
				notAvailable, notAvailable, notAvailable, notAvailable,
			})
			continue
		}
		table.Rows = append(table.Rows, []string{
			p.Symbol,
			strconv.FormatInt(p.Shares, 10),
			p.AveragePrice.String(),
			p.Current.String(),
			p.Gain.SignedString() + " (" + signedPercent(p.GainPercent) + ")",
			p.Value.String(),
			p.Earn.SignedString(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", "", "", signedPercent(r.TotalPercent),
		md.Bold(r.TotalValue.String()),
		md.Bold(r.TotalEarn.SignedString()),
	})
	doc.Table(table)
	return doc.String()
}

// TargetsMarkdown renders analyst price targets against current prices.
func TargetsMarkdown(r stockfolio.TargetReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Price Targets")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Current", "Mean", "High", "Low", "Upside"},
	}
	for _, p := range r.Positions {
		if p.Unsupported {
			table.Rows = append(table.Rows, []string{
				p.Symbol, notAvailable, notAvailable, notAvailable, notAvailable, notAvailable,
			})
			continue
		}
		table.Rows = append(table.Rows, []string{
			p.Symbol,
			p.Current.String(),
			p.Target.String(),
			p.High.String(),
			p.Low.String(),
			signedPercent(p.Upside),
		})
	}
	doc.Table(table)
	return doc.String()
}

// WeightsMarkdown renders the allocation of the portfolio by market value.
func WeightsMarkdown(r stockfolio.WeightReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Weights")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Value", "Weight"},
	}
	for _, p := range r.Positions {
		if p.Unsupported {
			table.Rows = append(table.Rows, []string{p.Symbol, notAvailable, notAvailable})
			continue
		}
		table.Rows = append(table.Rows, []string{
			p.Symbol,
			p.Value.String(),
			percent(p.Weight),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), md.Bold(r.TotalValue.String()), "",
	})
	doc.Table(table)
	return doc.String()
}
