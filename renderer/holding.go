package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/avoronkov/stockfolio"
)

// HoldingsMarkdown renders the current positions with their cost basis.
func HoldingsMarkdown(holdings []stockfolio.Holding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	if len(holdings) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Shares", "Avg. Price", "Cost"},
	}
	for _, h := range holdings {
		table.Rows = append(table.Rows, []string{
			h.Symbol,
			strconv.FormatInt(h.Shares, 10),
			h.AveragePrice.String(),
			h.Cost().String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// TransactionsMarkdown renders the raw history, one line per transaction.
func TransactionsMarkdown(portfolio string, txs []stockfolio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions of %s", portfolio))
	if len(txs) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}
	var lines []string
	for _, tx := range txs {
		lines = append(lines, tx.String())
	}
	doc.BulletList(lines...)
	return doc.String()
}
