package renderer

import (
	"bytes"
	"fmt"

	"github.com/Pradeep-Sekar/investrak"
	md "github.com/nao1215/markdown"
)

// PortfoliosMarkdown renders the portfolio list to a markdown table.
func PortfoliosMarkdown(portfolios []investrak.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolios")
	if len(portfolios) == 0 {
		doc.PlainText("No portfolios found.")
		return doc.String()
	}

	rows := make([][]string, 0, len(portfolios))
	for _, p := range portfolios {
		rows = append(rows, []string{p.ID, p.Name, orDash(p.Description), when(p.CreationDate)})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Description", "Created"},
		Rows:   rows,
	})

	return doc.String()
}

// HoldingsMarkdown renders the holdings of one portfolio to a markdown table.
func HoldingsMarkdown(p investrak.Portfolio, holdings []investrak.Holding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Investments in %s", p.Name))
	if len(holdings) == 0 {
		doc.PlainText("No investments found.")
		return doc.String()
	}

	rows := make([][]string, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, []string{
			h.ID,
			h.Symbol,
			h.Type.String(),
			fmt.Sprintf("%d", h.Quantity),
			h.PurchasePrice.String(),
			h.CostBasis().String(),
			day(h.PurchaseDate),
			orDash(h.Category),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Symbol", "Type", "Qty", "Price", "Invested", "Purchased", "Category"},
		Rows:   rows,
	})

	return doc.String()
}
