package renderer

import (
	"bytes"
	"fmt"

	"github.com/Pradeep-Sekar/investrak"
	md "github.com/nao1215/markdown"
)

// MetricsMarkdown renders the current metrics of one portfolio.
func MetricsMarkdown(p investrak.Portfolio, m investrak.Metrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Metrics: %s", p.Name))
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Invested", m.TotalInvested.String()},
			{"Current Value", m.CurrentValue.String()},
			{"Profit/Loss", m.ProfitLoss.SignedString()},
			{"Profit/Loss %", m.ProfitLossPercent.SignedString()},
			{"Number of Investments", fmt.Sprintf("%d", m.InvestmentCount)},
		},
	})

	return doc.String()
}

// PerformanceMarkdown renders snapshot-based performance figures for one
// portfolio.
func PerformanceMarkdown(p investrak.Portfolio, perf investrak.Performance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Performance: %s", p.Name))
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Return", perf.TotalReturn.SignedString()},
			{"Total Return %", perf.TotalReturnPercent.SignedString()},
			{"Annualized Return", perf.AnnualizedReturn.SignedString()},
			{"Best Daily Return", perf.BestDayReturn.SignedString()},
			{"Worst Daily Return", perf.WorstDayReturn.SignedString()},
		},
	})

	return doc.String()
}
