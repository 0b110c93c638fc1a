// Package export formats analytics results into files for human
// consumption: CSV and PDF reports and a PNG value chart. It is a stateless
// consumer of the analytics engine; no domain logic lives here.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/Pradeep-Sekar/investrak"
)

const generatedFormat = "2006-01-02 15:04:05"

// Exporter writes portfolio reports from computed metrics.
type Exporter struct {
	analytics *investrak.Analytics
}

// NewExporter creates an exporter over the given analytics engine.
func NewExporter(a *investrak.Analytics) *Exporter {
	return &Exporter{analytics: a}
}

// report gathers the two metric sets every report format shares.
func (e *Exporter) report(portfolioID string) (investrak.Metrics, investrak.Performance, error) {
	m, err := e.analytics.PortfolioMetrics(portfolioID)
	if err != nil {
		return investrak.Metrics{}, investrak.Performance{}, err
	}
	perf, err := e.analytics.PerformanceMetrics(portfolioID, nil, nil)
	if err != nil {
		return investrak.Metrics{}, investrak.Performance{}, err
	}
	return m, perf, nil
}

// WriteCSV writes the analytics report for one portfolio as CSV.
func (e *Exporter) WriteCSV(w io.Writer, portfolioID string) error {
	m, perf, err := e.report(portfolioID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	records := [][]string{
		{"Portfolio Analytics Report"},
		{"Generated:", time.Now().Format(generatedFormat)},
		{},
		{"Current Metrics"},
		{"Total Invested", m.TotalInvested.String()},
		{"Current Value", m.CurrentValue.String()},
		{"Profit/Loss", m.ProfitLoss.String()},
		{"Return %", m.ProfitLossPercent.String()},
		{"Number of Investments", fmt.Sprintf("%d", m.InvestmentCount)},
		{},
		{"Performance Metrics"},
		{"Total Return", perf.TotalReturn.String()},
		{"Total Return %", perf.TotalReturnPercent.String()},
		{"Annualized Return", perf.AnnualizedReturn.String()},
		{"Best Daily Return", perf.BestDayReturn.String()},
		{"Worst Daily Return", perf.WorstDayReturn.String()},
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("cannot write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
