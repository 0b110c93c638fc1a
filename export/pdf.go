package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// WritePDF writes the analytics report for one portfolio as a small PDF
// document.
func (e *Exporter) WritePDF(w io.Writer, portfolioID string) error {
	m, perf, err := e.report(portfolioID)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Portfolio Analytics Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 10, fmt.Sprintf("Generated: %s", time.Now().Format(generatedFormat)), "", 1, "C", false, 0, "")

	line := func(label, value string) {
		pdf.CellFormat(0, 10, fmt.Sprintf("%s: %s", label, value), "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Current Metrics", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	line("Total Invested", m.TotalInvested.String())
	line("Current Value", m.CurrentValue.String())
	line("Profit/Loss", m.ProfitLoss.String())
	line("Return %", m.ProfitLossPercent.String())

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Performance Metrics", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	line("Total Return", perf.TotalReturn.String())
	line("Total Return %", perf.TotalReturnPercent.String())
	line("Annualized Return", perf.AnnualizedReturn.String())
	line("Best Daily Return", perf.BestDayReturn.String())
	line("Worst Daily Return", perf.WorstDayReturn.String())

	return pdf.Output(w)
}
