package export

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Pradeep-Sekar/investrak"
)

// RenderValueChart renders a PNG line chart of a portfolio's snapshot
// history. Two series: total value (blue solid) and invested amount (gray
// dashed). Returns raw PNG bytes.
func RenderValueChart(title string, snapshots []investrak.Snapshot) ([]byte, error) {
	if len(snapshots) < 2 {
		return nil, fmt.Errorf("need at least 2 snapshots, got %d", len(snapshots))
	}

	// Snapshots arrive in storage order; the x axis needs chronological order.
	sorted := make([]investrak.Snapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TakenAt.Before(sorted[j].TakenAt)
	})

	xValues := make([]time.Time, len(sorted))
	valueY := make([]float64, len(sorted))
	investedY := make([]float64, len(sorted))
	for i, s := range sorted {
		xValues[i] = s.TakenAt
		valueY[i] = s.TotalValue.Amount().InexactFloat64()
		investedY[i] = s.InvestedAmount.Amount().InexactFloat64()
	}

	valueSeries := chart.TimeSeries{
		Name: "Total Value",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: valueY,
	}

	investedSeries := chart.TimeSeries{
		Name: "Invested",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: investedY,
	}

	graph := chart.Chart{
		Title:  title,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		Series: []chart.Series{
			valueSeries,
			investedSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
