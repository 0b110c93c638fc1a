package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pradeep-Sekar/investrak"
)

func newTestAnalytics(t *testing.T) (*investrak.FileStore, *investrak.Analytics, investrak.Portfolio) {
	t.Helper()
	store, err := investrak.Open(t.TempDir())
	require.NoError(t, err)

	p, err := investrak.NewPortfolio("Retirement", "")
	require.NoError(t, err)
	p, err = store.SavePortfolio(p)
	require.NoError(t, err)

	price, err := investrak.ParseMoney("150.00", "USD")
	require.NoError(t, err)
	h, err := investrak.NewHolding(p.ID, "AAPL", investrak.Stock, 10, price, time.Time{}, "", "")
	require.NoError(t, err)
	_, err = store.SaveHolding(h)
	require.NoError(t, err)

	return store, investrak.NewAnalytics(store, "USD"), p
}

func TestWriteCSV(t *testing.T) {
	_, analytics, p := newTestAnalytics(t)

	var buf bytes.Buffer
	require.NoError(t, NewExporter(analytics).WriteCSV(&buf, p.ID))

	out := buf.String()
	assert.Contains(t, out, "Portfolio Analytics Report")
	assert.Contains(t, out, "Current Metrics")
	assert.Contains(t, out, "Performance Metrics")
	assert.Contains(t, out, `Total Invested,"$1,500.00"`)
	assert.Contains(t, out, "Number of Investments,1")
}

func TestWritePDF(t *testing.T) {
	_, analytics, p := newTestAnalytics(t)

	var buf bytes.Buffer
	require.NoError(t, NewExporter(analytics).WritePDF(&buf, p.ID))

	// A valid PDF document starts with a version header.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "got %q", buf.Bytes()[:8])
	assert.Greater(t, buf.Len(), 500)
}

func TestRenderValueChart(t *testing.T) {
	store, _, p := newTestAnalytics(t)
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}
	value := func(s string) investrak.Money {
		m, err := investrak.ParseMoney(s, "USD")
		require.NoError(t, err)
		return m
	}
	for _, snap := range []investrak.Snapshot{
		{PortfolioID: p.ID, TotalValue: value("10000"), InvestedAmount: value("10000"), TakenAt: day("2024-01-01")},
		{PortfolioID: p.ID, TotalValue: value("14000"), InvestedAmount: value("12000"), TakenAt: day("2024-02-01")},
	} {
		_, err := store.SaveSnapshot(snap)
		require.NoError(t, err)
	}

	snapshots, err := store.Snapshots(p.ID, nil, nil)
	require.NoError(t, err)

	png, err := RenderValueChart(p.Name, snapshots)
	require.NoError(t, err)
	// PNG magic number.
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "expected a PNG stream")
}

func TestRenderValueChart_TooFewSnapshots(t *testing.T) {
	_, err := RenderValueChart("empty", nil)
	assert.ErrorContains(t, err, "at least 2 snapshots")
}
