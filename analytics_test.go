package investrak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader serves canned collections so analytics can be tested without a
// file store.
type fakeReader struct {
	holdings  []Holding
	snapshots []Snapshot
}

func (f *fakeReader) Holdings(string) ([]Holding, error) { return f.holdings, nil }
func (f *fakeReader) Snapshots(string, *time.Time, *time.Time) ([]Snapshot, error) {
	return f.snapshots, nil
}

func usd(t *testing.T, amount string) Money {
	t.Helper()
	m, err := ParseMoney(amount, "USD")
	require.NoError(t, err)
	return m
}

func holdingAt(t *testing.T, quantity int64, price string) Holding {
	t.Helper()
	h, err := NewHolding("p1", "AAPL", Stock, quantity, usd(t, price), time.Time{}, "", "")
	require.NoError(t, err)
	return h
}

func snapAt(t *testing.T, taken, value string) Snapshot {
	t.Helper()
	d, err := time.Parse("2006-01-02", taken)
	require.NoError(t, err)
	return Snapshot{PortfolioID: "p1", TotalValue: usd(t, value), InvestedAmount: usd(t, value), TakenAt: d}
}

func TestPortfolioMetrics(t *testing.T) {
	store := &fakeReader{holdings: []Holding{
		holdingAt(t, 10, "150.00"),
		holdingAt(t, 5, "2500.00"),
	}}
	a := NewAnalytics(store, "USD")

	m, err := a.PortfolioMetrics("p1")
	require.NoError(t, err)

	// 10*150 + 5*2500 = 14000, exactly.
	assert.True(t, m.TotalInvested.Equal(usd(t, "14000")), "got %s", m.TotalInvested)
	assert.True(t, m.CurrentValue.Equal(usd(t, "14000")), "got %s", m.CurrentValue)
	assert.True(t, m.ProfitLoss.IsZero(), "got %s", m.ProfitLoss)
	assert.True(t, m.ProfitLossPercent.Equal(0), "got %s", m.ProfitLossPercent)
	assert.Equal(t, 2, m.InvestmentCount)
}

func TestPortfolioMetrics_Empty(t *testing.T) {
	a := NewAnalytics(&fakeReader{}, "USD")

	m, err := a.PortfolioMetrics("p1")
	require.NoError(t, err)
	assert.True(t, m.TotalInvested.IsZero())
	assert.True(t, m.ProfitLossPercent.Equal(0))
	assert.Equal(t, 0, m.InvestmentCount)
}

func TestPortfolioValue_ExactDecimal(t *testing.T) {
	// 0.10 added ten times must be exactly 1, not 0.9999999999999999.
	holdings := make([]Holding, 10)
	for i := range holdings {
		holdings[i] = holdingAt(t, 1, "0.10")
	}
	a := NewAnalytics(&fakeReader{holdings: holdings}, "USD")

	v, err := a.PortfolioValue("p1")
	require.NoError(t, err)
	assert.True(t, v.Equal(usd(t, "1")), "got %s", v.Amount())
}

func TestPerformanceMetrics(t *testing.T) {
	store := &fakeReader{snapshots: []Snapshot{
		snapAt(t, "2024-01-01", "10000"),
		snapAt(t, "2024-01-15", "14000"),
	}}
	a := NewAnalytics(store, "USD")

	perf, err := a.PerformanceMetrics("p1", nil, nil)
	require.NoError(t, err)

	assert.True(t, perf.TotalReturn.Equal(usd(t, "4000")), "got %s", perf.TotalReturn)
	assert.True(t, perf.TotalReturnPercent.Equal(40), "got %s", perf.TotalReturnPercent)
	assert.True(t, perf.BestDayReturn.Equal(40), "got %s", perf.BestDayReturn)
	assert.True(t, perf.WorstDayReturn.Equal(40), "got %s", perf.WorstDayReturn)
	// 40% over 14 days compounds to far more than 40% over a year.
	assert.Greater(t, float64(perf.AnnualizedReturn), 40.0)
}

func TestPerformanceMetrics_BestAndWorstDay(t *testing.T) {
	store := &fakeReader{snapshots: []Snapshot{
		// Deliberately unsorted: the engine must order them itself.
		snapAt(t, "2024-01-03", "10500"),
		snapAt(t, "2024-01-01", "10000"),
		snapAt(t, "2024-01-02", "11000"), // +10%, the best step
		snapAt(t, "2024-01-04", "9975"),  // -5%, the worst step
	}}
	a := NewAnalytics(store, "USD")

	perf, err := a.PerformanceMetrics("p1", nil, nil)
	require.NoError(t, err)

	assert.True(t, perf.BestDayReturn.Equal(10), "got %s", perf.BestDayReturn)
	assert.True(t, perf.WorstDayReturn.Equal(-5), "got %s", perf.WorstDayReturn)
	assert.True(t, perf.TotalReturn.Equal(usd(t, "-25")), "got %s", perf.TotalReturn)
}

func TestPerformanceMetrics_TooFewSnapshots(t *testing.T) {
	testCases := []struct {
		name  string
		snaps []Snapshot
	}{
		{name: "none", snaps: nil},
		{name: "one", snaps: []Snapshot{snapAt(t, "2024-01-01", "10000")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAnalytics(&fakeReader{snapshots: tc.snaps}, "USD")
			perf, err := a.PerformanceMetrics("p1", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, Performance{}, perf)
		})
	}
}

func TestPerformanceMetrics_ZeroBaseStepSkipped(t *testing.T) {
	store := &fakeReader{snapshots: []Snapshot{
		snapAt(t, "2024-01-01", "0"),
		snapAt(t, "2024-01-02", "10000"),
		snapAt(t, "2024-01-03", "12000"), // the only computable step: +20%
	}}
	a := NewAnalytics(store, "USD")

	perf, err := a.PerformanceMetrics("p1", nil, nil)
	require.NoError(t, err)

	assert.True(t, perf.BestDayReturn.Equal(20), "got %s", perf.BestDayReturn)
	assert.True(t, perf.WorstDayReturn.Equal(20), "got %s", perf.WorstDayReturn)
	// No percentage is computable from a zero opening value.
	assert.True(t, perf.TotalReturnPercent.Equal(0), "got %s", perf.TotalReturnPercent)
	assert.True(t, perf.TotalReturn.Equal(usd(t, "12000")), "got %s", perf.TotalReturn)
}

func TestTakeSnapshot(t *testing.T) {
	store := &fakeReader{holdings: []Holding{holdingAt(t, 10, "150.00")}}
	a := NewAnalytics(store, "USD")

	snap, err := a.TakeSnapshot("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", snap.PortfolioID)
	assert.True(t, snap.TotalValue.Equal(usd(t, "1500")), "got %s", snap.TotalValue)
	assert.True(t, snap.InvestedAmount.Equal(usd(t, "1500")), "got %s", snap.InvestedAmount)
	assert.False(t, snap.TakenAt.IsZero())
}
