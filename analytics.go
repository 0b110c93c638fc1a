package investrak

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Reader is the read-only view of the store the analytics engine consumes.
// *FileStore satisfies it.
type Reader interface {
	Holdings(portfolioID string) ([]Holding, error)
	Snapshots(portfolioID string, from, to *time.Time) ([]Snapshot, error)
}

// Metrics aggregates the current state of one portfolio.
//
// There is no market data source yet: the current value is defined as the
// invested value (purchase prices), so profit and loss stay at zero until
// live prices exist. This is a known placeholder, not a bug.
type Metrics struct {
	TotalInvested     Money
	CurrentValue      Money
	ProfitLoss        Money
	ProfitLossPercent Percent
	InvestmentCount   int
}

// Performance summarizes the evolution of a portfolio's value over a range
// of snapshots.
type Performance struct {
	TotalReturn        Money
	TotalReturnPercent Percent
	AnnualizedReturn   Percent
	BestDayReturn      Percent
	WorstDayReturn     Percent
}

// Analytics computes aggregates over store reads. It is stateless: the same
// totals are recomputed from scratch on every call, in exact decimal
// arithmetic so repeated aggregation never drifts.
type Analytics struct {
	store Reader
	cur   string // reporting currency for empty aggregates
}

// NewAnalytics creates an analytics engine over the given store view.
func NewAnalytics(store Reader, reportingCurrency string) *Analytics {
	return &Analytics{store: store, cur: reportingCurrency}
}

// PortfolioValue sums quantity times purchase price over the portfolio's
// holdings.
func (a *Analytics) PortfolioValue(portfolioID string) (Money, error) {
	holdings, err := a.store.Holdings(portfolioID)
	if err != nil {
		return Money{}, err
	}
	total := M(0, a.cur)
	for _, h := range holdings {
		total = total.Add(h.CostBasis())
	}
	return total, nil
}

// PortfolioMetrics computes the invested amount, current value, profit and
// loss, and position count for one portfolio.
func (a *Analytics) PortfolioMetrics(portfolioID string) (Metrics, error) {
	holdings, err := a.store.Holdings(portfolioID)
	if err != nil {
		return Metrics{}, err
	}

	invested := M(0, a.cur)
	current := M(0, a.cur)
	for _, h := range holdings {
		cost := h.CostBasis()
		invested = invested.Add(cost)
		// current price == purchase price until market data integration exists
		current = current.Add(cost)
	}

	pl := current.Sub(invested)
	return Metrics{
		TotalInvested:     invested,
		CurrentValue:      current,
		ProfitLoss:        pl,
		ProfitLossPercent: pl.PercentOf(invested),
		InvestmentCount:   len(holdings),
	}, nil
}

// PerformanceMetrics computes return figures over the portfolio's snapshots
// within the optional inclusive time range. The store returns snapshots in
// storage order, so they are sorted chronologically here before any
// computation. With fewer than two snapshots in range every figure is zero.
func (a *Analytics) PerformanceMetrics(portfolioID string, from, to *time.Time) (Performance, error) {
	snaps, err := a.store.Snapshots(portfolioID, from, to)
	if err != nil {
		return Performance{}, err
	}
	if len(snaps) < 2 {
		return Performance{}, nil
	}

	sort.SliceStable(snaps, func(i, j int) bool {
		return snaps[i].TakenAt.Before(snaps[j].TakenAt)
	})

	first, last := snaps[0], snaps[len(snaps)-1]
	perf := Performance{TotalReturn: last.TotalValue.Sub(first.TotalValue)}
	if !first.TotalValue.IsZero() {
		perf.TotalReturnPercent = stepReturn(first.TotalValue, last.TotalValue)
	}

	// Per-step daily returns between adjacent snapshots. A step whose base
	// value is zero carries no computable return and is skipped.
	started := false
	for i := 1; i < len(snaps); i++ {
		prev := snaps[i-1].TotalValue
		if prev.IsZero() {
			continue
		}
		r := stepReturn(prev, snaps[i].TotalValue)
		if !started || r > perf.BestDayReturn {
			perf.BestDayReturn = r
		}
		if !started || r < perf.WorstDayReturn {
			perf.WorstDayReturn = r
		}
		started = true
	}

	if days := int(last.TakenAt.Sub(first.TakenAt).Hours() / 24); days > 0 {
		growth := 1 + float64(perf.TotalReturnPercent)/100
		perf.AnnualizedReturn = Percent((math.Pow(growth, 365/float64(days)) - 1) * 100)
	}
	return perf, nil
}

// stepReturn is the percentage change from one value to the next.
func stepReturn(from, to Money) Percent {
	ratio := to.Amount().Div(from.Amount()).Sub(decimal.NewFromInt(1))
	return Percent(ratio.Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// TakeSnapshot builds a snapshot of the portfolio's current metrics with the
// present timestamp. It does not persist anything; the caller decides
// whether to hand the snapshot to the store.
func (a *Analytics) TakeSnapshot(portfolioID string) (Snapshot, error) {
	m, err := a.PortfolioMetrics(portfolioID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		PortfolioID:    portfolioID,
		TotalValue:     m.CurrentValue,
		InvestedAmount: m.TotalInvested,
		TakenAt:        now(),
	}, nil
}
