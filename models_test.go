package investrak

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPortfolio_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		pname       string
		description string
		wantErr     bool
	}{
		{name: "valid", pname: "Retirement", description: "Long term savings"},
		{name: "empty name", pname: "", wantErr: true},
		{name: "name at bound", pname: strings.Repeat("a", 100)},
		{name: "name too long", pname: strings.Repeat("a", 101), wantErr: true},
		{name: "description too long", pname: "ok", description: strings.Repeat("d", 501), wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPortfolio(tc.pname, tc.description)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, tc.pname, p.Name)
			assert.False(t, p.CreationDate.IsZero())
		})
	}
}

func TestNewHolding_NormalizesSymbol(t *testing.T) {
	price, err := ParseMoney("150.00", "USD")
	require.NoError(t, err)

	h, err := NewHolding("p1", "  aapl ", Stock, 10, price, time.Time{}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", h.Symbol)
	assert.False(t, h.PurchaseDate.IsZero(), "purchase date defaults to now")
	assert.Equal(t, "1500", h.CostBasis().Amount().String())
}

func TestNewHolding_Validation(t *testing.T) {
	price, err := ParseMoney("150.00", "USD")
	require.NoError(t, err)
	zero, err := ParseMoney("0", "USD")
	require.NoError(t, err)

	testCases := []struct {
		name        string
		portfolioID string
		symbol      string
		quantity    int64
		price       Money
		wantErr     string
	}{
		{name: "valid", portfolioID: "p1", symbol: "AAPL", quantity: 1, price: price},
		{name: "missing portfolio", symbol: "AAPL", quantity: 1, price: price, wantErr: "portfolio id"},
		{name: "empty symbol", portfolioID: "p1", symbol: "   ", quantity: 1, price: price, wantErr: "symbol"},
		{name: "symbol too long", portfolioID: "p1", symbol: "ABCDEFGHIJK", quantity: 1, price: price, wantErr: "symbol"},
		{name: "zero quantity", portfolioID: "p1", symbol: "AAPL", quantity: 0, price: price, wantErr: "quantity"},
		{name: "negative quantity", portfolioID: "p1", symbol: "AAPL", quantity: -3, price: price, wantErr: "quantity"},
		{name: "zero price", portfolioID: "p1", symbol: "AAPL", quantity: 1, price: zero, wantErr: "price"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewHolding(tc.portfolioID, tc.symbol, Stock, tc.quantity, tc.price, time.Time{}, "", "")
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestHoldingUpdate_Apply(t *testing.T) {
	price, err := ParseMoney("150.00", "USD")
	require.NoError(t, err)
	h, err := NewHolding("p1", "AAPL", Stock, 10, price, time.Time{}, "Tech", "")
	require.NoError(t, err)

	newQuantity := int64(25)
	newNotes := "added on dip"
	updated, err := HoldingUpdate{Quantity: &newQuantity, Notes: &newNotes}.Apply(h)
	require.NoError(t, err)

	assert.Equal(t, int64(25), updated.Quantity)
	assert.Equal(t, "added on dip", updated.Notes)
	// untouched fields survive
	assert.Equal(t, h.ID, updated.ID)
	assert.Equal(t, "Tech", updated.Category)
	assert.Equal(t, h.PurchaseDate, updated.PurchaseDate)

	bad := int64(-1)
	_, err = HoldingUpdate{Quantity: &bad}.Apply(h)
	assert.Error(t, err, "update must not bypass validation")
}

func TestNewGoal_TargetDateMustBeFuture(t *testing.T) {
	amount, err := ParseMoney("50000", "USD")
	require.NoError(t, err)

	testCases := []struct {
		name    string
		date    time.Time
		wantErr bool
	}{
		{name: "future", date: now().AddDate(1, 0, 0)},
		{name: "exactly now", date: now(), wantErr: true},
		{name: "past", date: now().AddDate(0, 0, -1), wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGoal("House", amount, tc.date, "", "", InProgress, "")
			if tc.wantErr {
				assert.ErrorContains(t, err, "future")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGoalUpdate_Apply(t *testing.T) {
	amount, err := ParseMoney("50000", "USD")
	require.NoError(t, err)
	g, err := NewGoal("House", amount, now().AddDate(1, 0, 0), "", "", InProgress, "")
	require.NoError(t, err)

	t.Run("status and name change", func(t *testing.T) {
		name := "Beach house"
		status := Completed
		updated, err := GoalUpdate{Name: &name, Status: &status}.Apply(g)
		require.NoError(t, err)
		assert.Equal(t, "Beach house", updated.Name)
		assert.Equal(t, Completed, updated.Status)
		assert.Equal(t, g.TargetDate, updated.TargetDate)
		assert.Equal(t, g.CreationDate, updated.CreationDate)
	})

	t.Run("new target date must be future", func(t *testing.T) {
		past := now().AddDate(0, 0, -1)
		_, err := GoalUpdate{TargetDate: &past}.Apply(g)
		assert.ErrorContains(t, err, "future")
	})

	t.Run("untouched past date stays valid", func(t *testing.T) {
		// Simulate a goal whose target date has already passed.
		expired := g
		expired.TargetDate = now().AddDate(0, 0, -30)
		status := OnHold
		updated, err := GoalUpdate{Status: &status}.Apply(expired)
		require.NoError(t, err)
		assert.Equal(t, OnHold, updated.Status)
	})
}

func TestParseHoldingType(t *testing.T) {
	for _, typ := range []HoldingType{Stock, ETF, MutualFund} {
		parsed, err := ParseHoldingType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	_, err := ParseHoldingType("bond")
	assert.Error(t, err)
}

func TestParseGoalStatus(t *testing.T) {
	for _, status := range []GoalStatus{InProgress, Completed, OnHold} {
		parsed, err := ParseGoalStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
	_, err := ParseGoalStatus("abandoned")
	assert.Error(t, err)
}
