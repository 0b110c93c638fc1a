package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pradeep-Sekar/investrak"
)

func newTestServer(t *testing.T) (*Server, *investrak.FileStore) {
	t.Helper()
	store, err := investrak.Open(t.TempDir())
	require.NoError(t, err)
	analytics := investrak.NewAnalytics(store, "USD")
	return NewServer(store, analytics, "USD"), store
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHome(t *testing.T) {
	s, store := newTestServer(t)
	p, err := investrak.NewPortfolio("Retirement", "")
	require.NoError(t, err)
	_, err = store.SavePortfolio(p)
	require.NoError(t, err)

	w := get(t, s, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Retirement")
}

func TestViewPortfolio(t *testing.T) {
	s, store := newTestServer(t)
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

	w := get(t, s, "/portfolio/"+p.ID)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AAPL")

	w = get(t, s, "/portfolio/no-such-id")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPortfolioAnalytics(t *testing.T) {
	s, store := newTestServer(t)
	p, err := investrak.NewPortfolio("Retirement", "")
	require.NoError(t, err)
	p, err = store.SavePortfolio(p)
	require.NoError(t, err)

	w := get(t, s, "/portfolio/"+p.ID+"/analytics")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(t, s, "/portfolio/"+p.ID+"/analytics?from=garbage")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioChart(t *testing.T) {
	s, store := newTestServer(t)
	p, err := investrak.NewPortfolio("Retirement", "")
	require.NoError(t, err)
	p, err = store.SavePortfolio(p)
	require.NoError(t, err)

	t.Run("too few snapshots", func(t *testing.T) {
		w := get(t, s, "/portfolio/"+p.ID+"/chart.png")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("renders png", func(t *testing.T) {
		value, err := investrak.ParseMoney("10000", "USD")
		require.NoError(t, err)
		for _, day := range []string{"2024-01-01", "2024-02-01"} {
			taken, err := time.Parse("2006-01-02", day)
			require.NoError(t, err)
			_, err = store.SaveSnapshot(investrak.Snapshot{
				PortfolioID: p.ID, TotalValue: value, InvestedAmount: value, TakenAt: taken,
			})
			require.NoError(t, err)
		}

		w := get(t, s, "/portfolio/"+p.ID+"/chart.png")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})
}

func TestCreateGoal(t *testing.T) {
	s, store := newTestServer(t)

	t.Run("valid form redirects to the goal", func(t *testing.T) {
		w := postForm(t, s, "/goals/create", url.Values{
			"name":          {"House"},
			"target_amount": {"50000"},
			"target_date":   {time.Now().AddDate(1, 0, 0).Format("2006-01-02")},
			"status":        {"in_progress"},
		})
		require.Equal(t, http.StatusSeeOther, w.Code)

		goals, err := store.Goals()
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, "House", goals[0].Name)
		assert.Equal(t, "/goals/"+goals[0].ID, w.Header().Get("Location"))
	})

	t.Run("past target date is rejected", func(t *testing.T) {
		w := postForm(t, s, "/goals/create", url.Values{
			"name":          {"Boat"},
			"target_amount": {"10000"},
			"target_date":   {"2020-01-01"},
			"status":        {"in_progress"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "future")
	})
}

func TestEditGoal(t *testing.T) {
	s, store := newTestServer(t)
	amount, err := investrak.ParseMoney("50000", "USD")
	require.NoError(t, err)
	g, err := investrak.NewGoal("House", amount, time.Now().UTC().AddDate(1, 0, 0), "", "", investrak.InProgress, "")
	require.NoError(t, err)
	g, err = store.SaveGoal(g)
	require.NoError(t, err)

	w := postForm(t, s, "/goals/"+g.ID+"/edit", url.Values{
		"name":          {"Beach house"},
		"target_amount": {"60000"},
		"target_date":   {g.TargetDate.Format("2006-01-02")},
		"status":        {"on_hold"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	got, ok, err := store.GetGoal(g.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Beach house", got.Name)
	assert.Equal(t, investrak.OnHold, got.Status)
}

func TestGoalNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/goals/no-such-id")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
