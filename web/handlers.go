package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pradeep-Sekar/investrak"
	"github.com/Pradeep-Sekar/investrak/export"
)

const formDayFormat = "2006-01-02"

func (s *Server) home(c *gin.Context) {
	portfolios, err := s.store.Portfolios()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"Portfolios": portfolios})
}

func (s *Server) viewPortfolio(c *gin.Context) {
	id := c.Param("id")
	portfolio, ok, err := s.store.GetPortfolio(id)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		s.fail(c, http.StatusNotFound, errors.New("portfolio not found"))
		return
	}
	holdings, err := s.store.Holdings(id)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	metrics, err := s.analytics.PortfolioMetrics(id)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "portfolio.html", gin.H{
		"Portfolio": portfolio,
		"Holdings":  holdings,
		"Metrics":   metrics,
	})
}

func (s *Server) portfolioAnalytics(c *gin.Context) {
	id := c.Param("id")
	portfolio, ok, err := s.store.GetPortfolio(id)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		s.fail(c, http.StatusNotFound, errors.New("portfolio not found"))
		return
	}

	from, to, err := parseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	metrics, err := s.analytics.PortfolioMetrics(id)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	performance, err := s.analytics.PerformanceMetrics(id, from, to)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	snapshots, err := s.store.Snapshots(id, from, to)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "portfolio_analytics.html", gin.H{
		"Portfolio":   portfolio,
		"Metrics":     metrics,
		"Performance": performance,
		"HasChart":    len(snapshots) >= 2,
	})
}

func (s *Server) portfolioChart(c *gin.Context) {
	id := c.Param("id")
	portfolio, ok, err := s.store.GetPortfolio(id)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	snapshots, err := s.store.Snapshots(id, nil, nil)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	png, err := export.RenderValueChart(portfolio.Name, snapshots)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) listGoals(c *gin.Context) {
	goals, err := s.store.Goals()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "goals.html", gin.H{"Goals": goals})
}

func (s *Server) createGoalForm(c *gin.Context) {
	c.HTML(http.StatusOK, "goal_create.html", gin.H{})
}

func (s *Server) createGoal(c *gin.Context) {
	goal, err := s.goalFromForm(c)
	if err == nil {
		goal, err = s.store.SaveGoal(goal)
	}
	if err != nil {
		c.HTML(http.StatusBadRequest, "goal_create.html", gin.H{"Error": err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, "/goals/"+goal.ID)
}

func (s *Server) viewGoal(c *gin.Context) {
	goal, ok, err := s.store.GetGoal(c.Param("id"))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		s.fail(c, http.StatusNotFound, errors.New("goal not found"))
		return
	}
	c.HTML(http.StatusOK, "goal_detail.html", gin.H{"Goal": goal})
}

func (s *Server) editGoalForm(c *gin.Context) {
	goal, ok, err := s.store.GetGoal(c.Param("id"))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		s.fail(c, http.StatusNotFound, errors.New("goal not found"))
		return
	}
	c.HTML(http.StatusOK, "goal_edit.html", gin.H{"Goal": goal})
}

func (s *Server) editGoal(c *gin.Context) {
	goal, ok, err := s.store.GetGoal(c.Param("id"))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		s.fail(c, http.StatusNotFound, errors.New("goal not found"))
		return
	}

	updated, err := s.applyGoalForm(c, goal)
	if err == nil {
		err = s.store.UpdateGoal(updated)
	}
	if err != nil {
		c.HTML(http.StatusBadRequest, "goal_edit.html", gin.H{"Goal": goal, "Error": err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, "/goals/"+goal.ID)
}

// goalFromForm builds a new validated goal from the create form.
func (s *Server) goalFromForm(c *gin.Context) (investrak.Goal, error) {
	target, err := investrak.ParseMoney(c.PostForm("target_amount"), s.currency)
	if err != nil {
		return investrak.Goal{}, err
	}
	targetDate, err := time.Parse(formDayFormat, c.PostForm("target_date"))
	if err != nil {
		return investrak.Goal{}, fmt.Errorf("invalid target date: %w", err)
	}
	status, err := investrak.ParseGoalStatus(c.PostForm("status"))
	if err != nil {
		return investrak.Goal{}, err
	}
	return investrak.NewGoal(
		c.PostForm("name"),
		target,
		targetDate,
		c.PostForm("category"),
		c.PostForm("description"),
		status,
		c.PostForm("portfolio_id"),
	)
}

// applyGoalForm merges the edit form into a complete replacement record.
func (s *Server) applyGoalForm(c *gin.Context, goal investrak.Goal) (investrak.Goal, error) {
	target, err := investrak.ParseMoney(c.PostForm("target_amount"), s.currency)
	if err != nil {
		return investrak.Goal{}, err
	}
	targetDate, err := time.Parse(formDayFormat, c.PostForm("target_date"))
	if err != nil {
		return investrak.Goal{}, fmt.Errorf("invalid target date: %w", err)
	}
	status, err := investrak.ParseGoalStatus(c.PostForm("status"))
	if err != nil {
		return investrak.Goal{}, err
	}

	name := c.PostForm("name")
	category := c.PostForm("category")
	description := c.PostForm("description")
	update := investrak.GoalUpdate{
		Name:         &name,
		TargetAmount: &target,
		Category:     &category,
		Description:  &description,
		Status:       &status,
	}
	// Re-submitting the current target date on an expired goal must not
	// fail validation: only an actual change re-triggers the future check.
	if !targetDate.Equal(goal.TargetDate) {
		update.TargetDate = &targetDate
	}
	return update.Apply(goal)
}

func parseRange(from, to string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if from != "" {
		t, err := time.Parse(formDayFormat, from)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid from date: %w", err)
		}
		start = &t
	}
	if to != "" {
		t, err := time.Parse(formDayFormat, to)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid to date: %w", err)
		}
		end = &t
	}
	return start, end, nil
}
