// Package web serves the HTML front end: portfolio and goal views over the
// same store and analytics engine the CLI uses. It renders and redirects
// only; all domain rules live in the investrak package.
package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pradeep-Sekar/investrak"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server wires the store and analytics engine into the HTTP routes.
type Server struct {
	store     *investrak.FileStore
	analytics *investrak.Analytics
	currency  string
	engine    *gin.Engine
}

// NewServer builds the route table over the given store.
func NewServer(store *investrak.FileStore, analytics *investrak.Analytics, currency string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")))

	s := &Server{store: store, analytics: analytics, currency: currency, engine: engine}

	engine.GET("/", s.home)
	engine.GET("/portfolio/:id", s.viewPortfolio)
	engine.GET("/portfolio/:id/analytics", s.portfolioAnalytics)
	engine.GET("/portfolio/:id/chart.png", s.portfolioChart)
	engine.GET("/goals", s.listGoals)
	engine.GET("/goals/create", s.createGoalForm)
	engine.POST("/goals/create", s.createGoal)
	engine.GET("/goals/:id", s.viewGoal)
	engine.GET("/goals/:id/edit", s.editGoalForm)
	engine.POST("/goals/:id/edit", s.editGoal)

	return s
}

// Handler exposes the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves the front end on addr until the listener fails.
func (s *Server) Run(addr string) error {
	log.Printf("web-serve addr=%q", addr)
	return s.engine.Run(addr)
}

// fail renders the error view.
func (s *Server) fail(c *gin.Context, status int, err error) {
	log.Printf("web-error status=%d err=%q", status, err)
	c.HTML(status, "error.html", gin.H{"Error": err.Error()})
}
