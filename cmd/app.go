// Package cmd implements the CLI application to manage portfolios, their
// investments, goals and performance snapshots.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addPortfolioCmd{}, "portfolios")
	c.Register(&portfoliosCmd{}, "portfolios")
	c.Register(&editPortfolioCmd{}, "portfolios")
	c.Register(&deletePortfolioCmd{}, "portfolios")

	c.Register(&addInvestmentCmd{}, "investments")
	c.Register(&investmentsCmd{}, "investments")
	c.Register(&editInvestmentCmd{}, "investments")
	c.Register(&deleteInvestmentCmd{}, "investments")

	c.Register(&addGoalCmd{}, "goals")
	c.Register(&goalsCmd{}, "goals")
	c.Register(&editGoalCmd{}, "goals")
	c.Register(&deleteGoalCmd{}, "goals")

	c.Register(&valueCmd{}, "analytics")
	c.Register(&metricsCmd{}, "analytics")
	c.Register(&performanceCmd{}, "analytics")
	c.Register(&snapshotCmd{}, "analytics")

	c.Register(&exportCmd{}, "reports")

	c.Register(&serveCmd{}, "server")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", defaultConfigFile(), "Path to the TOML configuration file")

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".investrak", "config.toml")
}

// loadApp builds the effective configuration and opens the file store on it.
func loadApp() (investrak.Config, *investrak.FileStore, error) {
	cfg, err := investrak.LoadConfig(*configFile)
	if err != nil {
		return investrak.Config{}, nil, err
	}
	store, err := investrak.Open(cfg.StoragePath)
	if err != nil {
		return investrak.Config{}, nil, err
	}
	return cfg, store, nil
}

// printMarkdown renders a markdown report to the terminal, falling back to
// the raw text when styling fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints a command error and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

const dayFormat = "2006-01-02"

// parseDay parses a YYYY-MM-DD day in UTC.
func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
