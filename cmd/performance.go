package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
	"github.com/Pradeep-Sekar/investrak/renderer"
)

type performanceCmd struct {
	from string
	to   string
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "print performance metrics for a portfolio" }
func (*performanceCmd) Usage() string {
	return `itk performance [-from <date>] [-to <date>] <portfolio-id>

  Prints returns computed from the portfolio's snapshot history, optionally
  restricted to an inclusive date range. At least two snapshots are needed
  for a meaningful report.

`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the range (YYYY-MM-DD), inclusive.")
	f.StringVar(&c.to, "to", "", "End of the range (YYYY-MM-DD), inclusive.")
}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected argument: <portfolio-id>")
		return subcommands.ExitUsageError
	}

	var from, to *time.Time
	if c.from != "" {
		t, err := parseDay(c.from)
		if err != nil {
			return fail(err)
		}
		from = &t
	}
	if c.to != "" {
		t, err := parseDay(c.to)
		if err != nil {
			return fail(err)
		}
		to = &t
	}

	cfg, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	portfolio, ok, err := store.GetPortfolio(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(fmt.Errorf("portfolio %q: %w", f.Arg(0), investrak.ErrNotFound))
	}

	perf, err := investrak.NewAnalytics(store, cfg.Currency).PerformanceMetrics(portfolio.ID, from, to)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.PerformanceMarkdown(portfolio, perf))
	return subcommands.ExitSuccess
}
