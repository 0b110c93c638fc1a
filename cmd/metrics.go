package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
	"github.com/Pradeep-Sekar/investrak/renderer"
)

type metricsCmd struct{}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "print investment metrics for a portfolio" }
func (*metricsCmd) Usage() string {
	return `itk metrics <portfolio-id>

  Prints the invested amount, current value and profit/loss of a portfolio.

`
}
func (*metricsCmd) SetFlags(f *flag.FlagSet) {}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected argument: <portfolio-id>")
		return subcommands.ExitUsageError
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

	metrics, err := investrak.NewAnalytics(store, cfg.Currency).PortfolioMetrics(portfolio.ID)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.MetricsMarkdown(portfolio, metrics))
	return subcommands.ExitSuccess
}
