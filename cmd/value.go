package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "print the total value of a portfolio" }
func (*valueCmd) Usage() string {
	return `itk value <portfolio-id>

  Prints the total value of all investments in the portfolio.

`
}
func (*valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	value, err := investrak.NewAnalytics(store, cfg.Currency).PortfolioValue(portfolio.ID)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("%s: %s\n", portfolio.Name, value)
	return subcommands.ExitSuccess
}
