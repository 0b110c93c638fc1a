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

type investmentsCmd struct{}

func (*investmentsCmd) Name() string     { return "investments" }
func (*investmentsCmd) Synopsis() string { return "list the investments in a portfolio" }
func (*investmentsCmd) Usage() string {
	return `itk investments <portfolio-id>

  Prints all investments held in the given portfolio.

`
}
func (*investmentsCmd) SetFlags(f *flag.FlagSet) {}

func (c *investmentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected argument: <portfolio-id>")
		return subcommands.ExitUsageError
	}

	_, store, err := loadApp()
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
	holdings, err := store.Holdings(portfolio.ID)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.HoldingsMarkdown(portfolio, holdings))
	return subcommands.ExitSuccess
}
