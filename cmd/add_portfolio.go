package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
)

type addPortfolioCmd struct {
	description string
}

func (*addPortfolioCmd) Name() string     { return "add-portfolio" }
func (*addPortfolioCmd) Synopsis() string { return "create a new portfolio" }
func (*addPortfolioCmd) Usage() string {
	return `itk add-portfolio [-d <description>] <name>

  Creates a new investment portfolio.

Usage Examples:
$ itk add-portfolio -d "Long-term retirement savings" "Retirement"

`
}

func (c *addPortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Optional portfolio description.")
}

func (c *addPortfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument: the portfolio name")
		return subcommands.ExitUsageError
	}

	_, store, err := loadApp()
	if err != nil {
		return fail(err)
	}

	portfolio, err := investrak.NewPortfolio(f.Arg(0), c.description)
	if err != nil {
		return fail(err)
	}
	portfolio, err = store.SavePortfolio(portfolio)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Created portfolio %q with id %s\n", portfolio.Name, portfolio.ID)
	return subcommands.ExitSuccess
}
