package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type editPortfolioCmd struct {
	name        string
	description string
}

func (*editPortfolioCmd) Name() string     { return "edit-portfolio" }
func (*editPortfolioCmd) Synopsis() string { return "update a portfolio's name and description" }
func (*editPortfolioCmd) Usage() string {
	return `itk edit-portfolio [-name <name>] [-d <description>] <portfolio-id>

  Updates the name and description of an existing portfolio. Flags that are
  not set keep their current value; the identity and creation date never
  change.
`
}

func (c *editPortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New portfolio name.")
	f.StringVar(&c.description, "d", "", "New portfolio description.")
}

func (c *editPortfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument: the portfolio id")
		return subcommands.ExitUsageError
	}

	_, store, err := loadApp()
	if err != nil {
		return fail(err)
	}

	existing, ok, err := store.GetPortfolio(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Portfolio not found: %s\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	name, description := existing.Name, existing.Description
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			name = c.name
		case "d":
			description = c.description
		}
	})
	updated, err := existing.Rename(name, description)
	if err != nil {
		return fail(err)
	}
	if err := store.UpdatePortfolio(updated); err != nil {
		return fail(err)
	}

	fmt.Printf("Updated portfolio %q\n", updated.Name)
	return subcommands.ExitSuccess
}
