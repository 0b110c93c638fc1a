package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deletePortfolioCmd struct{}

func (*deletePortfolioCmd) Name() string     { return "delete-portfolio" }
func (*deletePortfolioCmd) Synopsis() string { return "delete a portfolio by id" }
func (*deletePortfolioCmd) Usage() string {
	return `itk delete-portfolio <portfolio-id>

  Deletes a portfolio. Investments and goals referencing it are left in
  place: lifecycles are independent, there is no cascade.
`
}

func (*deletePortfolioCmd) SetFlags(*flag.FlagSet) {}

func (*deletePortfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument: the portfolio id")
		return subcommands.ExitUsageError
	}

	_, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	removed, err := store.DeletePortfolio(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if !removed {
		// not an error: absence is a normal outcome for delete
		fmt.Printf("Portfolio not found: %s\n", f.Arg(0))
		return subcommands.ExitSuccess
	}
	fmt.Printf("Deleted portfolio %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
