package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteInvestmentCmd struct{}

func (*deleteInvestmentCmd) Name() string     { return "delete-investment" }
func (*deleteInvestmentCmd) Synopsis() string { return "delete an investment" }
func (*deleteInvestmentCmd) Usage() string {
	return `itk delete-investment <investment-id>

  Removes an investment from its portfolio.

`
}
func (*deleteInvestmentCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected argument: <investment-id>")
		return subcommands.ExitUsageError
	}

	_, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	deleted, err := store.DeleteHolding(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if !deleted {
		fmt.Printf("No investment %s, nothing to delete.\n", f.Arg(0))
		return subcommands.ExitSuccess
	}

	fmt.Printf("Deleted investment %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
