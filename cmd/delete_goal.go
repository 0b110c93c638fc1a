package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteGoalCmd struct{}

func (*deleteGoalCmd) Name() string     { return "delete-goal" }
func (*deleteGoalCmd) Synopsis() string { return "delete a goal" }
func (*deleteGoalCmd) Usage() string {
	return `itk delete-goal <goal-id>

  Removes a financial goal.

`
}
func (*deleteGoalCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected argument: <goal-id>")
		return subcommands.ExitUsageError
	}

	_, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	deleted, err := store.DeleteGoal(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if !deleted {
		fmt.Printf("No goal %s, nothing to delete.\n", f.Arg(0))
		return subcommands.ExitSuccess
	}

	fmt.Printf("Deleted goal %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
