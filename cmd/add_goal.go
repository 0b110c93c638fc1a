package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
)

type addGoalCmd struct {
	amount      string
	date        string
	category    string
	description string
	status      string
	portfolio   string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a financial goal" }
func (*addGoalCmd) Usage() string {
	return `itk add-goal -amount <amount> -date <date> [-c <category>] [-desc <description>] [-status <status>] [-portfolio <portfolio-id>] <name>

  Creates a financial goal with a target amount and a future target date.
  The status is one of in_progress, completed or on_hold and defaults to
  in_progress. A goal may be linked to a portfolio.

Usage Examples:
$ itk add-goal -amount 50000 -date 2030-01-01 -c Retirement "Early retirement fund"

`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Target amount (required).")
	f.StringVar(&c.date, "date", "", "Target date YYYY-MM-DD, must be in the future (required).")
	f.StringVar(&c.category, "c", "", "Optional goal category.")
	f.StringVar(&c.description, "desc", "", "Optional description.")
	f.StringVar(&c.status, "status", "in_progress", "Goal status: in_progress, completed or on_hold.")
	f.StringVar(&c.portfolio, "portfolio", "", "Optional portfolio to link the goal to.")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected argument: <name>")
		return subcommands.ExitUsageError
	}
	if c.amount == "" || c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount and -date are required")
		return subcommands.ExitUsageError
	}

	targetDate, err := parseDay(c.date)
	if err != nil {
		return fail(err)
	}
	status, err := investrak.ParseGoalStatus(c.status)
	if err != nil {
		return fail(err)
	}

	cfg, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	amount, err := investrak.ParseMoney(c.amount, cfg.Currency)
	if err != nil {
		return fail(err)
	}

	goal, err := investrak.NewGoal(f.Arg(0), amount, targetDate, c.category, c.description, status, c.portfolio)
	if err != nil {
		return fail(err)
	}
	goal, err = store.SaveGoal(goal)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Created goal %q (id %s)\n", goal.Name, goal.ID)
	return subcommands.ExitSuccess
}
