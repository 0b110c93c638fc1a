package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
)

type editGoalCmd struct {
	name        string
	amount      string
	date        string
	category    string
	description string
	status      string
	portfolio   string
}

func (*editGoalCmd) Name() string     { return "edit-goal" }
func (*editGoalCmd) Synopsis() string { return "edit an existing goal" }
func (*editGoalCmd) Usage() string {
	return `itk edit-goal [-name <name>] [-amount <amount>] [-date <date>] [-c <category>] [-desc <description>] [-status <status>] [-portfolio <portfolio-id>] <goal-id>

  Updates the given fields of a goal. Flags that are not set keep their
  current value. A new target date must be in the future.

`
}

func (c *editGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New goal name.")
	f.StringVar(&c.amount, "amount", "", "New target amount.")
	f.StringVar(&c.date, "date", "", "New target date YYYY-MM-DD.")
	f.StringVar(&c.category, "c", "", "New category.")
	f.StringVar(&c.description, "desc", "", "New description.")
	f.StringVar(&c.status, "status", "", "New status: in_progress, completed or on_hold.")
	f.StringVar(&c.portfolio, "portfolio", "", "New linked portfolio.")
}

func (c *editGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected argument: <goal-id>")
		return subcommands.ExitUsageError
	}

	cfg, store, err := loadApp()
	if err != nil {
		return fail(err)
	}

	var update investrak.GoalUpdate
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			update.Name = &c.name
		case "amount":
			amount, perr := investrak.ParseMoney(c.amount, cfg.Currency)
			if perr != nil {
				err = perr
				return
			}
			update.TargetAmount = &amount
		case "date":
			date, perr := parseDay(c.date)
			if perr != nil {
				err = perr
				return
			}
			update.TargetDate = &date
		case "c":
			update.Category = &c.category
		case "desc":
			update.Description = &c.description
		case "status":
			status, perr := investrak.ParseGoalStatus(c.status)
			if perr != nil {
				err = perr
				return
			}
			update.Status = &status
		case "portfolio":
			update.PortfolioID = &c.portfolio
		}
	})
	if err != nil {
		return fail(err)
	}

	goal, ok, err := store.GetGoal(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(fmt.Errorf("goal %q: %w", f.Arg(0), investrak.ErrNotFound))
	}
	goal, err = update.Apply(goal)
	if err != nil {
		return fail(err)
	}
	if err := store.UpdateGoal(goal); err != nil {
		return fail(err)
	}

	fmt.Printf("Updated goal %q\n", goal.Name)
	return subcommands.ExitSuccess
}
