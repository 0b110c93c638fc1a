package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
)

type editInvestmentCmd struct {
	quantity int64
	price    string
	category string
	notes    string
}

func (*editInvestmentCmd) Name() string     { return "edit-investment" }
func (*editInvestmentCmd) Synopsis() string { return "edit an existing investment" }
func (*editInvestmentCmd) Usage() string {
	return `itk edit-investment [-quantity <n>] [-price <amount>] [-c <category>] [-n <notes>] <investment-id>

  Updates the given fields of an investment. Flags that are not set keep
  their current value.

`
}

func (c *editInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.quantity, "quantity", 0, "New number of shares or units.")
	f.StringVar(&c.price, "price", "", "New purchase price per unit.")
	f.StringVar(&c.category, "c", "", "New category.")
	f.StringVar(&c.notes, "n", "", "New notes.")
}

func (c *editInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected argument: <investment-id>")
		return subcommands.ExitUsageError
	}

	cfg, store, err := loadApp()
	if err != nil {
		return fail(err)
	}

	// Only flags the user actually set become part of the update.
	var update investrak.HoldingUpdate
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "quantity":
			update.Quantity = &c.quantity
		case "price":
			price, perr := investrak.ParseMoney(c.price, cfg.Currency)
			if perr != nil {
				err = perr
				return
			}
			update.PurchasePrice = &price
		case "c":
			update.Category = &c.category
		case "n":
			update.Notes = &c.notes
		}
	})
	if err != nil {
		return fail(err)
	}

	holding, ok, err := store.GetHolding(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(fmt.Errorf("investment %q: %w", f.Arg(0), investrak.ErrNotFound))
	}
	holding, err = update.Apply(holding)
	if err != nil {
		return fail(err)
	}
	if err := store.UpdateHolding(holding); err != nil {
		return fail(err)
	}

	fmt.Printf("Updated investment %s (%s)\n", holding.ID, holding.Symbol)
	return subcommands.ExitSuccess
}
