package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
)

type addInvestmentCmd struct {
	date     string
	category string
	notes    string
}

func (*addInvestmentCmd) Name() string     { return "add-investment" }
func (*addInvestmentCmd) Synopsis() string { return "add an investment to a portfolio" }
func (*addInvestmentCmd) Usage() string {
	return `itk add-investment [-date <date>] [-c <category>] [-n <notes>] <portfolio-id> <symbol> <type> <quantity> <price>

  Adds an investment position to an existing portfolio. The type is one of
  stock, etf or mutual_fund. The purchase date defaults to today.

Usage Examples:
$ itk add-investment -c Technology 3f6c... AAPL stock 10 150.50

`
}

func (c *addInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Purchase date (YYYY-MM-DD), defaults to today.")
	f.StringVar(&c.category, "c", "", "Optional investment category.")
	f.StringVar(&c.notes, "n", "", "Optional notes.")
}

func (c *addInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 5 {
		fmt.Fprintln(os.Stderr, "Error: expected arguments: <portfolio-id> <symbol> <type> <quantity> <price>")
		return subcommands.ExitUsageError
	}

	typ, err := investrak.ParseHoldingType(f.Arg(2))
	if err != nil {
		return fail(err)
	}
	quantity, err := strconv.ParseInt(f.Arg(3), 10, 64)
	if err != nil {
		return fail(fmt.Errorf("invalid quantity %q: %w", f.Arg(3), err))
	}

	var purchased time.Time
	if c.date != "" {
		purchased, err = parseDay(c.date)
		if err != nil {
			return fail(err)
		}
	}

	cfg, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	price, err := investrak.ParseMoney(f.Arg(4), cfg.Currency)
	if err != nil {
		return fail(err)
	}

	holding, err := investrak.NewHolding(f.Arg(0), f.Arg(1), typ, quantity, price, purchased, c.category, c.notes)
	if err != nil {
		return fail(err)
	}
	holding, err = store.SaveHolding(holding)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Added %s investment %s (id %s)\n", holding.Type, holding.Symbol, holding.ID)
	return subcommands.ExitSuccess
}
