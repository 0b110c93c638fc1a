package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
)

type snapshotCmd struct{}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record a snapshot of a portfolio's value" }
func (*snapshotCmd) Usage() string {
	return `itk snapshot <portfolio-id>

  Records the portfolio's current total value and invested amount as a
  point in its history, used by the performance command.

`
}
func (*snapshotCmd) SetFlags(f *flag.FlagSet) {}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected argument: <portfolio-id>")
		return subcommands.ExitUsageError
	}

	cfg, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	if _, ok, err := store.GetPortfolio(f.Arg(0)); err != nil {
		return fail(err)
	} else if !ok {
		return fail(fmt.Errorf("portfolio %q: %w", f.Arg(0), investrak.ErrNotFound))
	}

	snap, err := investrak.NewAnalytics(store, cfg.Currency).TakeSnapshot(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	snap, err = store.SaveSnapshot(snap)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded snapshot at %s: value %s, invested %s\n", snap.TakenAt.Format(dayFormat), snap.TotalValue, snap.InvestedAmount)
	return subcommands.ExitSuccess
}
