package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak/renderer"
)

type goalsCmd struct{}

func (*goalsCmd) Name() string             { return "goals" }
func (*goalsCmd) Synopsis() string         { return "list all financial goals" }
func (*goalsCmd) Usage() string            { return "itk goals\n\n  Prints all financial goals.\n\n" }
func (*goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	goals, err := store.Goals()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.GoalsMarkdown(goals))
	return subcommands.ExitSuccess
}
