package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak/renderer"
)

type portfoliosCmd struct{}

func (*portfoliosCmd) Name() string     { return "portfolios" }
func (*portfoliosCmd) Synopsis() string { return "list all portfolios" }
func (*portfoliosCmd) Usage() string {
	return `itk portfolios

  Lists all portfolios in storage order.
`
}

func (*portfoliosCmd) SetFlags(*flag.FlagSet) {}

func (*portfoliosCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	portfolios, err := store.Portfolios()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PortfoliosMarkdown(portfolios))
	return subcommands.ExitSuccess
}
