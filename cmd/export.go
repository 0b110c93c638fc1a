package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
	"github.com/Pradeep-Sekar/investrak/export"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a portfolio report" }
func (*exportCmd) Usage() string {
	return `itk export [-format csv|pdf|png] [-o <file>] <portfolio-id>

  Writes an analytics report for the portfolio. csv and pdf contain the
  investment and performance metrics; png renders the value history chart
  from the portfolio's snapshots. Output goes to stdout unless -o is given.

Usage Examples:
$ itk export -format pdf -o report.pdf 3f6c...

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Report format: csv, pdf or png.")
	f.StringVar(&c.output, "o", "", "Output file, defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected argument: <portfolio-id>")
		return subcommands.ExitUsageError
	}

	cfg, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	portfolio, ok, err := store.GetPortfolio(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(fmt.Errorf("portfolio %q: %w", f.Arg(0), investrak.ErrNotFound))
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
	}

	exporter := export.NewExporter(investrak.NewAnalytics(store, cfg.Currency))
	switch c.format {
	case "csv":
		err = exporter.WriteCSV(out, portfolio.ID)
	case "pdf":
		err = exporter.WritePDF(out, portfolio.ID)
	case "png":
		snapshots, serr := store.Snapshots(portfolio.ID, nil, nil)
		if serr != nil {
			return fail(serr)
		}
		png, rerr := export.RenderValueChart(portfolio.Name, snapshots)
		if rerr != nil {
			return fail(rerr)
		}
		_, err = out.Write(png)
	default:
		return fail(fmt.Errorf("unknown format %q, expected csv, pdf or png", c.format))
	}
	if err != nil {
		return fail(err)
	}

	if c.output != "" {
		fmt.Printf("Wrote %s report to %s\n", c.format, c.output)
	}
	return subcommands.ExitSuccess
}
