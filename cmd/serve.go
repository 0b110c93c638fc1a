package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/Pradeep-Sekar/investrak"
	"github.com/Pradeep-Sekar/investrak/web"
)

type serveCmd struct {
	host string
	port int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the local web front end" }
func (*serveCmd) Usage() string {
	return `itk serve [-host <host>] [-port <port>]

  Starts a local web server exposing the portfolios, analytics and goals.
  Host and port default to the configuration file values.

`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.host, "host", "", "Listen host, overrides the configuration.")
	f.IntVar(&c.port, "port", 0, "Listen port, overrides the configuration.")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, store, err := loadApp()
	if err != nil {
		return fail(err)
	}
	if c.host != "" {
		cfg.Web.Host = c.host
	}
	if c.port != 0 {
		cfg.Web.Port = c.port
	}

	analytics := investrak.NewAnalytics(store, cfg.Currency)
	server := web.NewServer(store, analytics, cfg.Currency)
	if err := server.Run(cfg.Web.Addr()); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
