// Command admin is the terminal admin panel for the Federal Parts catalogue.
// It talks to the API over HTTP and keeps its token and view preferences in
// a session file under the user's config directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/config"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.LoadConsole()
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store, err := session.OpenFile(cfg.ConfigDir)
	if err != nil {
		return err
	}
	log.Debug("[admin.session]", zap.String("path", store.Path()))

	a, err := newApp(cfg, log, store, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		args = append(args, "--help")
	}
	return rootCommand(a).Run(ctx, args)
}

func rootCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "fpadmin",
		Usage: "Federal Parts catalogue admin console",
		Commands: []*cli.Command{
			loginCommand(a),
			logoutCommand(a),
			whoamiCommand(a),
			dashboardCommand(a),
			productScreen(a).command(a),
			categoryScreen(a).command(a),
			brandScreen(a).command(a),
		},
	}
}
