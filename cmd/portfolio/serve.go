package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/jyotirmoydotdev/portfolio"
)

func addServe(topLevel *cobra.Command, load configLoader) {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server.",
		Example: `
portfolio serve
PORTFOLIO_CONTENT_DIR=./site portfolio serve --addr :8080
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			app := portfolio.New(cfg)
			app.Echo.Logger.SetLevel(log.INFO)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- app.Start() }()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			app.Echo.Logger.Info("portfolio: shutting down")
			shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := app.Echo.Shutdown(shutdown); err != nil {
				return err
			}
			return app.Close()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides the config.")
	topLevel.AddCommand(cmd)
}
