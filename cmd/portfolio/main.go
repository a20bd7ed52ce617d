package main

import (
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/jyotirmoydotdev/portfolio"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRoot().Execute(); err != nil {
		log.Fatalf("portfolio: %v", err)
	}
}

func newRoot() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve and inspect a personal blog and portfolio site.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "portfolio.yaml", "Config file; PORTFOLIO_* variables override it.")

	load := func() (portfolio.SiteConfig, error) {
		return portfolio.LoadConfig(configPath)
	}
	addServe(cmd, load)
	addPosts(cmd, load)
	addMore(cmd, load)
	addMeta(cmd, load)
	addVersion(cmd)
	return cmd
}

type configLoader func() (portfolio.SiteConfig, error)

func addVersion(topLevel *cobra.Command) {
	topLevel.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the portfolio version.",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "portfolio %s\n", version)
		},
	})
}
