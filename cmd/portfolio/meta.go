package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jyotirmoydotdev/portfolio/seo"
)

func addMeta(topLevel *cobra.Command, load configLoader) {
	var useConfig bool
	cmd := &cobra.Command{
		Use:   "meta <slug>",
		Short: "Print the generated page metadata for a leetcode slug as JSON.",
		Example: `
portfolio meta two-sum
portfolio meta two-sum --site
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := seo.DefaultGenerator
			if useConfig {
				cfg, err := load()
				if err != nil {
					return err
				}
				g.BaseURL = cfg.URL
				g.SiteName = cfg.Name
				g.Handle = cfg.Handle
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(g.Generate(args[0]))
		},
	}
	cmd.Flags().BoolVar(&useConfig, "site", false, "Use the configured URL, name and handle instead of the defaults.")
	topLevel.AddCommand(cmd)
}
