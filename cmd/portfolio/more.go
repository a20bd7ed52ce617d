package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/jyotirmoydotdev/portfolio"
	"github.com/jyotirmoydotdev/portfolio/content"
)

func addMore(topLevel *cobra.Command, load configLoader) {
	var section string
	cmd := &cobra.Command{
		Use:   "more <slug>",
		Short: "Show the posts offered after a post.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			site, err := portfolio.LoadSite(cfg)
			if err != nil {
				return err
			}
			index, err := sectionIndex(site, section)
			if err != nil {
				return err
			}
			more, err := index.More(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			printMore(cmd, more)
			return nil
		},
	}
	cmd.Flags().StringVarP(&section, "section", "s", content.BlogsDir, "Section to search: blogs or leetcode.")
	topLevel.AddCommand(cmd)
}

func printMore(cmd *cobra.Command, posts []content.PostRecord) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	for _, p := range posts {
		tbl.AddRow(bold.Sprint(p.Title), p.URL)
		tbl.AddRow("", p.Description)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tbl)
}
