package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/jyotirmoydotdev/portfolio"
	"github.com/jyotirmoydotdev/portfolio/content"
)

func addPosts(topLevel *cobra.Command, load configLoader) {
	var section string
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List the posts of a section, newest first.",
		Example: `
portfolio posts
portfolio posts --section leetcode
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			printPosts(cmd, index.Records(), time.Now())
			return nil
		},
	}
	cmd.Flags().StringVarP(&section, "section", "s", content.BlogsDir, "Section to list: blogs or leetcode.")
	topLevel.AddCommand(cmd)
}

func sectionIndex(site *content.Site, section string) (*content.Index, error) {
	switch strings.ToLower(section) {
	case content.BlogsDir:
		return site.Blogs, nil
	case content.LeetcodeDir:
		return site.Leetcode, nil
	default:
		return nil, fmt.Errorf("unknown section %q", section)
	}
}

func printPosts(cmd *cobra.Command, posts []content.PostRecord, now time.Time) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("Title"), bold.Sprint("URL"), bold.Sprint("Published"), bold.Sprint("Headings"))
	for _, p := range posts {
		published := p.Date
		if t, err := time.Parse("2006-01-02", p.Date); err == nil {
			published = humanize.RelTime(t, now, "ago", "from now")
		}
		tbl.AddRow(p.Title, faint.Sprint(p.URL), published, humanize.Comma(int64(countHeadings(p.Outline))))
	}
	fmt.Fprintln(cmd.OutOrStdout(), tbl)
	fmt.Fprintf(cmd.OutOrStdout(), "%s posts\n", humanize.Comma(int64(len(posts))))
}

func countHeadings(entries []content.OutlineEntry) int {
	n := len(entries)
	for _, e := range entries {
		n += countHeadings(e.Children)
	}
	return n
}
