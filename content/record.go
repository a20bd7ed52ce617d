// Package content holds the read-only content index the site renders from:
// blog and leetcode posts, projects, about entries and profile links.
package content

import "strings"

// PostRecord is a single post. URL is its identity.
type PostRecord struct {
	Title       string
	Description string
	URL         string
	Date        string
	Tags        []string
	Outline     []OutlineEntry
	Body        string
}

// ItemTitle returns the title used for search filtering.
func (p PostRecord) ItemTitle() string { return p.Title }

// Slug returns the last segment of the record's URL.
func (p PostRecord) Slug() string {
	u := strings.TrimSuffix(p.URL, "/")
	return u[strings.LastIndex(u, "/")+1:]
}

// OutlineEntry is one node of a post's heading tree.
type OutlineEntry struct {
	Title    string
	ID       string
	Level    int
	Children []OutlineEntry
}

// Project is an entry of the projects list.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Tags        []string `yaml:"tags"`
}

// ItemTitle returns the title used for search filtering.
func (p Project) ItemTitle() string { return p.Title }

// AboutEntry is a link in the about section.
type AboutEntry struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Link is an external profile link shown in the sidebar footer.
type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon"`
}

// Site is everything the views read from.
type Site struct {
	Blogs    *Index
	Leetcode *Index
	Projects []Project
	About    []AboutEntry
	Links    []Link
	Email    string
}
