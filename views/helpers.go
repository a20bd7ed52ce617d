// Package views renders the site's HTML as templ components.
package views

import "github.com/jyotirmoydotdev/portfolio/content"

// pageTitle is "Title | Site", or just the site name for untitled pages.
func pageTitle(p Page) string {
	title := p.Meta.Title
	if title == "" {
		return p.Site.Name
	}
	if p.Site.Name != "" && title != p.Site.Name {
		title += " | " + p.Site.Name
	}
	return title
}

func sectionTitle(section string) string {
	switch section {
	case content.LeetcodeDir:
		return "Questions"
	default:
		return "Blogs"
	}
}
