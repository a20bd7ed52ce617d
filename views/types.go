package views

import (
	"github.com/jyotirmoydotdev/portfolio/content"
	"github.com/jyotirmoydotdev/portfolio/seo"
	"github.com/jyotirmoydotdev/portfolio/ui"
)

// SiteConfig holds the site-wide values templates read.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Page carries per-request values into the document shell.
type Page struct {
	Site   SiteConfig
	Meta   seo.Metadata
	JSONLD string
	CSRF   string
	Path   string
}

// Chrome is what the sidebar needs to render.
type Chrome struct {
	Model ui.Model
	Pane  ui.Pane
	Links []content.Link
	Email string
	Logo  string
	CSRF  string
}
