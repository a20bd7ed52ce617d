// Package seo builds page metadata for search engines and social previews.
package seo

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jyotirmoydotdev/portfolio/content"
)

// Metadata is everything the <head> of a page carries about it.
type Metadata struct {
	Title     string    `json:"title"`
	Canonical string    `json:"canonical"`
	OpenGraph OpenGraph `json:"openGraph"`
	Twitter   Twitter   `json:"twitter"`
}

type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	SiteName    string `json:"siteName"`
	Type        string `json:"type"` // "website" or "article"
	Image       string `json:"image,omitempty"`
}

type Twitter struct {
	Card        string `json:"card"`
	Site        string `json:"site"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
	Image       string `json:"image,omitempty"`
}

// Generator derives metadata from a slug under one section of the site.
type Generator struct {
	BaseURL           string
	Section           string
	SiteName          string
	Handle            string
	DescriptionPrefix string
	Images            bool // reference /og/<section>/<slug>.png preview cards
}

// DefaultGenerator produces metadata for leetcode question pages.
var DefaultGenerator = Generator{
	BaseURL:           "https://jyotirmoy.dev",
	Section:           "leetcode",
	SiteName:          "Jyotirmoy Barman - Blogs",
	Handle:            "@jyotirmoydotdev",
	DescriptionPrefix: "Read the leetcode question ",
}

// Generate returns DefaultGenerator.Generate(slug).
func Generate(slug string) Metadata {
	return DefaultGenerator.Generate(slug)
}

// Generate builds the metadata for slug. Same slug, same result.
func (g Generator) Generate(slug string) Metadata {
	title := Capitalize(slug)
	url := strings.TrimSuffix(g.BaseURL, "/") + "/" + g.Section + "/" + slug
	description := g.DescriptionPrefix + title
	m := Metadata{
		Title:     title,
		Canonical: url,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         url,
			SiteName:    g.SiteName,
			Type:        "website",
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Site:        g.Handle,
			Title:       title,
			Description: description,
			Creator:     g.Handle,
		},
	}
	if g.Images {
		m.setImage(ImageURL(g.BaseURL, g.Section, slug))
	}
	return m
}

// ForPost builds article metadata from a content record.
func (g Generator) ForPost(p content.PostRecord) Metadata {
	url := strings.TrimSuffix(g.BaseURL, "/") + p.URL
	m := Metadata{
		Title:     p.Title,
		Canonical: url,
		OpenGraph: OpenGraph{
			Title:       p.Title,
			Description: p.Description,
			URL:         url,
			SiteName:    g.SiteName,
			Type:        "article",
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Site:        g.Handle,
			Title:       p.Title,
			Description: p.Description,
			Creator:     g.Handle,
		},
	}
	if g.Images {
		section, slug := splitURL(p.URL)
		m.setImage(ImageURL(g.BaseURL, section, slug))
	}
	return m
}

// ForPage builds website metadata for a listing page at path.
func (g Generator) ForPage(title, description, path string) Metadata {
	url := strings.TrimSuffix(g.BaseURL, "/") + path
	return Metadata{
		Title:     title,
		Canonical: url,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         url,
			SiteName:    g.SiteName,
			Type:        "website",
		},
		Twitter: Twitter{
			Card:        "summary",
			Site:        g.Handle,
			Title:       title,
			Description: description,
			Creator:     g.Handle,
		},
	}
}

func (m *Metadata) setImage(url string) {
	m.OpenGraph.Image = url
	m.Twitter.Image = url
}

// ImageURL returns the preview card URL of a post.
func ImageURL(base, section, slug string) string {
	return strings.TrimSuffix(base, "/") + "/og/" + section + "/" + slug + ".png"
}

// splitURL turns "/blogs/two-sum/" into ("blogs", "two-sum").
func splitURL(u string) (string, string) {
	parts := strings.Split(strings.Trim(u, "/"), "/")
	if len(parts) < 2 {
		return "", strings.Join(parts, "")
	}
	return parts[0], parts[len(parts)-1]
}

// Capitalize upper-cases the first letter of s and leaves the rest as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
