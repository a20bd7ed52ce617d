// Package nav holds the navigation state of the sidebar: which top-level
// section is active and the search text applied to its list.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSection is returned when a label names no section.
var ErrUnknownSection = errors.New("nav: unknown section")

// Section identifies a top-level navigation category.
type Section int

const (
	About Section = iota
	Projects
	Blogs
)

var sectionLabels = [...]string{
	About:    "About",
	Projects: "Projects",
	Blogs:    "Blogs",
}

// String returns the display label.
func (s Section) String() string {
	if s < About || s > Blogs {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionLabels[s]
}

// Key returns the lowercase label used in forms and URLs.
func (s Section) Key() string {
	return strings.ToLower(s.String())
}

// Searchable reports whether the section's list honours the search text.
func (s Section) Searchable() bool {
	return s == Projects || s == Blogs
}

// ParseSection resolves a label case-insensitively.
func ParseSection(label string) (Section, error) {
	l := strings.TrimSpace(label)
	for s, name := range sectionLabels {
		if strings.EqualFold(l, name) {
			return Section(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSection, label)
}

// Item is an entry of the icon rail.
type Item struct {
	Section Section
	Title   string
	URL     string
	Icon    string
}

// DefaultItems returns the fixed rail, in display order. The first item is
// active on a fresh view.
func DefaultItems() []Item {
	return []Item{
		{Section: About, Title: "About", URL: "/about/", Icon: "user"},
		{Section: Projects, Title: "Projects", URL: "/projects/", Icon: "folder"},
		{Section: Blogs, Title: "Blogs", URL: "/blogs/", Icon: "book"},
	}
}

// ItemFor returns the rail item of s.
func ItemFor(s Section) Item {
	for _, it := range DefaultItems() {
		if it.Section == s {
			return it
		}
	}
	return DefaultItems()[0]
}
