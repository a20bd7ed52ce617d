// Package ui composes navigation state, the viewport and the content index
// into what the sidebar and the outline panel render.
package ui

import (
	"github.com/jyotirmoydotdev/portfolio/content"
	"github.com/jyotirmoydotdev/portfolio/layout"
	"github.com/jyotirmoydotdev/portfolio/nav"
)

// Model is the state container of one visitor's view.
type Model struct {
	Nav      nav.State
	Viewport layout.Viewport
}

// NewModel returns the state of a freshly mounted view: unmeasured, with the
// primary sidebar and its list pane open.
func NewModel() Model {
	s := nav.NewState()
	s.SecondaryOpen = true
	return Model{Nav: s, Viewport: layout.RestoreViewport(0, true)}
}

// Event is a view input.
type Event interface {
	isEvent()
}

// Resize reports the window width.
type Resize struct{ Width int }

// ToggleSidebar opens or collapses the primary sidebar on wide viewports.
type ToggleSidebar struct{ Open bool }

// OpenMobile shows or hides the overlay sidebar on narrow viewports.
type OpenMobile struct{ Open bool }

// Select activates a section from the icon rail.
type Select struct{ Section nav.Section }

// Search replaces the list filter text.
type Search struct{ Text string }

func (Resize) isEvent()        {}
func (ToggleSidebar) isEvent() {}
func (OpenMobile) isEvent()    {}
func (Select) isEvent()        {}
func (Search) isEvent()        {}

// Update applies ev and returns the new model and any navigation to perform.
func (m Model) Update(ev Event) (Model, nav.Effect) {
	var eff nav.Effect
	switch ev := ev.(type) {
	case Resize:
		m.Viewport = m.Viewport.Resize(ev.Width)
	case ToggleSidebar:
		m.Viewport = m.Viewport.SetSidebarOpen(ev.Open)
		m.Nav, eff = nav.Reduce(m.Nav, nav.OpenSecondary{Open: ev.Open})
	case OpenMobile:
		m.Nav, eff = nav.Reduce(m.Nav, nav.OpenMobile{Open: ev.Open})
	case Select:
		m.Nav, eff = nav.Reduce(m.Nav, nav.SelectSection{Section: ev.Section, Mobile: m.Viewport.Mobile()})
		m.Viewport = m.Viewport.SetSidebarOpen(true)
	case Search:
		m.Nav, eff = nav.Reduce(m.Nav, nav.SetSearch{Text: ev.Text})
	}
	return m, eff
}

// Toggle returns the event the sidebar toggle sends for open: the overlay on
// narrow viewports, the primary sidebar otherwise.
func (m Model) Toggle(open bool) Event {
	if m.Viewport.Mobile() {
		return OpenMobile{Open: open}
	}
	return ToggleSidebar{Open: open}
}

// PaneOpen reports whether the list pane renders.
func (m Model) PaneOpen() bool {
	if m.Viewport.Mobile() {
		return m.Nav.MobileOpen
	}
	return m.Nav.SecondaryOpen
}

// ShowOutline reports whether the outline panel has room to render.
func (m Model) ShowOutline() bool {
	return m.Viewport.ShowAuxiliary()
}

// Entry is one row of the secondary pane.
type Entry struct {
	Title       string
	Description string
	URL         string
	Date        string
	Tags        []string
}

// Pane is the secondary sidebar pane for the active section.
type Pane struct {
	Item    nav.Item
	Search  string
	Entries []Entry
}

// Pane lists the active section's entries, filtered by the search text
// where the section supports it.
func (m Model) Pane(site *content.Site) Pane {
	p := Pane{Item: nav.ItemFor(m.Nav.Active), Search: m.Nav.Search}
	if site == nil {
		return p
	}
	p.Entries = SectionEntries(site, m.Nav.Active, m.Nav.Search)
	return p
}

// SectionEntries returns the rows of section s for search.
func SectionEntries(site *content.Site, s nav.Section, search string) []Entry {
	var out []Entry
	switch s {
	case nav.About:
		for _, a := range site.About {
			out = append(out, Entry{Title: a.Title, URL: a.URL})
		}
	case nav.Projects:
		for _, pr := range nav.Filter(site.Projects, search) {
			out = append(out, Entry{Title: pr.Title, Description: pr.Description, URL: pr.URL, Tags: pr.Tags})
		}
	case nav.Blogs:
		for _, b := range nav.Filter(site.Blogs.Records(), search) {
			out = append(out, Entry{Title: b.Title, Description: b.Description, URL: b.URL, Date: b.Date, Tags: b.Tags})
		}
	}
	return out
}

// Panel is the outline panel of a post page.
type Panel struct {
	Post content.PostRecord
	More []content.PostRecord
}

// OutlinePanel resolves slug in index and selects the posts shown after it.
func OutlinePanel(index *content.Index, slug string) (Panel, error) {
	i, err := index.Resolve(slug)
	if err != nil {
		return Panel{}, err
	}
	return Panel{
		Post: index.At(i),
		More: index.MorePosts(i, content.MorePostsCount),
	}, nil
}
