package ui

import (
	"errors"
	"testing"

	"github.com/jyotirmoydotdev/portfolio/content"
	"github.com/jyotirmoydotdev/portfolio/nav"
)

func testSite() *content.Site {
	var posts []content.PostRecord
	for _, s := range []string{"two-sum", "go-channels", "docker-basics", "rust-lifetimes", "nextjs-mdx"} {
		posts = append(posts, content.PostRecord{Title: s, URL: "/blogs/" + s + "/"})
	}
	return &content.Site{
		Blogs: content.NewIndex(posts),
		Projects: []content.Project{
			{Title: "Portfolio", URL: "/p/1"},
			{Title: "Gopher Tools", URL: "/p/2"},
		},
		About: []content.AboutEntry{{Title: "Resume", URL: "/about/resume/"}},
	}
}

func TestUpdateSelectOpensSidebar(t *testing.T) {
	m := NewModel()
	m, _ = m.Update(Resize{Width: 1300})
	m, _ = m.Update(ToggleSidebar{Open: false})
	m, eff := m.Update(Select{Section: nav.Blogs})
	if !eff.None() {
		t.Errorf("wide select navigated: %+v", eff)
	}
	if m.Nav.Active != nav.Blogs || !m.Nav.SecondaryOpen {
		t.Errorf("nav = %+v", m.Nav)
	}
	if !m.Viewport.SidebarOpen() {
		t.Error("select should open the primary sidebar")
	}
	if !m.ShowOutline() {
		t.Error("1300px with sidebar open should show the outline")
	}
}

func TestUpdateSelectOnMobileNavigates(t *testing.T) {
	m := NewModel()
	m, _ = m.Update(Resize{Width: 390})
	m, eff := m.Update(Select{Section: nav.Projects})
	if eff.Navigate != "/projects/" {
		t.Errorf("Navigate = %q", eff.Navigate)
	}
	if m.Nav.MobileOpen || m.PaneOpen() {
		t.Error("mobile select should close the overlay")
	}
}

func TestToggleRoutesByViewport(t *testing.T) {
	m := NewModel()
	if _, ok := m.Toggle(false).(ToggleSidebar); !ok {
		t.Errorf("unmeasured toggle = %T, want ToggleSidebar", m.Toggle(false))
	}
	m, _ = m.Update(Resize{Width: 390})
	if _, ok := m.Toggle(true).(OpenMobile); !ok {
		t.Errorf("narrow toggle = %T, want OpenMobile", m.Toggle(true))
	}
}

func TestOpenMobileDrivesPane(t *testing.T) {
	m, _ := NewModel().Update(Resize{Width: 390})
	if m.PaneOpen() {
		t.Fatal("overlay should start closed")
	}
	m, eff := m.Update(OpenMobile{Open: true})
	if !m.Nav.MobileOpen || !m.PaneOpen() || !eff.None() {
		t.Errorf("open: nav = %+v, effect = %+v", m.Nav, eff)
	}
	if !m.Viewport.SidebarOpen() {
		t.Error("overlay should leave the primary sidebar state alone")
	}
	m, _ = m.Update(OpenMobile{Open: false})
	if m.PaneOpen() {
		t.Error("overlay should close")
	}
}

func TestToggleSidebarDrivesSecondaryPane(t *testing.T) {
	m, _ := NewModel().Update(Resize{Width: 1300})
	if !m.PaneOpen() {
		t.Fatal("pane should start open on wide viewports")
	}
	m, _ = m.Update(ToggleSidebar{Open: false})
	if m.Nav.SecondaryOpen || m.PaneOpen() || m.Viewport.SidebarOpen() {
		t.Errorf("collapsed: nav = %+v", m.Nav)
	}
	m, _ = m.Update(ToggleSidebar{Open: true})
	if !m.Nav.SecondaryOpen || !m.PaneOpen() {
		t.Errorf("reopened: nav = %+v", m.Nav)
	}
}

func TestUpdateResizeDoesNotTouchNav(t *testing.T) {
	m, _ := NewModel().Update(Search{Text: "go"})
	before := m.Nav
	m, _ = m.Update(Resize{Width: 1200})
	if m.Nav != before {
		t.Errorf("resize changed nav: %+v -> %+v", before, m.Nav)
	}
}

func TestUpdateSearchDoesNotRecomputeVisibility(t *testing.T) {
	m, _ := NewModel().Update(Resize{Width: 1400})
	gen := m.Viewport.Generation()
	m, _ = m.Update(Search{Text: "rust"})
	if m.Viewport.Generation() != gen {
		t.Error("search should not recompute the visibility decision")
	}
}

func TestPane(t *testing.T) {
	site := testSite()
	m := NewModel()

	p := m.Pane(site)
	if p.Item.Section != nav.About || len(p.Entries) != 1 {
		t.Fatalf("about pane = %+v", p)
	}

	m, _ = m.Update(Search{Text: "GO"})
	p = m.Pane(site)
	if len(p.Entries) != 1 {
		t.Errorf("about pane should ignore search, got %d entries", len(p.Entries))
	}

	m, _ = m.Update(Select{Section: nav.Blogs})
	p = m.Pane(site)
	if len(p.Entries) != 1 || p.Entries[0].Title != "go-channels" {
		t.Errorf("blogs pane = %+v", p.Entries)
	}

	m, _ = m.Update(Select{Section: nav.Projects})
	p = m.Pane(site)
	if len(p.Entries) != 1 || p.Entries[0].Title != "Gopher Tools" {
		t.Errorf("projects pane = %+v", p.Entries)
	}
	if p.Item.URL != "/projects/" || p.Search != "GO" {
		t.Errorf("pane header = %+v", p)
	}
}

func TestOutlinePanel(t *testing.T) {
	x := testSite().Blogs
	p, err := OutlinePanel(x, "nextjs-mdx")
	if err != nil {
		t.Fatal(err)
	}
	if p.Post.Title != "nextjs-mdx" {
		t.Errorf("Post = %+v", p.Post)
	}
	if len(p.More) != 2 || p.More[0].Title != "two-sum" || p.More[1].Title != "go-channels" {
		t.Errorf("More = %+v", p.More)
	}

	if _, err := OutlinePanel(x, "missing"); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
