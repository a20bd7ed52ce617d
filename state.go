package portfolio

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/jyotirmoydotdev/portfolio/layout"
	"github.com/jyotirmoydotdev/portfolio/nav"
	"github.com/jyotirmoydotdev/portfolio/ui"
)

const viewSession = "view_state"

// Session value keys.
const (
	keyWidth     = "width"
	keySidebar   = "sidebar"
	keySection   = "section"
	keySearch    = "search"
	keySecondary = "secondary"
	keyMobile    = "mobile"
)

// loadModel restores the visitor's view from the session. A missing or
// unreadable session yields a fresh model.
func loadModel(c echo.Context) ui.Model {
	m := ui.NewModel()
	sess, err := session.Get(viewSession, c)
	if err != nil || sess.IsNew {
		return m
	}
	width, _ := sess.Values[keyWidth].(int)
	open, ok := sess.Values[keySidebar].(bool)
	if !ok {
		open = true
	}
	m.Viewport = layout.RestoreViewport(width, open)
	if label, ok := sess.Values[keySection].(string); ok {
		if s, err := nav.ParseSection(label); err == nil {
			m.Nav.Active = s
		}
	}
	m.Nav.Search, _ = sess.Values[keySearch].(string)
	if secondary, ok := sess.Values[keySecondary].(bool); ok {
		m.Nav.SecondaryOpen = secondary
	}
	m.Nav.MobileOpen, _ = sess.Values[keyMobile].(bool)
	return m
}

// saveModel writes m back. It must run before the response body is written.
func saveModel(c echo.Context, m ui.Model) error {
	sess, err := session.Get(viewSession, c)
	if sess == nil {
		return err
	}
	if err != nil {
		// Undecodable cookie from an old secret; overwrite it.
		c.Logger().Debugf("view state: %v", err)
	}
	sess.Values[keyWidth] = m.Viewport.Width()
	sess.Values[keySidebar] = m.Viewport.SidebarOpen()
	sess.Values[keySection] = m.Nav.Active.Key()
	sess.Values[keySearch] = m.Nav.Search
	sess.Values[keySecondary] = m.Nav.SecondaryOpen
	sess.Values[keyMobile] = m.Nav.MobileOpen
	return sess.Save(c.Request(), c.Response())
}
