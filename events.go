package portfolio

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jyotirmoydotdev/portfolio/content"
	"github.com/jyotirmoydotdev/portfolio/nav"
	"github.com/jyotirmoydotdev/portfolio/ui"
	"github.com/jyotirmoydotdev/portfolio/views"
)

// The /ui/ endpoints dispatch one ui.Event each against the visitor's
// stored model. HX requests get the affected fragment back; plain form
// posts are redirected to the page they came from.

func (a *App) handleSelectSection(c echo.Context) error {
	s, err := nav.ParseSection(c.FormValue("section"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, eff := loadModel(c).Update(ui.Select{Section: s})
	if err := saveModel(c, m); err != nil {
		return err
	}
	if !eff.None() {
		if isHX(c) {
			c.Response().Header().Set("HX-Redirect", eff.Navigate)
			return c.NoContent(http.StatusOK)
		}
		return c.Redirect(http.StatusSeeOther, eff.Navigate)
	}
	if isHX(c) {
		return Render(c, views.AppSidebar(a.chrome(c, m)))
	}
	return redirectBack(c)
}

func (a *App) handleSearch(c echo.Context) error {
	m, _ := loadModel(c).Update(ui.Search{Text: c.FormValue("q")})
	if err := saveModel(c, m); err != nil {
		return err
	}
	if isHX(c) {
		return Render(c, views.PaneList(m.Pane(a.Site)))
	}
	return redirectBack(c)
}

func (a *App) handleSidebar(c echo.Context) error {
	open, err := strconv.ParseBool(c.FormValue("open"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "open must be a boolean")
	}
	m := loadModel(c)
	m, _ = m.Update(m.Toggle(open))
	if err := saveModel(c, m); err != nil {
		return err
	}
	if isHX(c) {
		return Render(c, views.AppSidebar(a.chrome(c, m)))
	}
	return redirectBack(c)
}

// handleViewport records the window width. When the page is a post the
// response is its outline panel, shown or hidden for the new width.
func (a *App) handleViewport(c echo.Context) error {
	width, err := strconv.Atoi(strings.TrimSpace(c.FormValue("width")))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "width must be an integer")
	}
	m, _ := loadModel(c).Update(ui.Resize{Width: width})
	if err := saveModel(c, m); err != nil {
		return err
	}
	c.Response().Header().Set("X-Show-Outline", strconv.FormatBool(m.ShowOutline()))
	if !isHX(c) {
		return redirectBack(c)
	}

	section, slug := c.FormValue("section"), c.FormValue("slug")
	var index *content.Index
	switch section {
	case content.BlogsDir:
		index = a.Site.Blogs
	case content.LeetcodeDir:
		index = a.Site.Leetcode
	default:
		return c.NoContent(http.StatusNoContent)
	}
	panel, err := ui.OutlinePanel(index, slug)
	if errors.Is(err, content.ErrNotFound) {
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return err
	}
	return Render(c, views.OutlinePanel(section, slug, panel, m.ShowOutline()))
}

// redirectBack sends the client to the referring page on this site, or home.
func redirectBack(c echo.Context) error {
	target := "/"
	if ref, err := url.Parse(c.Request().Referer()); err == nil && ref.Path != "" {
		if ref.Host == "" || ref.Host == c.Request().Host {
			target = ref.Path
			if ref.RawQuery != "" {
				target += "?" + ref.RawQuery
			}
		}
	}
	// "//evil.example" parses as a host-relative path.
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		target = "/"
	}
	return c.Redirect(http.StatusSeeOther, target)
}
