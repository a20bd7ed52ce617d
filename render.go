package portfolio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/jyotirmoydotdev/portfolio/seo"
	"github.com/jyotirmoydotdev/portfolio/ui"
	"github.com/jyotirmoydotdev/portfolio/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

func (a *App) owner() seo.Owner {
	return seo.Owner{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

func (a *App) page(c echo.Context, meta seo.Metadata, jsonld string) views.Page {
	return views.Page{
		Site:   a.viewConfig(),
		Meta:   meta,
		JSONLD: jsonld,
		CSRF:   CsrfToken(c),
		Path:   c.Request().URL.Path,
	}
}

func (a *App) chrome(c echo.Context, m ui.Model) views.Chrome {
	return views.Chrome{
		Model: m,
		Pane:  m.Pane(a.Site),
		Links: a.Site.Links,
		Email: a.Site.Email,
		Logo:  a.Config.Logo,
		CSRF:  CsrfToken(c),
	}
}

// renderPage renders a full document around main and aside.
func (a *App) renderPage(c echo.Context, m ui.Model, p views.Page, main, aside templ.Component) error {
	return Render(c, views.Layout(p, views.AppSidebar(a.chrome(c, m)), main, aside))
}
