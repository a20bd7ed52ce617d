package portfolio

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jyotirmoydotdev/portfolio/content"
	"github.com/jyotirmoydotdev/portfolio/seo"
	"github.com/jyotirmoydotdev/portfolio/ui"
	"github.com/jyotirmoydotdev/portfolio/views"
)

func (a *App) handleHome(c echo.Context) error {
	return a.renderAbout(c, "/")
}

func (a *App) handleAbout(c echo.Context) error {
	return a.renderAbout(c, "/about/")
}

func (a *App) renderAbout(c echo.Context, path string) error {
	m := loadModel(c)
	meta := a.blogMeta.ForPage(a.Config.Name, a.Config.Description, path)
	p := a.page(c, meta, seo.WebsiteJSONLD(a.owner()))
	return a.renderPage(c, m, p, views.About(a.viewConfig(), a.Site.About), nil)
}

func (a *App) handleProjects(c echo.Context) error {
	m := loadModel(c)
	meta := a.blogMeta.ForPage("Projects", "Projects by "+a.Config.Author, "/projects/")
	return a.renderPage(c, m, a.page(c, meta, ""), views.Projects(a.Site.Projects), nil)
}

func (a *App) handleBlogs(c echo.Context) error {
	m := loadModel(c)
	meta := a.blogMeta.ForPage("Blogs", a.Config.Description, "/blogs/")
	return a.renderPage(c, m, a.page(c, meta, ""), views.Posts("Blogs", a.Site.Blogs.Records()), nil)
}

func (a *App) handleBlog(c echo.Context) error {
	return a.renderPost(c, content.BlogsDir, a.Site.Blogs, func(p content.PostRecord) seo.Metadata {
		return a.blogMeta.ForPost(p)
	})
}

// Leetcode pages take their metadata from the slug alone.
func (a *App) handleLeetcode(c echo.Context) error {
	slug := c.Param("slug")
	return a.renderPost(c, content.LeetcodeDir, a.Site.Leetcode, func(content.PostRecord) seo.Metadata {
		return a.leetcodeMeta.Generate(slug)
	})
}

func (a *App) renderPost(c echo.Context, section string, index *content.Index, meta func(content.PostRecord) seo.Metadata) error {
	slug := c.Param("slug")
	panel, err := ui.OutlinePanel(index, slug)
	if errors.Is(err, content.ErrNotFound) {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewConfig()))
	}
	if err != nil {
		return err
	}
	// A partial slug such as /blogs/log/ still resolves; send the client to
	// the post's own URL so only one address is published.
	if panel.Post.Slug() != slug {
		return c.Redirect(http.StatusMovedPermanently, panel.Post.URL)
	}
	m := loadModel(c)
	p := a.page(c, meta(panel.Post), seo.PostingJSONLD(a.owner(), panel.Post))
	aside := views.OutlinePanel(section, slug, panel, m.ShowOutline())
	return a.renderPage(c, m, p, views.Post(panel.Post), aside)
}

func (a *App) handlePreviewCard(c echo.Context) error {
	file := c.Param("file")
	if !strings.HasSuffix(file, ".png") {
		return echo.ErrNotFound
	}
	slug := strings.TrimSuffix(file, ".png")

	var index *content.Index
	switch c.Param("section") {
	case content.BlogsDir:
		index = a.Site.Blogs
	case content.LeetcodeDir:
		index = a.Site.Leetcode
	default:
		return echo.ErrNotFound
	}
	i, err := index.Resolve(slug)
	if errors.Is(err, content.ErrNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	post := index.At(i)
	if post.Slug() != slug {
		return c.Redirect(http.StatusMovedPermanently, "/og/"+c.Param("section")+"/"+post.Slug()+".png")
	}

	c.Response().Header().Set(echo.HeaderContentType, "image/png")
	c.Response().WriteHeader(http.StatusOK)
	return RenderCard(c.Response(), post.Title, a.Config.Name)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Site.Blogs.Records())
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.Config.StaticDir, "favicon.svg"))
}

// handleRobots serves static robots.txt when present and a permissive
// default pointing at the sitemap otherwise.
func (a *App) handleRobots(c echo.Context) error {
	path := filepath.Join(a.Config.StaticDir, "robots.txt")
	if _, err := os.Stat(path); err == nil {
		return c.File(path)
	}
	body := "User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimSuffix(a.Config.URL, "/") + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.viewConfig()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
