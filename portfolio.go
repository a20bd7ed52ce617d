// Package portfolio serves a personal site built with Go, Echo and templ: a
// two-pane navigation sidebar, blog and leetcode posts with an outline panel,
// project and about lists, and the SEO surface around them (metadata,
// sitemap, RSS and preview cards).
//
// Content is read once at startup from a markdown tree and, optionally, a
// read-only SQLite database. Per-visitor view state (active section, search
// text, sidebar and viewport width) lives in a signed cookie session.
package portfolio

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"

	"github.com/jyotirmoydotdev/portfolio/content"
	"github.com/jyotirmoydotdev/portfolio/seo"
)

// App wires together the content index, handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Site   *content.Site

	blogMeta     seo.Generator
	leetcodeMeta seo.Generator
	limiter      *EventLimiter
	customRoutes []func(*App)
	initialized  bool
}

// New creates an App. Config defaults are applied before options run.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	a.blogMeta = seo.Generator{
		BaseURL:  a.Config.URL,
		Section:  content.BlogsDir,
		SiteName: a.Config.Name,
		Handle:   a.Config.Handle,
		Images:   true,
	}
	a.leetcodeMeta = seo.Generator{
		BaseURL:           a.Config.URL,
		Section:           content.LeetcodeDir,
		SiteName:          a.Config.Name,
		Handle:            a.Config.Handle,
		DescriptionPrefix: seo.DefaultGenerator.DescriptionPrefix,
		Images:            true,
	}
	return a
}

// Init loads content and registers middleware and routes. Start calls it;
// tests call it directly and drive a.Echo with httptest.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if a.Site == nil {
		site, err := LoadSite(a.Config)
		if err != nil {
			return fmt.Errorf("portfolio: %w", err)
		}
		a.Site = site
	}
	if a.Site.Blogs == nil {
		a.Site.Blogs = content.NewIndex(nil)
	}
	if a.Site.Leetcode == nil {
		a.Site.Leetcode = content.NewIndex(nil)
	}

	if a.Config.SessionSecret == "" {
		a.Echo.Logger.Warn("portfolio: session_secret not set, view state will reset on restart")
		a.Config.SessionSecret = string(securecookie.GenerateRandomKey(32))
	}

	a.limiter = NewEventLimiter(a.Config.EventLimit, a.Config.EventWindow)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start initializes the app and serves until the listener fails.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("portfolio: %d blogs, %d leetcode posts, listening on %s",
		a.Site.Blogs.Len(), a.Site.Leetcode.Len(), a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// viewport.js ships with the binary; everything else under /public comes
	// from the static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/viewport.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/projects/", a.handleProjects)
	e.GET("/blogs/", a.handleBlogs)
	e.GET("/blogs/:slug/", a.handleBlog)
	e.GET("/leetcode/:slug/", a.handleLeetcode)
	e.GET("/og/:section/:file", a.handlePreviewCard)

	ui := e.Group("/ui", a.limitEvents)
	ui.POST("/section/", a.handleSelectSection)
	ui.POST("/search/", a.handleSearch)
	ui.POST("/viewport/", a.handleViewport)
	ui.POST("/sidebar/", a.handleSidebar)
}

// Close stops background work. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return a.Echo.Close()
}
