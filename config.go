package portfolio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jyotirmoydotdev/portfolio/content"
)

// EnvPrefix prefixes every environment override, e.g. PORTFOLIO_ADDR.
const EnvPrefix = "PORTFOLIO_"

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Site name (default "Jyotirmoy Barman - Blogs")
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Site description for RSS and meta tags
	Author      string `koanf:"author"`      // Author name for JSON-LD and the about page
	Handle      string `koanf:"handle"`      // Twitter handle for social cards
	Logo        string `koanf:"logo"`        // Sidebar logo path

	Addr       string `koanf:"addr"`        // Listen address (default ":3000")
	ContentDir string `koanf:"content_dir"` // Markdown tree (default "site")
	ContentDB  string `koanf:"content_db"`  // Optional read-only SQLite source for blogs
	StaticDir  string `koanf:"static_dir"`  // Static assets (default "public")

	SessionSecret string `koanf:"session_secret"` // View-state cookie secret; random when empty
	CookieSecure  bool   `koanf:"cookie_secure"`  // Set true for HTTPS

	EventLimit  int           `koanf:"event_limit"`  // UI events per IP per window (default 120)
	EventWindow time.Duration `koanf:"event_window"` // default 1m
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Jyotirmoy Barman - Blogs"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Handle == "" {
		c.Handle = "@jyotirmoydotdev"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "site"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.EventLimit <= 0 {
		c.EventLimit = 120
	}
	if c.EventWindow <= 0 {
		c.EventWindow = time.Minute
	}
}

// LoadConfig reads path (optional, YAML) and overlays PORTFOLIO_* variables.
// A missing file is not an error.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// PORTFOLIO_CONTENT_DIR -> content_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// LoadSite loads the content index the config points at. When ContentDB is
// set, blogs come from the database and everything else from ContentDir.
func LoadSite(cfg SiteConfig) (*content.Site, error) {
	site, err := content.LoadDir(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.ContentDir, err)
	}
	if cfg.ContentDB == "" {
		return site, nil
	}
	store, err := content.OpenStore(cfg.ContentDB)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	blogs, err := store.Posts()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.ContentDB, err)
	}
	site.Blogs = blogs
	return site, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the static asset directory.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithSite uses site instead of loading content from the config.
func WithSite(site *content.Site) Option {
	return func(a *App) {
		a.Site = site
	}
}
