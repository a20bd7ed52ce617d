package portfolio

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jyotirmoydotdev/portfolio/content"
)

const testToken = "test-csrf-token"

func testSite() *content.Site {
	return &content.Site{
		Blogs: content.NewIndex([]content.PostRecord{
			content.NewRecord("blogs", "go-channels", "Go Channels", "Pipes between goroutines", "2024-03-01", []string{"go"}, "## Unbuffered\n\ntext\n\n## Buffered\n"),
			content.NewRecord("blogs", "docker-basics", "Docker Basics", "Containers", "2024-02-01", nil, "body"),
			content.NewRecord("blogs", "rust-lifetimes", "Rust Lifetimes", "Borrowing", "2024-01-01", nil, "body"),
		}),
		Leetcode: content.NewIndex([]content.PostRecord{
			content.NewRecord("leetcode", "two-sum", "Two Sum", "Hash map", "2024-01-02", nil, "## Approach\n"),
		}),
		Projects: []content.Project{{Title: "Portfolio", Description: "This site", URL: "https://github.com/jyotirmoydotdev/portfolio"}},
		About:    []content.AboutEntry{{Title: "Resume", URL: "/about/resume/"}},
		Links:    []content.Link{{Name: "GitHub", URL: "https://github.com/jyotirmoydotdev", Icon: "github"}},
		Email:    "me@example.com",
	}
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	cfg := SiteConfig{
		Name:          "Test Site",
		URL:           "https://example.com",
		Author:        "Jyotirmoy",
		SessionSecret: "0123456789abcdef0123456789abcdef",
		StaticDir:     t.TempDir(),
	}
	a := New(cfg, append([]Option{WithSite(testSite())}, opts...)...)
	if err := a.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

// client carries cookies between requests like a browser would.
type client struct {
	t       *testing.T
	a       *App
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, a *App) *client {
	return &client{t: t, a: a, cookies: map[string]*http.Cookie{
		"_csrf": {Name: "_csrf", Value: testToken},
	}}
}

func (cl *client) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	cl.a.Echo.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		cl.cookies[c.Name] = c
	}
	return rec
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (cl *client) post(path string, form url.Values, hx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRF-Token", testToken)
	req.Header.Set("Referer", "http://example.com/blogs/go-channels/")
	if hx {
		req.Header.Set("HX-Request", "true")
	}
	return cl.do(req)
}

func TestPages(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"Resume", `<link rel="canonical" href="https://example.com/">`, `"@type":"WebSite"`}},
		{"/about/", []string{"Jyotirmoy", "Resume"}},
		{"/projects/", []string{"Portfolio", "This site"}},
		{"/blogs/", []string{"Go Channels", "Docker Basics", "Rust Lifetimes"}},
		{"/blogs/go-channels/", []string{"Go Channels", `property="og:type" content="article"`, `id="outline"`, `"@type":"BlogPosting"`}},
		{"/leetcode/two-sum/", []string{"<title>Two-sum | Test Site</title>", `href="https://example.com/leetcode/two-sum"`, "Read the leetcode question Two-sum"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := cl.get(tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			body := rec.Body.String()
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestPostNotFound(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	for _, path := range []string{"/blogs/nope/", "/leetcode/nope/"} {
		rec := cl.get(path)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Not found") {
			t.Errorf("%s: expected not found page", path)
		}
	}
}

func TestPartialSlugRedirectsToPost(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	tests := []struct {
		path string
		want string
	}{
		{"/blogs/log/", "/blogs/go-channels/"},
		{"/blogs/s/", "/blogs/go-channels/"},
		{"/blogs/lifetimes/", "/blogs/rust-lifetimes/"},
		{"/leetcode/code/", "/leetcode/two-sum/"},
		{"/og/leetcode/code.png", "/og/leetcode/two-sum.png"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := cl.get(tt.path)
			if rec.Code != http.StatusMovedPermanently {
				t.Fatalf("status = %d", rec.Code)
			}
			if got := rec.Header().Get("Location"); got != tt.want {
				t.Errorf("Location = %q, want %q", got, tt.want)
			}
		})
	}
	body := cl.get("/leetcode/two-sum/").Body.String()
	if strings.Contains(body, "/leetcode/code") {
		t.Error("canonical should name the post's own slug")
	}
}

func TestOutlineHiddenUntilMeasured(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	body := cl.get("/blogs/go-channels/").Body.String()
	if !strings.Contains(body, `data-slug="go-channels" hidden></aside>`) {
		t.Error("outline should be hidden before the width is known")
	}

	cl.post("/ui/viewport/", url.Values{"width": {"1300"}}, false)
	body = cl.get("/blogs/go-channels/").Body.String()
	if !strings.Contains(body, "More Blogs") || !strings.Contains(body, "Unbuffered") {
		t.Error("outline should render at 1300px with the sidebar open")
	}
}

func TestViewportEndpoint(t *testing.T) {
	tests := []struct {
		width string
		show  string
	}{
		{"1300", "true"},
		{"1200", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.width, func(t *testing.T) {
			cl := newClient(t, newTestApp(t))
			rec := cl.post("/ui/viewport/", url.Values{"width": {tt.width}, "section": {"blogs"}, "slug": {"rust-lifetimes"}}, true)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if got := rec.Header().Get("X-Show-Outline"); got != tt.show {
				t.Errorf("X-Show-Outline = %q, want %q", got, tt.show)
			}
			shown := strings.Contains(rec.Body.String(), "More Blogs")
			if shown != (tt.show == "true") {
				t.Errorf("panel shown = %v\n%s", shown, rec.Body.String())
			}
		})
	}
}

func TestViewportEndpointRejectsBadWidth(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	if rec := cl.post("/ui/viewport/", url.Values{"width": {"wide"}}, true); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestSelectSection(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	rec := cl.post("/ui/section/", url.Values{"section": {"blogs"}}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `value="blogs" class="rail-item rail-item-active"`) {
		t.Errorf("blogs not active:\n%s", body)
	}
	if !strings.Contains(body, "Rust Lifetimes") {
		t.Error("pane should list blogs")
	}
	if _, ok := cl.cookies[viewSession]; !ok {
		t.Error("view state was not stored")
	}
}

func TestSelectSectionUnknown(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	if rec := cl.post("/ui/section/", url.Values{"section": {"gallery"}}, true); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestSelectSectionOnMobileNavigates(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	cl.post("/ui/viewport/", url.Values{"width": {"390"}}, true)

	rec := cl.post("/ui/section/", url.Values{"section": {"projects"}}, true)
	if got := rec.Header().Get("HX-Redirect"); got != "/projects/" {
		t.Errorf("HX-Redirect = %q", got)
	}

	rec = cl.post("/ui/section/", url.Values{"section": {"blogs"}}, false)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/blogs/" {
		t.Errorf("no-JS mobile select: %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestSearchFiltersPane(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	cl.post("/ui/section/", url.Values{"section": {"blogs"}}, true)

	rec := cl.post("/ui/search/", url.Values{"q": {"DOCKER"}}, true)
	body := rec.Body.String()
	if !strings.Contains(body, "Docker Basics") || strings.Contains(body, "Rust Lifetimes") {
		t.Errorf("search fragment:\n%s", body)
	}

	rec = cl.post("/ui/search/", url.Values{"q": {"rust"}}, false)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/blogs/go-channels/" {
		t.Errorf("redirect back: %d %q", rec.Code, rec.Header().Get("Location"))
	}
	body = cl.get("/about/").Body.String()
	if !strings.Contains(body, `value="rust"`) || strings.Contains(body, "Docker Basics") {
		t.Error("search text should persist across pages")
	}
}

func TestSidebarToggle(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	rec := cl.post("/ui/sidebar/", url.Values{"open": {"false"}}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `id="pane"`) {
		t.Error("collapsed sidebar should not render the pane")
	}
	body := cl.get("/about/").Body.String()
	if strings.Contains(body, `id="pane"`) || !strings.Contains(body, `data-open="false"`) {
		t.Error("collapsed pane should persist across pages")
	}
	body = cl.post("/ui/sidebar/", url.Values{"open": {"true"}}, true).Body.String()
	if !strings.Contains(body, `id="pane"`) || !strings.Contains(body, `data-sidebar-toggle value="false"`) {
		t.Errorf("reopened sidebar:\n%s", body)
	}
	if rec := cl.post("/ui/sidebar/", url.Values{"open": {"maybe"}}, true); rec.Code != http.StatusBadRequest {
		t.Errorf("bad open value: status = %d", rec.Code)
	}
}

func TestSidebarToggleOnMobileOpensOverlay(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	cl.post("/ui/viewport/", url.Values{"width": {"390"}}, true)
	if body := cl.get("/about/").Body.String(); strings.Contains(body, `id="pane"`) {
		t.Error("overlay should start closed")
	}

	tests := []struct {
		open   string
		toggle string
	}{
		{"true", "false"},
		{"false", "true"},
		{"true", "false"},
	}
	for i, tt := range tests {
		body := cl.post("/ui/sidebar/", url.Values{"open": {tt.open}}, true).Body.String()
		if !strings.Contains(body, `data-mobile-open="`+tt.open+`"`) {
			t.Errorf("step %d: overlay state not rendered:\n%s", i, body)
		}
		if got := strings.Contains(body, `id="pane"`); got != (tt.open == "true") {
			t.Errorf("step %d: pane rendered = %v", i, got)
		}
		if !strings.Contains(body, `data-sidebar-toggle value="`+tt.toggle+`"`) {
			t.Errorf("step %d: toggle should send %s", i, tt.toggle)
		}
	}

	body := cl.get("/about/").Body.String()
	if !strings.Contains(body, `data-open="true" data-mobile-open="true"`) {
		t.Error("overlay should stay open without collapsing the primary sidebar")
	}
	rec := cl.post("/ui/section/", url.Values{"section": {"projects"}}, true)
	if rec.Header().Get("HX-Redirect") != "/projects/" {
		t.Fatalf("HX-Redirect = %q", rec.Header().Get("HX-Redirect"))
	}
	if body := cl.get("/projects/").Body.String(); !strings.Contains(body, `data-mobile-open="false"`) {
		t.Error("selecting a section should close the overlay")
	}
}

func TestEventsRequireCSRF(t *testing.T) {
	a := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/ui/search/", strings.NewReader("q=go"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestEventsAreRateLimited(t *testing.T) {
	a := New(SiteConfig{SessionSecret: "secret", StaticDir: t.TempDir(), EventLimit: 1}, WithSite(testSite()))
	if err := a.Init(); err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	cl := newClient(t, a)
	if rec := cl.post("/ui/search/", url.Values{"q": {"a"}}, true); rec.Code != http.StatusOK {
		t.Fatalf("first event: status = %d", rec.Code)
	}
	if rec := cl.post("/ui/search/", url.Values{"q": {"b"}}, true); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second event: status = %d", rec.Code)
	}
}

func TestPreviewCard(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	rec := cl.get("/og/blogs/go-channels.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != cardWidth || b.Dy() != cardHeight {
		t.Errorf("bounds = %v", b)
	}

	for _, path := range []string{"/og/blogs/nope.png", "/og/projects/x.png", "/og/blogs/go-channels.jpg"} {
		if rec := cl.get(path); rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d", path, rec.Code)
		}
	}
}

func TestSitemapAndFeed(t *testing.T) {
	cl := newClient(t, newTestApp(t))

	body := cl.get("/sitemap.xml").Body.String()
	for _, want := range []string{
		"<loc>https://example.com</loc>",
		"<loc>https://example.com/projects/</loc>",
		"<loc>https://example.com/blogs/go-channels/</loc>",
		"<loc>https://example.com/leetcode/two-sum/</loc>",
		"<lastmod>2024-03-01</lastmod>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}

	rec := cl.get("/feed.xml")
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/rss+xml") {
		t.Errorf("feed Content-Type = %q", ct)
	}
	if strings.Count(rec.Body.String(), "<item>") != 3 {
		t.Errorf("feed:\n%s", rec.Body.String())
	}
}

func TestRobots(t *testing.T) {
	a := newTestApp(t)
	cl := newClient(t, a)
	if body := cl.get("/robots.txt").Body.String(); !strings.Contains(body, "Sitemap: https://example.com/sitemap.xml") {
		t.Errorf("default robots:\n%s", body)
	}

	if err := os.WriteFile(filepath.Join(a.Config.StaticDir, "robots.txt"), []byte("User-agent: *\nDisallow: /\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if body := cl.get("/robots.txt").Body.String(); !strings.Contains(body, "Disallow: /") {
		t.Errorf("static robots:\n%s", body)
	}
}

func TestViewportScriptIsEmbedded(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	rec := cl.get("/public/viewport.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "pagehide") {
		t.Error("unexpected script body")
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	cl := newClient(t, newTestApp(t))
	rec := cl.get("/blogs")
	if rec.Code != http.StatusMovedPermanently || rec.Header().Get("Location") != "/blogs/" {
		t.Errorf("got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"blogs"}, "https://example.com/blogs/"},
		{"https://example.com/", []string{"/blogs/go/"}, "https://example.com/blogs/go/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("Longest Substring Without Repeating Characters", 12, 4)
	for _, l := range lines {
		if len(l) > 12 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if len(lines) != 4 || !strings.HasSuffix(lines[3], "...") {
		t.Errorf("lines = %q", lines)
	}
	if got := wrapText("", 10, 2); len(got) != 0 {
		t.Errorf("empty title wrapped to %q", got)
	}
}
