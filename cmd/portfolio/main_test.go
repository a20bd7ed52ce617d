package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jyotirmoydotdev/portfolio/seo"
)

func writeSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"blogs/a.md": "---\ntitle: Alpha\ndate: \"2024-03-01\"\n---\n## One\n### Two\n",
		"blogs/b.md": "---\ntitle: Beta\ndate: \"2024-02-01\"\n---\nbody\n",
		"blogs/c.md": "---\ntitle: Gamma\ndate: \"2024-01-01\"\n---\nbody\n",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := filepath.Join(dir, "portfolio.yaml")
	if err := os.WriteFile(cfg, []byte("content_dir: "+dir+"\nurl: https://example.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestMeta(t *testing.T) {
	var m seo.Metadata
	if err := json.Unmarshal([]byte(run(t, "meta", "two-sum")), &m); err != nil {
		t.Fatal(err)
	}
	if m.Title != "Two-sum" || m.Canonical != "https://jyotirmoy.dev/leetcode/two-sum" {
		t.Errorf("meta = %+v", m)
	}
}

func TestMetaWithSiteConfig(t *testing.T) {
	cfg := writeSite(t)
	var m seo.Metadata
	if err := json.Unmarshal([]byte(run(t, "meta", "two-sum", "--site", "-c", cfg)), &m); err != nil {
		t.Fatal(err)
	}
	if m.Canonical != "https://example.com/leetcode/two-sum" {
		t.Errorf("canonical = %q", m.Canonical)
	}
}

func TestPosts(t *testing.T) {
	out := run(t, "posts", "-c", writeSite(t))
	for _, want := range []string{"Alpha", "Beta", "Gamma", "/blogs/a/", "3 posts"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Alpha") > strings.Index(out, "Gamma") {
		t.Error("posts should be newest first")
	}
}

func TestMoreWrapsAround(t *testing.T) {
	out := run(t, "more", "c", "-c", writeSite(t))
	if !strings.Contains(out, "Alpha") || !strings.Contains(out, "Beta") || strings.Contains(out, "Gamma") {
		t.Errorf("more c:\n%s", out)
	}
}

func TestMoreUnknownSlug(t *testing.T) {
	cmd := newRoot()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"more", "zzz", "-c", writeSite(t)})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unknown slug")
	}
}

func TestVersion(t *testing.T) {
	if out := run(t, "version"); out != "portfolio dev\n" {
		t.Errorf("version = %q", out)
	}
}
