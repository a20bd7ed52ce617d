package content

import (
	"testing"
	"testing/fstest"

	"github.com/jyotirmoydotdev/portfolio/markdown"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"blogs/go-channels.md": {Data: []byte(`---
title: "Go Channels"
description: "Pipes between goroutines"
date: "2024-03-01"
tags: [go, concurrency]
---
## Unbuffered

### Blocking sends

## Buffered
`)},
		"blogs/docker.md": {Data: []byte(`---
title: "Docker Basics"
date: "2024-05-10"
slug: docker-basics
---
body
`)},
		"blogs/wip.md": {Data: []byte(`---
title: "WIP"
date: "2024-06-01"
draft: true
---
`)},
		"leetcode/two-sum.md": {Data: []byte(`---
title: "Two Sum"
date: "2024-01-02"
---
## Hash map
`)},
		"site.yaml": {Data: []byte(`email: me@example.com
about:
  - title: Resume
    url: /about/resume/
projects:
  - title: Portfolio
    description: This site
    url: https://github.com/jyotirmoydotdev/portfolio
    tags: [go, echo]
links:
  - name: GitHub
    url: https://github.com/jyotirmoydotdev
    icon: github
`)},
	}
}

func TestLoadFS(t *testing.T) {
	site, err := LoadFS(testFS())
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if site.Blogs.Len() != 2 {
		t.Fatalf("Blogs.Len = %d, want 2 (draft skipped)", site.Blogs.Len())
	}
	if got := site.Blogs.At(0).URL; got != "/blogs/docker-basics/" {
		t.Errorf("first blog URL = %q, want front matter slug, newest first", got)
	}
	ch := site.Blogs.At(1)
	if ch.Title != "Go Channels" || ch.Description != "Pipes between goroutines" || ch.Date != "2024-03-01" {
		t.Errorf("record = %+v", ch)
	}
	if len(ch.Tags) != 2 || ch.Tags[1] != "concurrency" {
		t.Errorf("Tags = %v", ch.Tags)
	}
	if len(ch.Outline) != 2 || len(ch.Outline[0].Children) != 1 {
		t.Fatalf("Outline = %+v", ch.Outline)
	}
	if ch.Outline[0].Children[0].Title != "Blocking sends" {
		t.Errorf("nested entry = %+v", ch.Outline[0].Children[0])
	}
	if site.Leetcode.Len() != 1 || site.Leetcode.At(0).URL != "/leetcode/two-sum/" {
		t.Errorf("Leetcode = %+v", site.Leetcode.Records())
	}
	if site.Email != "me@example.com" || len(site.About) != 1 || len(site.Projects) != 1 || len(site.Links) != 1 {
		t.Errorf("site data = %+v", site)
	}
	if site.Projects[0].Tags[1] != "echo" {
		t.Errorf("project tags = %v", site.Projects[0].Tags)
	}
}

func TestLoadFSWithoutSiteFile(t *testing.T) {
	fsys := testFS()
	delete(fsys, "site.yaml")
	site, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if site.Projects != nil || site.About != nil {
		t.Errorf("expected empty lists, got %+v", site)
	}
}

func TestLoadFSBadSiteFile(t *testing.T) {
	fsys := testFS()
	fsys["site.yaml"] = &fstest.MapFile{Data: []byte("about: [unterminated")}
	if _, err := LoadFS(fsys); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFSRejectsUnsafeURLs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"about", "about:\n  - title: Resume\n    url: javascript:alert(1)\n"},
		{"project", "projects:\n  - title: Portfolio\n    url: data:text/html,hi\n"},
		{"link", "links:\n  - name: GitHub\n    url: vbscript:run\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testFS()
			fsys["site.yaml"] = &fstest.MapFile{Data: []byte(tt.yaml)}
			if _, err := LoadFS(fsys); err == nil {
				t.Error("expected unsafe url error")
			}
		})
	}
}

func TestParsePostDefaults(t *testing.T) {
	rec, ok, err := ParsePost(BlogsDir, "untitled", []byte("---\ndate: \"2024-01-01\"\n---\ntext\n"))
	if err != nil || !ok {
		t.Fatalf("ParsePost: ok=%v err=%v", ok, err)
	}
	if rec.Title != "untitled" || rec.URL != "/blogs/untitled/" {
		t.Errorf("record = %+v", rec)
	}
}

func TestBuildOutline(t *testing.T) {
	hs := []markdown.Heading{
		{Level: 3, Title: "orphan"},
		{Level: 2, Title: "a"},
		{Level: 3, Title: "a.1"},
		{Level: 4, Title: "a.1.i"},
		{Level: 3, Title: "a.2"},
		{Level: 2, Title: "b"},
	}
	got := BuildOutline(hs)
	if len(got) != 3 {
		t.Fatalf("roots = %+v", got)
	}
	a := got[1]
	if a.Title != "a" || len(a.Children) != 2 {
		t.Fatalf("a = %+v", a)
	}
	if len(a.Children[0].Children) != 1 || a.Children[0].Children[0].Title != "a.1.i" {
		t.Errorf("a.1 = %+v", a.Children[0])
	}
	if a.Children[1].Title != "a.2" || got[2].Title != "b" {
		t.Errorf("outline = %+v", got)
	}
}
