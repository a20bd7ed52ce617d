package content

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blog.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`
CREATE TABLE posts (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    tags TEXT NOT NULL,
    summary TEXT NOT NULL,
    content TEXT NOT NULL,
    published INTEGER NOT NULL DEFAULT 1
);`); err != nil {
		t.Fatalf("schema: %v", err)
	}
	rows := []struct {
		slug, title, date, tags, summary, content string
		published                                 int
	}{
		{"go-channels", "Go Channels", "2024-03-01", ",go,concurrency,", "Pipes between goroutines", "## Unbuffered\n\n## Buffered\n", 1},
		{"docker-basics", "Docker Basics", "2024-05-10", ",docker,", "Containers 101", "intro", 1},
		{"draft", "Draft", "2024-06-01", ",", "wip", "wip", 0},
	}
	for _, r := range rows {
		if _, err := db.Exec(`INSERT INTO posts (slug, title, date, tags, summary, content, published) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.slug, r.title, r.date, r.tags, r.summary, r.content, r.published); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return path
}

func TestStorePosts(t *testing.T) {
	s, err := OpenStore(setupTestDB(t))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()

	x, err := s.Posts()
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if x.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (drafts excluded)", x.Len())
	}
	first := x.At(0)
	if first.URL != "/blogs/docker-basics/" {
		t.Errorf("first URL = %q, want newest post first", first.URL)
	}
	second := x.At(1)
	if second.Description != "Pipes between goroutines" {
		t.Errorf("Description = %q", second.Description)
	}
	if len(second.Tags) != 2 || second.Tags[0] != "go" {
		t.Errorf("Tags = %v", second.Tags)
	}
	if len(second.Outline) != 2 || second.Outline[1].Title != "Buffered" {
		t.Errorf("Outline = %+v", second.Outline)
	}
}

func TestStoreIsQueryOnly(t *testing.T) {
	s, err := OpenStore(setupTestDB(t))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()

	if _, err := s.db.Exec(`DELETE FROM posts`); err == nil {
		t.Error("expected write to fail on a query-only connection")
	}
}

func TestOpenStoreMissingFile(t *testing.T) {
	if _, err := OpenStore(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error for missing database file")
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{",go,web,", []string{"go", "web"}},
		{"go,web", []string{"go", "web"}},
		{", go , web ,", []string{"go", "web"}},
		{",", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := ParseTags(tt.input)
		if len(got) != len(tt.expected) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("ParseTags(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.expected[i])
			}
		}
	}
}
