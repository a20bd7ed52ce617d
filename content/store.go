package content

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// Store reads blog posts from a SQLite database with a posts table
// (slug, title, date, tags, summary, content, published). The connection is
// query-only; the site never writes content.
type Store struct {
	db *sql.DB
}

// OpenStore opens the database at path. The file must already exist.
func OpenStore(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("content db %s: %w", path, err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("content db %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Posts returns all published posts as a blogs index, newest first.
func (s *Store) Posts() (*Index, error) {
	rows, err := s.db.Query(`SELECT slug, title, date, tags, summary, content FROM posts WHERE published = 1 ORDER BY date DESC, slug`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var records []PostRecord
	for rows.Next() {
		var slug, title, date, tags, summary, body string
		if err := rows.Scan(&slug, &title, &date, &tags, &summary, &body); err != nil {
			return nil, err
		}
		records = append(records, NewRecord(BlogsDir, slug, title, summary, date, ParseTags(tags), body))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return NewIndex(records), nil
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
