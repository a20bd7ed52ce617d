package content

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when no record matches a slug.
var ErrNotFound = errors.New("content: not found")

// MorePostsCount is how many posts follow the current one in the carousel.
const MorePostsCount = 2

// Index is an ordered, immutable sequence of posts.
type Index struct {
	records []PostRecord
}

// NewIndex copies records into a new Index, preserving order.
func NewIndex(records []PostRecord) *Index {
	rs := make([]PostRecord, len(records))
	copy(rs, records)
	return &Index{records: rs}
}

// Len returns the number of records.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.records)
}

// At returns the record at position i.
func (x *Index) At(i int) PostRecord {
	return x.records[i]
}

// Records returns a copy of all records in order.
func (x *Index) Records() []PostRecord {
	if x == nil {
		return nil
	}
	rs := make([]PostRecord, len(x.records))
	copy(rs, x.records)
	return rs
}

// Lookup returns the position of the first record whose URL contains slug.
func (x *Index) Lookup(slug string) (int, error) {
	if slug == "" {
		return -1, ErrNotFound
	}
	for i := 0; i < x.Len(); i++ {
		if strings.Contains(x.records[i].URL, slug) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// Resolve returns the position of the record whose slug equals slug and
// falls back to Lookup when there is none.
func (x *Index) Resolve(slug string) (int, error) {
	for i := 0; i < x.Len(); i++ {
		if slug != "" && x.records[i].Slug() == slug {
			return i, nil
		}
	}
	return x.Lookup(slug)
}

// Get returns the first record whose URL contains slug.
func (x *Index) Get(slug string) (PostRecord, error) {
	i, err := x.Lookup(slug)
	if err != nil {
		return PostRecord{}, err
	}
	return x.records[i], nil
}

// MorePosts returns the n records following position i, wrapping around the
// end of the index. With fewer than n+1 records the result repeats records
// and may include the one at i.
func (x *Index) MorePosts(i, n int) []PostRecord {
	l := x.Len()
	if l == 0 || i < 0 || i >= l || n <= 0 {
		return nil
	}
	out := make([]PostRecord, 0, n)
	for k := 1; k <= n; k++ {
		out = append(out, x.records[(i+k)%l])
	}
	return out
}

// More resolves slug and returns the posts that follow it.
func (x *Index) More(slug string) ([]PostRecord, error) {
	i, err := x.Lookup(slug)
	if err != nil {
		return nil, err
	}
	return x.MorePosts(i, MorePostsCount), nil
}
