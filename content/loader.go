package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/jyotirmoydotdev/portfolio/markdown"
)

// Section directories under the content root.
const (
	BlogsDir    = "blogs"
	LeetcodeDir = "leetcode"
	siteFile    = "site.yaml"
)

type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Slug        string   `yaml:"slug"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`
}

type siteData struct {
	Email    string       `yaml:"email"`
	About    []AboutEntry `yaml:"about"`
	Projects []Project    `yaml:"projects"`
	Links    []Link       `yaml:"links"`
}

// LoadDir loads the content tree rooted at dir.
func LoadDir(dir string) (*Site, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content dir %s: %w", dir, err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS loads blogs/*.md, leetcode/*.md and site.yaml from fsys.
func LoadFS(fsys fs.FS) (*Site, error) {
	blogs, err := loadSection(fsys, BlogsDir)
	if err != nil {
		return nil, err
	}
	leetcode, err := loadSection(fsys, LeetcodeDir)
	if err != nil {
		return nil, err
	}
	site := &Site{Blogs: blogs, Leetcode: leetcode}

	raw, err := fs.ReadFile(fsys, siteFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return site, nil
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", siteFile, err)
	}
	var data siteData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", siteFile, err)
	}
	if err := data.checkURLs(); err != nil {
		return nil, fmt.Errorf("%s: %w", siteFile, err)
	}
	site.Email = data.Email
	site.About = data.About
	site.Projects = data.Projects
	site.Links = data.Links
	return site, nil
}

// checkURLs rejects entries whose url is set but is neither site-relative
// nor one of the schemes markdown.SafeURL allows.
func (d siteData) checkURLs() error {
	check := func(kind, name, u string) error {
		if u != "" && markdown.SafeURL(u) == "" {
			return fmt.Errorf("%s %q: unsafe url %q", kind, name, u)
		}
		return nil
	}
	for _, a := range d.About {
		if err := check("about", a.Title, a.URL); err != nil {
			return err
		}
	}
	for _, p := range d.Projects {
		if err := check("project", p.Title, p.URL); err != nil {
			return err
		}
	}
	for _, l := range d.Links {
		if err := check("link", l.Name, l.URL); err != nil {
			return err
		}
	}
	return nil
}

func loadSection(fsys fs.FS, section string) (*Index, error) {
	names, err := fs.Glob(fsys, section+"/*.md")
	if err != nil {
		return nil, err
	}
	var records []PostRecord
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		rec, ok, err := ParsePost(section, strings.TrimSuffix(path.Base(name), ".md"), raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if ok {
			records = append(records, rec)
		}
	}
	SortRecords(records)
	return NewIndex(records), nil
}

// ParsePost builds a record from a markdown file with front matter. The
// second result is false for drafts.
func ParsePost(section, fileSlug string, raw []byte) (PostRecord, bool, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return PostRecord{}, false, err
	}
	if fm.Draft {
		return PostRecord{}, false, nil
	}
	slug := fm.Slug
	if slug == "" {
		slug = fileSlug
	}
	title := fm.Title
	if title == "" {
		title = slug
	}
	return NewRecord(section, slug, title, fm.Description, fm.Date, fm.Tags, string(body)), true, nil
}

// NewRecord assembles a record and derives its outline from body.
func NewRecord(section, slug, title, description, date string, tags []string, body string) PostRecord {
	return PostRecord{
		Title:       title,
		Description: description,
		URL:         "/" + section + "/" + slug + "/",
		Date:        date,
		Tags:        tags,
		Outline:     BuildOutline(markdown.Headings(body, 2, 4)),
		Body:        body,
	}
}

// SortRecords orders records newest first, then by URL.
func SortRecords(records []PostRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].URL < records[j].URL
	})
}

// BuildOutline nests headings under the closest preceding shallower heading.
func BuildOutline(headings []markdown.Heading) []OutlineEntry {
	var roots []OutlineEntry
	// stack holds the open ancestors. A container is only appended to after
	// every pointer into it has been popped.
	var stack []*OutlineEntry
	for _, h := range headings {
		e := OutlineEntry{Title: h.Title, ID: h.ID, Level: h.Level}
		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, e)
			stack = append(stack, &roots[len(roots)-1])
			continue
		}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, e)
		stack = append(stack, &parent.Children[len(parent.Children)-1])
	}
	return roots
}
