package nav

import (
	"errors"
	"strings"
	"testing"
)

type entry string

func (e entry) ItemTitle() string { return string(e) }

func TestParseSection(t *testing.T) {
	tests := []struct {
		input string
		want  Section
	}{
		{"about", About},
		{"Projects", Projects},
		{" BLOGS ", Blogs},
	}
	for _, tt := range tests {
		got, err := ParseSection(tt.input)
		if err != nil {
			t.Fatalf("ParseSection(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseSection(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if _, err := ParseSection("blog"); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("ParseSection(blog) err = %v, want ErrUnknownSection", err)
	}
}

func TestSectionLabels(t *testing.T) {
	if Blogs.String() != "Blogs" || Blogs.Key() != "blogs" {
		t.Errorf("Blogs = %q/%q", Blogs.String(), Blogs.Key())
	}
	if About.Searchable() || !Projects.Searchable() || !Blogs.Searchable() {
		t.Error("only projects and blogs are searchable")
	}
	if Section(9).String() != "Section(9)" {
		t.Errorf("out of range = %q", Section(9).String())
	}
}

func TestNewStateStartsOnFirstItem(t *testing.T) {
	s := NewState()
	if s.Active != DefaultItems()[0].Section || s.Search != "" {
		t.Errorf("NewState = %+v", s)
	}
}

func TestReduceSelectSectionWide(t *testing.T) {
	s := NewState()
	s.MobileOpen = true
	s, eff := Reduce(s, SelectSection{Section: Blogs})
	if s.Active != Blogs || !s.SecondaryOpen || s.MobileOpen {
		t.Errorf("state = %+v", s)
	}
	if !eff.None() {
		t.Errorf("wide selection should not navigate, got %+v", eff)
	}
}

func TestReduceSelectSectionMobile(t *testing.T) {
	s, eff := Reduce(NewState(), SelectSection{Section: Projects, Mobile: true})
	if s.Active != Projects || s.SecondaryOpen {
		t.Errorf("state = %+v", s)
	}
	if eff.Navigate != "/projects/" {
		t.Errorf("Navigate = %q, want /projects/", eff.Navigate)
	}
}

func TestReduceSetSearchIdempotent(t *testing.T) {
	once, _ := Reduce(NewState(), SetSearch{Text: "go"})
	twice, _ := Reduce(once, SetSearch{Text: "go"})
	if once != twice {
		t.Errorf("once = %+v, twice = %+v", once, twice)
	}
	items := []entry{"Go Channels", "Rust", "Django"}
	a := Filter(items, once.Search)
	b := Filter(items, twice.Search)
	if len(a) != len(b) {
		t.Fatalf("filter differs: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("filter differs at %d", i)
		}
	}
}

func TestReduceOpenMobile(t *testing.T) {
	s, _ := Reduce(NewState(), OpenMobile{Open: true})
	if !s.MobileOpen {
		t.Error("expected mobile overlay open")
	}
	s, eff := Reduce(s, OpenMobile{Open: false})
	if s.MobileOpen || !eff.None() {
		t.Errorf("state = %+v, effect = %+v", s, eff)
	}
}

func TestReduceOpenSecondary(t *testing.T) {
	s, _ := Reduce(NewState(), OpenSecondary{Open: true})
	if !s.SecondaryOpen || s.MobileOpen {
		t.Errorf("state = %+v", s)
	}
	s, _ = Reduce(s, OpenSecondary{Open: false})
	if s.SecondaryOpen {
		t.Error("expected pane collapsed")
	}
}

func TestFilter(t *testing.T) {
	items := []entry{"Two Sum", "Go Channels", "Docker Basics", "GOLANG generics"}
	tests := []struct {
		search string
		want   []entry
	}{
		{"", items},
		{"go", []entry{"Go Channels", "GOLANG generics"}},
		{"SUM", []entry{"Two Sum"}},
		{"s b", []entry{"Docker Basics"}},
		{"zzz", []entry{}},
	}
	for _, tt := range tests {
		got := Filter(items, tt.search)
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%q) = %v, want %v", tt.search, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Filter(%q)[%d] = %q, want %q", tt.search, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFilterResultsContainNeedle(t *testing.T) {
	items := []entry{"Alpha", "beta", "Gamma", "ALPHABET", "delta"}
	for _, s := range []string{"a", "AL", "ta", "e", "x"} {
		for _, got := range Filter(items, s) {
			if !strings.Contains(strings.ToLower(string(got)), strings.ToLower(s)) {
				t.Errorf("Filter(%q) returned %q", s, got)
			}
		}
	}
}
