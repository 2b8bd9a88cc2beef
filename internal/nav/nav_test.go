package nav

import "testing"

func TestResolveTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		path        string
		wantSection Section
		wantArticle string
		wantTalk    string
	}{
		{name: "root", path: "/", wantSection: SectionHome},
		{name: "empty", path: "", wantSection: SectionHome},
		{name: "articles index", path: "/articles", wantSection: SectionArticles},
		{name: "article detail", path: "/articles/xyz", wantSection: SectionArticles, wantArticle: "xyz"},
		{name: "article detail trailing segment", path: "/articles/xyz/extra", wantSection: SectionArticles, wantArticle: "xyz"},
		{name: "events", path: "/events", wantSection: SectionEvents},
		{name: "talks index", path: "/talks", wantSection: SectionTalks},
		{name: "talk detail", path: "/talks/abc", wantSection: SectionTalks, wantTalk: "abc"},
		{name: "projects", path: "/projects", wantSection: SectionProjects},
		{name: "contact", path: "/contact", wantSection: SectionContact},
		{name: "unknown", path: "/nope", wantSection: SectionHome},
		{name: "trailing slash not exact", path: "/events/", wantSection: SectionHome},
		{name: "not even a path", path: "garbage", wantSection: SectionHome},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			section, article, talk := Resolve(tt.path)
			if section != tt.wantSection || article != tt.wantArticle || talk != tt.wantTalk {
				t.Fatalf("Resolve(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.path, section, article, talk, tt.wantSection, tt.wantArticle, tt.wantTalk)
			}
		})
	}
}

func TestLocatorNavigateAndBack(t *testing.T) {
	t.Parallel()

	l := NewLocator("")
	if l.Path() != "/" {
		t.Fatalf("empty initial path should become /, got %q", l.Path())
	}

	l.Navigate("/articles")
	l.Navigate("/articles/xyz")

	section, article, _ := l.Resolve()
	if section != SectionArticles || article != "xyz" {
		t.Fatalf("after navigation got (%q, %q)", section, article)
	}

	if !l.Back() {
		t.Fatal("expected history entry")
	}
	if l.Path() != "/articles" {
		t.Fatalf("Back landed on %q", l.Path())
	}
	if !l.Back() {
		t.Fatal("expected second history entry")
	}
	if l.Back() {
		t.Fatal("history should be exhausted")
	}
}

func TestLocatorNavigateSamePathIsNoOp(t *testing.T) {
	t.Parallel()

	l := NewLocator("/events")
	l.Navigate("/events")
	if l.Back() {
		t.Fatal("navigating to the current path should not grow history")
	}
}
