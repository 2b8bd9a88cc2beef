// Package nav derives the logical section being viewed from a location
// path, independent of skin, and owns the session's location history.
package nav

import "strings"

// Section is the logical page identifier. Derived, never stored:
// recomputed from the current location on every read.
type Section string

const (
	SectionHome     Section = "home"
	SectionArticles Section = "articles"
	SectionEvents   Section = "events"
	SectionTalks    Section = "talks"
	SectionProjects Section = "projects"
	SectionContact  Section = "contact"
)

const (
	articlePrefix = "/articles/"
	talkPrefix    = "/talks/"
)

// Resolve maps a location path to its section and optional sub-resource
// slugs. Total over all string inputs: anything unrecognized, including
// "/", resolves to home. Sub-resource patterns take precedence over
// exact-match patterns.
func Resolve(path string) (section Section, articleSlug string, talkSlug string) {
	if strings.HasPrefix(path, articlePrefix) && len(path) > len(articlePrefix) {
		return SectionArticles, strings.SplitN(path[len(articlePrefix):], "/", 2)[0], ""
	}
	if strings.HasPrefix(path, talkPrefix) && len(path) > len(talkPrefix) {
		return SectionTalks, "", strings.SplitN(path[len(talkPrefix):], "/", 2)[0]
	}

	switch path {
	case "/articles":
		return SectionArticles, "", ""
	case "/events":
		return SectionEvents, "", ""
	case "/talks":
		return SectionTalks, "", ""
	case "/projects":
		return SectionProjects, "", ""
	case "/contact":
		return SectionContact, "", ""
	}
	return SectionHome, "", ""
}

// Locator holds the session's current location and history. One Locator
// per session; it is not safe for concurrent use and does not need to
// be, the session event loop is its only caller.
type Locator struct {
	path    string
	history []string
}

// NewLocator starts at the given path, or home when empty.
func NewLocator(initial string) *Locator {
	if initial == "" {
		initial = "/"
	}
	return &Locator{path: initial}
}

// Path returns the current location path.
func (l *Locator) Path() string { return l.path }

// Resolve returns the section and sub-resource slugs for the current
// location.
func (l *Locator) Resolve() (Section, string, string) {
	return Resolve(l.path)
}

// Navigate requests a location change. No validation is performed:
// invalid paths simply resolve to home on the next read.
func (l *Locator) Navigate(path string) {
	if path == l.path {
		return
	}
	l.history = append(l.history, l.path)
	l.path = path
}

// Back returns to the previous location, reporting whether there was
// one to return to.
func (l *Locator) Back() bool {
	if len(l.history) == 0 {
		return false
	}
	l.path = l.history[len(l.history)-1]
	l.history = l.history[:len(l.history)-1]
	return true
}
