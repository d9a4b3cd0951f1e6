// Package domain contains core portfolio entities and rules.
package domain

import (
	"fmt"
	"slices"
	"time"
)

// Kind identifies one of the static content collections.
type Kind string

const (
	// KindPost is a blog post.
	KindPost Kind = "posts"

	// KindProject is a portfolio project.
	KindProject Kind = "projects"

	// KindJob is a work history entry.
	KindJob Kind = "jobs"

	// KindEducation is an education or certification entry.
	KindEducation Kind = "education"
)

// Kinds lists every collection in display order.
func Kinds() []Kind {
	return []Kind{KindPost, KindProject, KindJob, KindEducation}
}

// ParseKind converts a path segment to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(Kinds(), k) {
		return "", NewValidationErrorWithValue("kind", fmt.Sprintf("unknown collection %q", s), s)
	}

	return k, nil
}

// Entity returns the singular name used in error messages.
func (k Kind) Entity() string {
	switch k {
	case KindPost:
		return "post"
	case KindProject:
		return "project"
	case KindJob:
		return "job"
	case KindEducation:
		return "education entry"
	default:
		return string(k)
	}
}

// CategoryAll is the sentinel category that matches every item.
const CategoryAll = "all"

// Item is a single read-only content record: a post, project, job, or
// education entry. Items are created once when the store is loaded and
// never mutated afterwards.
type Item struct {
	// ID is the stable identifier from the source data.
	ID string

	// Kind is the collection this item belongs to.
	Kind Kind

	// Slug is the URL-safe identifier used for detail routes.
	Slug string

	// Title is the headline (post title, project name, job title, degree).
	Title string

	// Excerpt is the searchable free-text field: a post excerpt, a project
	// description, or a job/education summary.
	Excerpt string

	// Category is drawn from the collection's closed category set.
	Category string

	// Tags holds tags or technologies. Order is not significant.
	Tags []string

	// Organization is the company or institution for jobs and education.
	Organization string

	// Location is where the role or study took place.
	Location string

	// Highlights are bullet points shown in detail views.
	Highlights []string

	// URL links to a live site, repository, or credential.
	URL string

	// StartDate and EndDate bound jobs and education. EndDate is zero while current.
	StartDate time.Time
	EndDate   time.Time

	// Published is the publication date for posts.
	Published time.Time

	// ReadingMinutes is the estimated reading time for posts.
	ReadingMinutes int

	// Featured marks projects shown on the landing page.
	Featured bool

	// BodyHTML is the rendered post body. Empty for other kinds.
	BodyHTML string
}

// Current reports whether a dated entry has no end date.
func (i *Item) Current() bool {
	return !i.StartDate.IsZero() && i.EndDate.IsZero()
}

// Profile holds the biography and hero section data.
type Profile struct {
	Name      string
	Headline  string
	Location  string
	Email     string
	Bio       []string
	Links     []Link
	Stats     []Stat
	Available bool
}

// Link is an external profile link.
type Link struct {
	Label string
	URL   string
}

// Stat is a headline number shown as an animated counter on the site.
type Stat struct {
	Label  string
	Value  int
	Suffix string
}
