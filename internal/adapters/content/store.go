package content

import (
	"context"
	"fmt"

	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/ports"
)

// Store is the in-memory content store. It is immutable after Load and
// safe for concurrent use without locking.
type Store struct {
	profile    domain.Profile
	items      map[domain.Kind][]domain.Item
	bySlug     map[domain.Kind]map[string]int
	categories map[domain.Kind][]string
}

var (
	_ ports.ContentStore  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// NewStore builds a store from already-parsed data. Items without a slug
// get one derived from their title; items without an ID use their slug.
// Duplicate slugs within a collection are rejected.
func NewStore(profile domain.Profile, items map[domain.Kind][]domain.Item) (*Store, error) {
	s := &Store{
		profile:    profile,
		items:      make(map[domain.Kind][]domain.Item, len(domain.Kinds())),
		bySlug:     make(map[domain.Kind]map[string]int, len(domain.Kinds())),
		categories: make(map[domain.Kind][]string, len(domain.Kinds())),
	}

	for _, kind := range domain.Kinds() {
		src := items[kind]
		list := make([]domain.Item, len(src))
		index := make(map[string]int, len(src))
		seen := make(map[string]bool)

		var cats []string

		for i, item := range src {
			item.Kind = kind

			if item.Slug == "" {
				item.Slug = domain.Slugify(item.Title)
			}

			if item.Slug == "" {
				return nil, fmt.Errorf("%s entry %d: cannot derive slug from title %q", kind, i, item.Title)
			}

			if prev, dup := index[item.Slug]; dup {
				return nil, fmt.Errorf("%s: duplicate slug %q (entries %d and %d)", kind, item.Slug, prev, i)
			}

			if item.ID == "" {
				item.ID = item.Slug
			}

			if item.Category != "" && !seen[item.Category] {
				seen[item.Category] = true
				cats = append(cats, item.Category)
			}

			list[i] = item
			index[item.Slug] = i
		}

		s.items[kind] = list
		s.bySlug[kind] = index
		s.categories[kind] = cats
	}

	return s, nil
}

// Items returns the collection in source order. The slice is shared.
func (s *Store) Items(kind domain.Kind) []domain.Item {
	return s.items[kind]
}

// BySlug finds an item by exact slug.
func (s *Store) BySlug(kind domain.Kind, slug string) (domain.Item, error) {
	i, ok := s.bySlug[kind][slug]
	if !ok {
		return domain.Item{}, domain.NewNotFoundError(kind.Entity(), slug)
	}

	return s.items[kind][i], nil
}

// Categories returns the category set in first-seen order.
func (s *Store) Categories(kind domain.Kind) []string {
	return s.categories[kind]
}

func (s *Store) Profile() domain.Profile {
	return s.profile
}

// Count returns the total number of items across collections.
func (s *Store) Count() int {
	n := 0
	for _, list := range s.items {
		n += len(list)
	}

	return n
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "content"
}

// Check reports unhealthy when the store holds no profile.
func (s *Store) Check(_ context.Context) error {
	if s.profile.Name == "" {
		return ErrNoContent
	}

	return nil
}
