// Package ports defines the interfaces the application layer depends on.
// Adapters implement them; the app package never imports an adapter.
//
// Conventions:
//   - Context first on anything that may block
//   - Domain types in, domain types out
//   - Errors are domain errors (ErrNotFound, ErrUnavailable, ...)
package ports

import (
	"context"

	"github.com/jsamuelsen/portfolio/internal/domain"
)

// ContentStore is the read-only static content store. Implementations are
// populated once at startup and never change afterwards, so callers may
// share the returned slices but must not modify them.
type ContentStore interface {
	// Items returns every item of a collection in source order.
	Items(kind domain.Kind) []domain.Item

	// BySlug returns the item with the exact slug.
	// Returns domain.ErrNotFound when nothing matches.
	BySlug(kind domain.Kind, slug string) (domain.Item, error)

	// Categories returns the closed category set of a collection in
	// first-seen order, without the "all" sentinel.
	Categories(kind domain.Kind) []string

	// Profile returns the biography and hero data.
	Profile() domain.Profile
}

// ContactSender delivers a contact form submission.
// Returns domain.ErrUnavailable when the destination cannot be reached.
type ContactSender interface {
	Send(ctx context.Context, msg *domain.ContactMessage) error
}
