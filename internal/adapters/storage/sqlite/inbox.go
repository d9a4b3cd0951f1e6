// Package sqlite stores contact submissions in a local SQLite database
// using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen/portfolio/internal/domain"
	"github.com/jsamuelsen/portfolio/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS contact_messages (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	email        TEXT NOT NULL,
	subject      TEXT NOT NULL DEFAULT '',
	message      TEXT NOT NULL,
	submitted_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS contact_messages_submitted_at ON contact_messages (submitted_at);
`

// Inbox appends contact messages to a table. Writes are serialised by
// limiting the pool to one connection.
type Inbox struct {
	db *sql.DB
}

var (
	_ ports.ContactSender = (*Inbox)(nil)
	_ ports.HealthChecker = (*Inbox)(nil)
)

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway inbox.
func Open(ctx context.Context, path string) (*Inbox, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating inbox directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening inbox: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, errors.Join(fmt.Errorf("applying inbox schema: %w", err), db.Close())
	}

	return &Inbox{db: db}, nil
}

// Send stores msg. A duplicate message ID is a conflict.
func (i *Inbox) Send(ctx context.Context, msg *domain.ContactMessage) error {
	_, err := i.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message,
		msg.SubmittedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if exists, _ := i.exists(ctx, msg.ID); exists {
			return domain.NewConflictError("contact message", fmt.Sprintf("%q already stored", msg.ID))
		}

		return fmt.Errorf("%w: %v", domain.NewUnavailableError("contact inbox", "write failed"), err)
	}

	return nil
}

func (i *Inbox) exists(ctx context.Context, id string) (bool, error) {
	var n int

	err := i.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages WHERE id = ?`, id).Scan(&n)

	return n > 0, err
}

// Messages returns stored messages, newest first, at most limit rows.
func (i *Inbox) Messages(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	rows, err := i.db.QueryContext(ctx,
		`SELECT id, name, email, subject, message, submitted_at
		 FROM contact_messages ORDER BY submitted_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying inbox: %w", err)
	}
	defer rows.Close()

	var out []domain.ContactMessage

	for rows.Next() {
		var (
			m  domain.ContactMessage
			at string
		)

		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &at); err != nil {
			return nil, fmt.Errorf("scanning inbox row: %w", err)
		}

		if m.SubmittedAt, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("parsing submitted_at of %s: %w", m.ID, err)
		}

		out = append(out, m)
	}

	return out, rows.Err()
}

func (i *Inbox) Name() string {
	return "contact-inbox"
}

func (i *Inbox) Check(ctx context.Context) error {
	return i.db.PingContext(ctx)
}

func (i *Inbox) Close() error {
	return i.db.Close()
}
