package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Postgres implements Store on a single jsonb table. Change notifications are
// fanned out in-process after a successful write.
type Postgres struct {
	DB  *sql.DB
	hub *hub
}

// NewPostgres constructs a Postgres store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{DB: db, hub: newHub()}
}

// Get returns the document at path.
func (p *Postgres) Get(ctx context.Context, path string) (json.RawMessage, error) {
	const query = `SELECT doc FROM documents WHERE path = $1`

	var doc []byte
	err := p.DB.QueryRowContext(ctx, query, path).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Put upserts the document at path.
func (p *Postgres) Put(ctx context.Context, path string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO documents (path, doc, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (path) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`

	if _, err := p.DB.ExecContext(ctx, query, path, raw, time.Now().UTC()); err != nil {
		return err
	}

	p.hub.publish(path, raw)
	return nil
}

// Remove deletes the document at path. Removing an absent path is a no-op.
func (p *Postgres) Remove(ctx context.Context, path string) error {
	const query = `DELETE FROM documents WHERE path = $1`

	res, err := p.DB.ExecContext(ctx, query, path)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		p.hub.publish(path, nil)
	}
	return nil
}

// List returns all documents whose path starts with prefix + "/".
func (p *Postgres) List(ctx context.Context, prefix string) (map[string]json.RawMessage, error) {
	const query = `SELECT path, doc FROM documents WHERE path LIKE $1`

	pattern := strings.TrimSuffix(prefix, "/") + "/%"
	rows, err := p.DB.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var path string
		var doc []byte
		if err := rows.Scan(&path, &doc); err != nil {
			return nil, err
		}
		out[path] = doc
	}
	return out, rows.Err()
}

// Subscribe registers a live listener for path. The initial snapshot comes
// from the database; a read failure degrades to a nil delivery.
func (p *Postgres) Subscribe(path string, fn func(json.RawMessage)) func() {
	unsubscribe := p.hub.subscribe(path, func(doc []byte) {
		fn(doc)
	})

	current, err := p.Get(context.Background(), path)
	if err != nil {
		current = nil
	}
	fn(current)

	return unsubscribe
}
