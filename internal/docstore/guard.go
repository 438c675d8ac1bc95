package docstore

import (
	"context"
	"encoding/json"
)

// Guarded wraps a Store with the access rules the portfolio data uses:
// reads are public, writes require an admin-marked context. A write without
// authorization surfaces ErrPermissionDenied without touching the backend.
type Guarded struct {
	Next Store
}

// Guard wraps next with write authorization checks.
func Guard(next Store) *Guarded {
	return &Guarded{Next: next}
}

func (g *Guarded) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return g.Next.Get(ctx, path)
}

func (g *Guarded) Put(ctx context.Context, path string, doc any) error {
	if !IsAdmin(ctx) {
		return ErrPermissionDenied
	}
	return g.Next.Put(ctx, path, doc)
}

func (g *Guarded) Remove(ctx context.Context, path string) error {
	if !IsAdmin(ctx) {
		return ErrPermissionDenied
	}
	return g.Next.Remove(ctx, path)
}

func (g *Guarded) List(ctx context.Context, prefix string) (map[string]json.RawMessage, error) {
	return g.Next.List(ctx, prefix)
}

func (g *Guarded) Subscribe(path string, fn func(json.RawMessage)) func() {
	return g.Next.Subscribe(path, fn)
}
