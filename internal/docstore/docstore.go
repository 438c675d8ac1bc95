// Package docstore provides a small path-addressed JSON document store with
// live subscriptions, mirroring the realtime database the portfolio data
// lives in. Paths are slash-separated keys such as "resume/current" or
// "projects/<id>".
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrNotFound is returned when no document exists at a path.
	ErrNotFound = errors.New("document not found")
	// ErrPermissionDenied is returned when the caller lacks write authorization.
	ErrPermissionDenied = errors.New("permission denied")
)

// Store defines the document store contract. Subscribe invokes fn with the
// current document (nil when absent) on registration and after every change
// to the path; each delivery is an independent snapshot, not a diff.
type Store interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Put(ctx context.Context, path string, doc any) error
	Remove(ctx context.Context, path string) error
	List(ctx context.Context, prefix string) (map[string]json.RawMessage, error)
	Subscribe(path string, fn func(json.RawMessage)) func()
}

type adminCtxKey struct{}

// WithAdmin marks a context as write-authorized for guarded stores.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminCtxKey{}, true)
}

// IsAdmin reports whether the context carries write authorization.
func IsAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(adminCtxKey{}).(bool)
	return v
}
