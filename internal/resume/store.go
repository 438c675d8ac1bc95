package resume

import (
	"context"
	"encoding/json"
	"errors"

	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/shared/telemetry"
)

const (
	currentPath  = "resume/current"
	metadataPath = "metadata/resume"
)

// Slot is the single-record versioning store contract.
type Slot interface {
	Get(ctx context.Context) (*Record, error)
	Put(ctx context.Context, rec Record) error
	Remove(ctx context.Context) error
	Subscribe(fn func(*Record)) func()
}

// Store persists the current resume in the document store: the full record
// at resume/current plus a denormalized projection at metadata/resume.
type Store struct {
	Docs docstore.Store
}

// NewStore constructs a Store.
func NewStore(docs docstore.Store) *Store {
	return &Store{Docs: docs}
}

// Get returns the current record, or nil when the slot is empty.
func (s *Store) Get(ctx context.Context) (*Record, error) {
	raw, err := s.Docs.Get(ctx, currentPath)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Put overwrites the slot and its projection. Both writes are attempted; the
// first failure is returned.
func (s *Store) Put(ctx context.Context, rec Record) error {
	errCurrent := s.Docs.Put(ctx, currentPath, rec)
	errMeta := s.Docs.Put(ctx, metadataPath, Metadata{
		URL:         rec.FileURL,
		FileName:    rec.FileName,
		LastUpdated: rec.UploadedAt,
		Version:     rec.Version,
	})
	if errCurrent != nil {
		return errCurrent
	}
	return errMeta
}

// Remove deletes the record and its projection.
func (s *Store) Remove(ctx context.Context) error {
	errCurrent := s.Docs.Remove(ctx, currentPath)
	errMeta := s.Docs.Remove(ctx, metadataPath)
	if errCurrent != nil {
		return errCurrent
	}
	return errMeta
}

// Subscribe registers a live listener for the slot. Each delivery is an
// independent snapshot; a record that fails to decode degrades to nil so the
// caller is never left hanging.
func (s *Store) Subscribe(fn func(*Record)) func() {
	return s.Docs.Subscribe(currentPath, func(raw json.RawMessage) {
		if raw == nil {
			fn(nil)
			return
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			telemetry.Warn("resume.subscribe_decode_failed", map[string]any{"error": err.Error()})
			fn(nil)
			return
		}
		fn(&rec)
	})
}
