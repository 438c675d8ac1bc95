package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/media"
	"portfolio-backend/internal/shared/telemetry"
)

// File is the upload input.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// Service is the resume facade: it sequences validation, upload, version
// computation and persistence, and offers the read-side helpers. The version
// read-then-write is not atomic; a single admin writer is assumed.
type Service struct {
	Uploader media.Uploader
	Slot     Slot
	Now      func() time.Time
}

// NewService constructs a Service.
func NewService(uploader media.Uploader, slot Slot) *Service {
	return &Service{Uploader: uploader, Slot: slot, Now: time.Now}
}

// Upload validates the file, uploads it and persists a record with the next
// version number. Validation failures are detected before any network call.
func (s *Service) Upload(ctx context.Context, f File) (Record, error) {
	if f.Name == "" || len(f.Data) == 0 {
		return Record{}, ErrNoFile
	}
	if f.ContentType != "application/pdf" {
		return Record{}, ErrNotPDF
	}
	size := f.Size
	if size == 0 {
		size = int64(len(f.Data))
	}
	if size > MaxFileSize {
		return Record{}, ErrTooLarge
	}

	result, err := s.Uploader.UploadResume(ctx, f.Name, f.Data)
	if err != nil {
		return Record{}, s.mapError(err)
	}

	current, err := s.Current(ctx)
	if err != nil {
		return Record{}, s.mapError(err)
	}
	version := 1
	if current != nil {
		version = current.Version + 1
	}

	now := s.Now()
	rec := Record{
		ID:          fmt.Sprintf("resume_v%d_%d", version, now.UnixMilli()),
		FileName:    f.Name,
		FileURL:     result.URL,
		FileSize:    size,
		UploadedAt:  now.UTC().Format(time.RFC3339),
		Version:     version,
		StorageType: s.Uploader.Provider(),
		PublicID:    result.PublicID,
		Pages:       PageCount(f.Data),
	}

	if err := s.Slot.Put(ctx, rec); err != nil {
		return Record{}, s.mapError(err)
	}

	telemetry.Info("resume.uploaded", map[string]any{
		"id":       rec.ID,
		"version":  rec.Version,
		"size":     rec.FileSize,
		"provider": rec.StorageType,
	})
	return rec, nil
}

// Current returns the current record, or nil when the slot is empty. A
// permission failure on read degrades to nil: the resume may legitimately be
// unreadable before authentication.
func (s *Service) Current(ctx context.Context) (*Record, error) {
	rec, err := s.Slot.Get(ctx)
	if errors.Is(err, docstore.ErrPermissionDenied) {
		telemetry.Warn("resume.read_degraded", map[string]any{"reason": "permission denied"})
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes the metadata record. The CDN binary is intentionally left
// behind; cleanup is out of band.
func (s *Service) Delete(ctx context.Context) error {
	current, err := s.Current(ctx)
	if err != nil {
		return s.mapError(err)
	}
	if current == nil {
		return ErrNotFound
	}
	if err := s.Slot.Remove(ctx); err != nil {
		return s.mapError(err)
	}
	return nil
}

// GetStats summarizes the current slot. Errors degrade to "no resume".
func (s *Service) GetStats(ctx context.Context) Stats {
	rec, err := s.Current(ctx)
	if err != nil || rec == nil {
		return Stats{HasResume: false}
	}
	return Stats{
		HasResume:   true,
		Version:     rec.Version,
		LastUpdated: rec.UploadedAt,
		FileSize:    rec.FileSize,
		StorageType: rec.StorageType,
	}
}

// Subscribe registers a live listener for slot changes.
func (s *Service) Subscribe(fn func(*Record)) func() {
	return s.Slot.Subscribe(fn)
}

// mapError resolves store and upload failures to the fixed user-facing
// sentences; unknown failures pass through unchanged.
func (s *Service) mapError(err error) error {
	switch {
	case errors.Is(err, docstore.ErrPermissionDenied):
		return ErrPermissionDenied
	case media.IsKind(err, media.KindConfiguration):
		return ErrConfigIncomplete
	case media.IsKind(err, media.KindAuthentication),
		strings.Contains(err.Error(), "Invalid Signature"):
		return ErrAuthFailed
	default:
		return err
	}
}
