// Package local implements media.Uploader on the local filesystem so the
// service can run in dev without Cloudinary credentials. Files are served
// back by the router under the public base path.
package local

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"portfolio-backend/internal/media"
	"portfolio-backend/internal/shared/util"
)

// Store writes uploads under a base directory.
type Store struct {
	baseDir    string
	publicBase string
	now        func() time.Time
}

// New creates a local store rooted at baseDir. publicBase is the URL path
// the router serves the directory from (e.g. "/media").
func New(baseDir, publicBase string) *Store {
	return &Store{
		baseDir:    baseDir,
		publicBase: strings.TrimSuffix(publicBase, "/"),
		now:        time.Now,
	}
}

// Provider names the backend holding uploaded binaries.
func (s *Store) Provider() string { return "local" }

// UploadResume stores a resume under the fixed resume folder.
func (s *Store) UploadResume(ctx context.Context, fileName string, data []byte) (media.Upload, error) {
	publicID := fmt.Sprintf("resume_%d", s.now().UnixMilli())
	return s.save(ctx, "portfolio/resume", publicID, fileName, data)
}

// Upload stores a generic file under the given folder.
func (s *Store) Upload(ctx context.Context, fileName, contentType, folder string, data []byte) (media.Upload, error) {
	publicID := fmt.Sprintf("media_%d", s.now().UnixNano())
	return s.save(ctx, folder, publicID, fileName, data)
}

func (s *Store) save(ctx context.Context, folder, publicID, fileName string, data []byte) (media.Upload, error) {
	if err := ctx.Err(); err != nil {
		return media.Upload{}, &media.Error{Kind: media.KindTransport, Message: err.Error()}
	}

	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return media.Upload{}, &media.Error{Kind: media.KindUpload, Message: err.Error()}
	}

	key := path.Join(folder, publicID+"_"+sanitized)
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return media.Upload{}, &media.Error{Kind: media.KindUpload, Message: fmt.Sprintf("mkdir: %v", err)}
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return media.Upload{}, &media.Error{Kind: media.KindUpload, Message: fmt.Sprintf("write file: %v", err)}
	}

	return media.Upload{
		URL:      s.publicBase + "/" + key,
		PublicID: path.Join(folder, publicID),
	}, nil
}
