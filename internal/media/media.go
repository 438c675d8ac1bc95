// Package media defines the upload contract against the remote media CDN:
// the request signature scheme, resource-type classification and the
// normalized result every upload strategy produces.
package media

import (
	"context"
	"encoding/json"
	"strings"
)

// Resource types understood by the media API endpoint.
const (
	ResourceImage = "image"
	ResourceVideo = "video"
	ResourceRaw   = "raw"
	ResourceAuto  = "auto"
)

// Upload is the normalized success value of an upload.
type Upload struct {
	URL      string
	PublicID string
	// Status and Raw preserve the HTTP response for diagnostics; the
	// unsigned path always fills them.
	Status int
	Raw    json.RawMessage
}

// Uploader transmits binary files to a media backend.
type Uploader interface {
	// UploadResume performs the resume-specialized upload (fixed folder,
	// generated public id, raw resource type).
	UploadResume(ctx context.Context, fileName string, data []byte) (Upload, error)
	// Upload performs a generic upload into the given folder.
	Upload(ctx context.Context, fileName, contentType, folder string, data []byte) (Upload, error)
	// Provider names the backend holding uploaded binaries.
	Provider() string
}

// Accessibility is the result of a diagnostic reachability probe.
type Accessibility struct {
	Accessible bool   `json:"accessible"`
	Status     int    `json:"status,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ResourceTypeFor infers the media API resource type from a MIME type.
func ResourceTypeFor(contentType string) string {
	switch {
	case contentType == "application/pdf":
		return ResourceRaw
	case strings.HasPrefix(contentType, "image/"):
		return ResourceImage
	case strings.HasPrefix(contentType, "video/"):
		return ResourceVideo
	default:
		return ResourceAuto
	}
}
