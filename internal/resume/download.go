package resume

import "strings"

const (
	cdnHostMarker    = "cloudinary.com"
	uploadMarker     = "/upload/"
	attachmentMarker = "fl_attachment/"
)

// DirectDownloadURL returns the URL unchanged. Forcing a download here used
// to insert a transformation that broke in-browser PDF viewers.
func DirectDownloadURL(originalURL string) string {
	return originalURL
}

// SimpleDownloadURL splices the force-attachment flag into a CDN delivery
// URL right after the upload path marker. URLs from unrecognized hosts are
// returned unchanged. Idempotent: reapplying never double-inserts the flag.
func SimpleDownloadURL(originalURL string) string {
	if !strings.Contains(originalURL, cdnHostMarker) {
		return originalURL
	}
	parts := strings.SplitN(originalURL, uploadMarker, 2)
	if len(parts) != 2 {
		return originalURL
	}
	if strings.HasPrefix(parts[1], attachmentMarker) {
		return originalURL
	}
	return parts[0] + uploadMarker + attachmentMarker + parts[1]
}

// BestDownloadURL picks the most reliable download strategy: the simple
// rewrite for CDN URLs, pass-through for everything else.
func BestDownloadURL(originalURL string) string {
	if strings.Contains(originalURL, cdnHostMarker) {
		return SimpleDownloadURL(originalURL)
	}
	return originalURL
}
