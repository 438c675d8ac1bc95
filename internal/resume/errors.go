package resume

import "errors"

// User-facing failures. Every facade operation resolves to one of these
// sentences or passes the remote upload message through unchanged.
var (
	ErrNoFile           = errors.New("No file provided")
	ErrNotPDF           = errors.New("Only PDF files are supported")
	ErrTooLarge         = errors.New("File size must be less than 10MB")
	ErrNotFound         = errors.New("No resume found to delete")
	ErrPermissionDenied = errors.New("Permission denied. Please log in as an administrator.")
	ErrConfigIncomplete = errors.New("Cloudinary configuration is incomplete. Please check environment variables.")
	ErrAuthFailed       = errors.New("Cloudinary authentication failed. Please check API credentials.")
)
