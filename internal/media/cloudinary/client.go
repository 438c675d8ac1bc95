// Package cloudinary implements the media.Uploader contract against the
// Cloudinary upload API, with a signed strategy authenticated by a request
// signature and an unsigned fallback authenticated by a pre-shared preset.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"portfolio-backend/internal/media"
	"portfolio-backend/internal/shared/telemetry"
)

const (
	defaultBaseURL = "https://api.cloudinary.com"
	resumeFolder   = "portfolio/resume"
)

// Config holds the Cloudinary account settings. CloudName, APIKey and
// APISecret enable signed uploads; CloudName and UploadPreset enable the
// unsigned fallback. Injected explicitly, never read from globals.
type Config struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string

	// BaseURL overrides the API host, used by tests.
	BaseURL    string
	HTTPClient *http.Client
	Now        func() time.Time
}

// Client issues upload requests against the Cloudinary API.
type Client struct {
	cfg  Config
	http *http.Client
	now  func() time.Time
}

// New constructs a Client from the given configuration.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Client{cfg: cfg, http: httpClient, now: now}
}

// Provider names the backend holding uploaded binaries.
func (c *Client) Provider() string { return "cloudinary" }

// UploadOptions controls a single upload request.
type UploadOptions struct {
	Folder       string
	PublicID     string
	ResourceType string
	Overwrite    bool
}

// SignedConfigured reports whether signed uploads can be attempted.
func (c *Client) SignedConfigured() bool {
	return c.cfg.CloudName != "" && c.cfg.APIKey != "" && c.cfg.APISecret != ""
}

// UnsignedConfigured reports whether unsigned uploads can be attempted.
func (c *Client) UnsignedConfigured() bool {
	return c.cfg.CloudName != "" && c.cfg.UploadPreset != ""
}

// SignedUpload uploads a file authenticated by a request signature. The
// configuration is checked before any network call.
func (c *Client) SignedUpload(ctx context.Context, fileName, contentType string, data []byte, opts UploadOptions) (media.Upload, error) {
	if !c.SignedConfigured() {
		return media.Upload{}, &media.Error{
			Kind:    media.KindConfiguration,
			Message: "Cloudinary configuration is incomplete",
		}
	}

	resourceType := opts.ResourceType
	if resourceType == "" {
		resourceType = media.ResourceTypeFor(contentType)
	}

	params := map[string]string{
		"folder":    opts.Folder,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	if opts.PublicID != "" {
		params["public_id"] = opts.PublicID
	}
	if opts.Overwrite {
		params["overwrite"] = "true"
	}
	signature := media.Signature(params, c.cfg.APISecret)

	fields := map[string]string{"api_key": c.cfg.APIKey}
	for name, value := range params {
		fields[name] = value
	}
	fields["signature"] = signature

	return c.post(ctx, resourceType, fileName, data, fields)
}

// UnsignedUpload uploads a file authenticated only by the pre-shared preset.
func (c *Client) UnsignedUpload(ctx context.Context, fileName, contentType string, data []byte, opts UploadOptions) (media.Upload, error) {
	if !c.UnsignedConfigured() {
		return media.Upload{}, &media.Error{
			Kind:    media.KindConfiguration,
			Message: "Unsigned upload preset not configured",
		}
	}

	resourceType := opts.ResourceType
	if resourceType == "" {
		resourceType = media.ResourceTypeFor(contentType)
	}

	fields := map[string]string{
		"upload_preset": c.cfg.UploadPreset,
		"folder":        opts.Folder,
	}
	if opts.PublicID != "" {
		fields["public_id"] = opts.PublicID
	}

	return c.post(ctx, resourceType, fileName, data, fields)
}

// Upload performs a generic signed upload into the given folder.
func (c *Client) Upload(ctx context.Context, fileName, contentType, folder string, data []byte) (media.Upload, error) {
	return c.SignedUpload(ctx, fileName, contentType, data, UploadOptions{Folder: folder})
}

// UploadResume uploads a resume PDF: fixed folder, generated public id, raw
// resource type. The signed strategy is tried first; its failure triggers the
// unsigned fallback instead of propagating. When every strategy fails or is
// unavailable, the error lists which configuration values are present.
func (c *Client) UploadResume(ctx context.Context, fileName string, data []byte) (media.Upload, error) {
	opts := UploadOptions{
		Folder:       resumeFolder,
		PublicID:     fmt.Sprintf("resume_%d", c.now().UnixMilli()),
		ResourceType: media.ResourceRaw,
	}

	var lastErr error
	if c.SignedConfigured() {
		result, err := c.SignedUpload(ctx, fileName, "application/pdf", data, opts)
		if err == nil && result.URL != "" {
			return result, nil
		}
		lastErr = err
		telemetry.Warn("cloudinary.signed_upload_failed", map[string]any{"error": errMessage(err)})
	}

	if c.UnsignedConfigured() {
		result, err := c.UnsignedUpload(ctx, fileName, "application/pdf", data, opts)
		if err == nil && result.URL != "" {
			return result, nil
		}
		lastErr = err
		telemetry.Warn("cloudinary.unsigned_upload_failed", map[string]any{"error": errMessage(err)})
	}

	return media.Upload{}, c.combinedFailure(lastErr)
}

func (c *Client) combinedFailure(lastErr error) error {
	kind := media.KindUpload
	if lastErr == nil {
		kind = media.KindConfiguration
	} else if me, ok := lastErr.(*media.Error); ok && me.Kind == media.KindAuthentication {
		kind = media.KindAuthentication
	}

	detail := ""
	if lastErr != nil {
		detail = "; last error: " + lastErr.Error()
	}
	return &media.Error{
		Kind: kind,
		Message: fmt.Sprintf(
			"All upload methods failed. Cloudinary configuration: cloud_name=%s api_key=%s api_secret=%s upload_preset=%s%s",
			presence(c.cfg.CloudName), presence(c.cfg.APIKey), presence(c.cfg.APISecret), presence(c.cfg.UploadPreset), detail,
		),
	}
}

func (c *Client) post(ctx context.Context, resourceType, fileName string, data []byte, fields map[string]string) (media.Upload, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	filePart, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return media.Upload{}, &media.Error{Kind: media.KindTransport, Message: err.Error()}
	}
	if _, err := filePart.Write(data); err != nil {
		return media.Upload{}, &media.Error{Kind: media.KindTransport, Message: err.Error()}
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return media.Upload{}, &media.Error{Kind: media.KindTransport, Message: err.Error()}
		}
	}
	if err := writer.Close(); err != nil {
		return media.Upload{}, &media.Error{Kind: media.KindTransport, Message: err.Error()}
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/%s/upload", c.cfg.BaseURL, c.cfg.CloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return media.Upload{}, &media.Error{Kind: media.KindTransport, Message: err.Error()}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return media.Upload{}, &media.Error{Kind: media.KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return media.Upload{}, &media.Error{Kind: media.KindTransport, Message: err.Error()}
	}

	var parsed struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
		Error     *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "Upload failed"
		if parsed.Error != nil && parsed.Error.Message != "" {
			message = parsed.Error.Message
		}
		kind := media.KindUpload
		if resp.StatusCode == http.StatusUnauthorized {
			kind = media.KindAuthentication
		}
		return media.Upload{}, &media.Error{Kind: kind, Message: message, Status: resp.StatusCode}
	}

	return media.Upload{
		URL:      parsed.SecureURL,
		PublicID: parsed.PublicID,
		Status:   resp.StatusCode,
		Raw:      raw,
	}, nil
}

// Probe issues a HEAD request to check whether a delivery URL is reachable.
// Diagnostics only; never used on the upload path.
func (c *Client) Probe(ctx context.Context, url string) media.Accessibility {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return media.Accessibility{Error: err.Error()}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return media.Accessibility{Error: err.Error()}
	}
	defer resp.Body.Close()

	return media.Accessibility{
		Accessible: resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status:     resp.StatusCode,
	}
}

func presence(v string) string {
	if v != "" {
		return "present"
	}
	return "missing"
}

func errMessage(err error) string {
	if err == nil {
		return "empty result"
	}
	return err.Error()
}
