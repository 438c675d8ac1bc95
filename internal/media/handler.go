package media

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

const maxUploadSize = 25 << 20 // 25MB, covers project videos

// Prober checks whether a delivery URL is reachable.
type Prober interface {
	Probe(ctx context.Context, url string) Accessibility
}

// Handler serves the generic admin media endpoints: uploads for project and
// certificate assets, plus a delivery-URL diagnostic.
type Handler struct {
	Uploader Uploader
	Prober   Prober
}

// NewHandler constructs a Handler. Prober may be nil when the active provider
// offers no diagnostic.
func NewHandler(uploader Uploader, prober Prober) *Handler {
	return &Handler{Uploader: uploader, Prober: prober}
}

// RegisterAdminRoutes attaches the media routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/media", h.upload)
	rg.GET("/media/probe", h.probe)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	folder := strings.TrimSpace(c.PostForm("folder"))
	if folder == "" {
		folder = "portfolio/media"
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.Uploader.Upload(c.Request.Context(), fileHeader.Filename, contentType, folder, data)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"url":       result.URL,
		"publicId":  result.PublicID,
		"mediaType": ResourceTypeFor(contentType),
	})
}

func (h *Handler) probe(c *gin.Context) {
	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "url is required", nil)
		return
	}
	if h.Prober == nil {
		respond.Error(c, http.StatusNotImplemented, "probe_unavailable", "active media provider has no probe", nil)
		return
	}
	respond.JSON(c, http.StatusOK, h.Prober.Probe(c.Request.Context(), url))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var me *Error
	switch {
	case IsKind(err, KindConfiguration):
		respond.Error(c, http.StatusInternalServerError, "configuration_error", err.Error(), nil)
	case IsKind(err, KindAuthentication):
		respond.Error(c, http.StatusBadGateway, "authentication_error", err.Error(), nil)
	case IsKind(err, KindTransport):
		respond.Error(c, http.StatusBadGateway, "upload_failed", err.Error(), nil)
	default:
		status := http.StatusBadGateway
		if errors.As(err, &me) && me.Status >= 400 && me.Status < 500 {
			status = http.StatusBadRequest
		}
		respond.Error(c, status, "upload_failed", err.Error(), nil)
	}
}
