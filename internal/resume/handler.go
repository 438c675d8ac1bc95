package resume

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the facade.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches the read-side resume routes.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.current)
	rg.GET("/resume/stats", h.stats)
	rg.GET("/resume/download", h.download)
	rg.GET("/resume/events", h.events)
}

// RegisterAdminRoutes attaches the write-side resume routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume", h.upload)
	rg.DELETE("/resume", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxFileSize+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrNoFile.Error(), nil)
		return
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

	rec, err := h.Svc.Upload(c.Request.Context(), File{
		Name:        fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.JSON(c, http.StatusCreated, rec)
}

func (h *Handler) current(c *gin.Context) {
	rec, err := h.Svc.Current(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		return
	}
	if rec == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "no resume available", nil)
		return
	}
	respond.OK(c, rec)
}

func (h *Handler) stats(c *gin.Context) {
	respond.OK(c, h.Svc.GetStats(c.Request.Context()))
}

func (h *Handler) download(c *gin.Context) {
	rec, err := h.Svc.Current(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		return
	}
	if rec == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "no resume available", nil)
		return
	}
	c.Redirect(http.StatusFound, BestDownloadURL(rec.FileURL))
}

// events streams slot snapshots as server-sent events. The subscription
// delivers the current record immediately, then one event per change.
func (h *Handler) events(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	snapshots := make(chan *Record, 8)
	unsubscribe := h.Svc.Subscribe(func(rec *Record) {
		select {
		case snapshots <- rec:
		default:
			// Slow consumer; drop in favor of newer snapshots.
		}
	})
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case rec := <-snapshots:
			payload, err := json.Marshal(rec)
			if err != nil {
				payload = []byte("null")
			}
			c.SSEvent("resume", string(payload))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoFile), errors.Is(err, ErrNotPDF), errors.Is(err, ErrTooLarge):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, ErrPermissionDenied):
		respond.Error(c, http.StatusForbidden, "permission_denied", err.Error(), nil)
	case errors.Is(err, ErrConfigIncomplete):
		respond.Error(c, http.StatusInternalServerError, "configuration_error", err.Error(), nil)
	case errors.Is(err, ErrAuthFailed):
		respond.Error(c, http.StatusBadGateway, "authentication_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusBadGateway, "upload_failed", err.Error(), nil)
	}
}
