package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminauth "portfolio-backend/internal/auth"
	"portfolio-backend/internal/certificates"
	"portfolio-backend/internal/media"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config              config.Config
	ResumeHandler       *resume.Handler
	ProjectsHandler     *projects.Handler
	CertificatesHandler *certificates.Handler
	MediaHandler        *media.Handler
	LoginHandler        *adminauth.Handler
	GoogleAuth          *adminauth.GoogleService

	// ServeLocalMedia exposes the local store directory over /media when the
	// dev uploader is active.
	ServeLocalMedia bool
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	if deps.ServeLocalMedia {
		r.Static("/media", deps.Config.LocalStoreDir)
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.LoginHandler != nil {
		deps.LoginHandler.RegisterRoutes(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterPublicRoutes(api)
	}
	if deps.ProjectsHandler != nil {
		deps.ProjectsHandler.RegisterPublicRoutes(api)
	}
	if deps.CertificatesHandler != nil {
		deps.CertificatesHandler.RegisterPublicRoutes(api)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(deps.Config.JWTSecret))
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterAdminRoutes(admin)
	}
	if deps.ProjectsHandler != nil {
		deps.ProjectsHandler.RegisterAdminRoutes(admin)
	}
	if deps.CertificatesHandler != nil {
		deps.CertificatesHandler.RegisterAdminRoutes(admin)
	}
	if deps.MediaHandler != nil {
		deps.MediaHandler.RegisterAdminRoutes(admin)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
