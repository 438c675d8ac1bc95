package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	adminauth "portfolio-backend/internal/auth"
	"portfolio-backend/internal/certificates"
	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/media"
	"portfolio-backend/internal/media/cloudinary"
	localmedia "portfolio-backend/internal/media/local"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Docs   docstore.Store

	Uploader media.Uploader

	ResumeService       *resume.Service
	ProjectsService     *projects.Service
	CertificatesService *certificates.Service

	ResumeHandler       *resume.Handler
	ProjectsHandler     *projects.Handler
	CertificatesHandler *certificates.Handler
	MediaHandler        *media.Handler
	LoginHandler        *adminauth.Handler
	GoogleAuth          *adminauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var inner docstore.Store
	if sqlDB != nil {
		inner = docstore.NewPostgres(sqlDB)
	} else {
		inner = docstore.NewMemory()
	}
	docs := docstore.Guard(inner)

	uploader, prober, serveLocal := buildUploader(cfg)

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		Docs:     docs,
		Uploader: uploader,
	}

	app.ResumeService = resume.NewService(uploader, resume.NewStore(docs))
	app.ProjectsService = projects.NewService(projects.NewDocRepo(docs))
	app.CertificatesService = certificates.NewService(certificates.NewDocRepo(docs))

	app.ResumeHandler = resume.NewHandler(app.ResumeService)
	app.ProjectsHandler = projects.NewHandler(app.ProjectsService)
	app.CertificatesHandler = certificates.NewHandler(app.CertificatesService)
	app.MediaHandler = media.NewHandler(uploader, prober)
	app.LoginHandler = adminauth.NewHandler(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)
	app.GoogleAuth = adminauth.NewGoogleService(
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL,
		cfg.UIRedirectURL, cfg.AdminEmail, cfg.JWTSecret,
	)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              cfg,
		ResumeHandler:       app.ResumeHandler,
		ProjectsHandler:     app.ProjectsHandler,
		CertificatesHandler: app.CertificatesHandler,
		MediaHandler:        app.MediaHandler,
		LoginHandler:        app.LoginHandler,
		GoogleAuth:          app.GoogleAuth,
		ServeLocalMedia:     serveLocal,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory document store")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory document store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, err
	}
	return sqlDB, nil
}

// buildUploader picks the media provider: Cloudinary whenever any upload
// strategy is configured, the local filesystem store otherwise (dev only).
func buildUploader(cfg config.Config) (media.Uploader, media.Prober, bool) {
	client := cloudinary.New(cloudinary.Config{
		CloudName:    cfg.CloudinaryCloudName,
		APIKey:       cfg.CloudinaryAPIKey,
		APISecret:    cfg.CloudinaryAPISecret,
		UploadPreset: cfg.CloudinaryUploadPreset,
	})
	if client.SignedConfigured() || client.UnsignedConfigured() || !isDevLike(cfg.Env) {
		return client, client, false
	}

	log.Printf("bootstrap: Cloudinary not configured; using local media store at %s", cfg.LocalStoreDir)
	store := localmedia.New(cfg.LocalStoreDir, "http://localhost:"+cfg.Port+"/media")
	return store, nil, true
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
