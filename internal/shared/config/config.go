package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	DatabaseURL     string

	// Cloudinary media API credentials. CloudName plus APIKey/APISecret
	// enable signed uploads; CloudName plus UploadPreset enables the
	// unsigned fallback.
	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string

	// Local media store used in dev when Cloudinary is not configured.
	LocalStoreDir string

	// Admin session settings.
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string

	// Google OAuth admin login.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
}

// CredentialStatus reports which Cloudinary settings are present. It backs
// the combined diagnostic raised when every upload strategy is unavailable.
type CredentialStatus struct {
	CloudName    bool
	APIKey       bool
	APISecret    bool
	UploadPreset bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    env,
		CORSAllowOrigin:        splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:            dbURL,
		CloudinaryCloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:       getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret:    getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
		LocalStoreDir:          getEnv("LOCAL_STORE_DIR", "./data"),
		AdminEmail:             strings.ToLower(getEnv("ADMIN_EMAIL", "")),
		AdminPasswordHash:      getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		GoogleClientID:         getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:     getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:      getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:          getEnv("UI_REDIRECT_URL", "http://localhost:5173"),
	}
}

// CloudinaryStatus reports per-field presence of the Cloudinary settings.
func (c Config) CloudinaryStatus() CredentialStatus {
	return CredentialStatus{
		CloudName:    strings.TrimSpace(c.CloudinaryCloudName) != "",
		APIKey:       strings.TrimSpace(c.CloudinaryAPIKey) != "",
		APISecret:    strings.TrimSpace(c.CloudinaryAPISecret) != "",
		UploadPreset: strings.TrimSpace(c.CloudinaryUploadPreset) != "",
	}
}

// SignedUploadConfigured reports whether signed uploads can be attempted.
func (c Config) SignedUploadConfigured() bool {
	s := c.CloudinaryStatus()
	return s.CloudName && s.APIKey && s.APISecret
}

// UnsignedUploadConfigured reports whether the unsigned fallback can be attempted.
func (c Config) UnsignedUploadConfigured() bool {
	s := c.CloudinaryStatus()
	return s.CloudName && s.UploadPreset
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
