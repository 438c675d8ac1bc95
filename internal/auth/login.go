package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	sharedauth "portfolio-backend/internal/shared/auth"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/telemetry"
)

// Handler serves the password-based admin login.
type Handler struct {
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string
}

// NewHandler constructs a Handler.
func NewHandler(adminEmail, adminPasswordHash, jwtSecret string) *Handler {
	return &Handler{
		AdminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		AdminPasswordHash: adminPasswordHash,
		JWTSecret:         jwtSecret,
	}
}

// RegisterRoutes attaches the login route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.login)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

func (h *Handler) login(c *gin.Context) {
	if h.AdminEmail == "" || h.AdminPasswordHash == "" || h.JWTSecret == "" {
		respond.Error(c, http.StatusInternalServerError, "auth_not_configured", "admin login not configured", nil)
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email and password are required", nil)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email and password are required", nil)
		return
	}

	// Compare the password even on an email mismatch so both failure paths
	// take comparable time.
	hashErr := bcrypt.CompareHashAndPassword([]byte(h.AdminPasswordHash), []byte(req.Password))
	if email != h.AdminEmail || hashErr != nil {
		telemetry.Warn("auth.login_rejected", map[string]any{"email": email})
		respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", nil)
		return
	}

	token, err := sharedauth.SignAdminToken(h.JWTSecret, email)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}

	telemetry.Info("auth.login", map[string]any{"email": email})
	respond.JSON(c, http.StatusOK, loginResponse{Token: token, Email: email})
}
