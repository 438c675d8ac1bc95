package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	sharedauth "portfolio-backend/internal/shared/auth"
)

const testSecret = "test-secret"

func newLoginRouter(t *testing.T, password string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	r := gin.New()
	NewHandler("Admin@Example.com", string(hash), testSecret).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesAdminToken(t *testing.T) {
	r := newLoginRouter(t, "hunter2")

	w := postLogin(r, `{"email":"ADMIN@example.com","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin@example.com", resp.Email)

	claims, err := sharedauth.VerifyAdminToken(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.Equal(t, sharedauth.RoleAdmin, claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := newLoginRouter(t, "hunter2")

	w := postLogin(r, `{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	r := newLoginRouter(t, "hunter2")

	w := postLogin(r, `{"email":"intruder@example.com","password":"hunter2"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r := newLoginRouter(t, "hunter2")

	w := postLogin(r, `{"email":"admin@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUnconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler("", "", "").RegisterRoutes(r.Group("/api/v1"))

	w := postLogin(r, `{"email":"a@b.c","password":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
