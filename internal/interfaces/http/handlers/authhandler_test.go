package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostdesk/internal/infrastructure/auth"
	"hostdesk/internal/shared/config"
	"hostdesk/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuthHandler(t *testing.T, password string) *AuthHandler {
	t.Helper()

	hasher := auth.NewBcryptPasswordHasher(0)
	adminConfig := config.AdminConfig{Username: "admin"}
	if password != "" {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		adminConfig.PasswordHash = hash
	}

	jwtService := auth.NewJWTService("test-secret", 60)
	return NewAuthHandler(jwtService, hasher, adminConfig, testLogger())
}

func performLogin(handler *AuthHandler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Login(c)
	return w
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials return a token", func(t *testing.T) {
		handler := newAuthHandler(t, "s3cret")

		w := performLogin(handler, `{"username":"admin","password":"s3cret"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Token     string `json:"token"`
				ExpiresIn int64  `json:"expires_in"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data.Token)
		assert.Equal(t, int64(3600), resp.Data.ExpiresIn)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		handler := newAuthHandler(t, "s3cret")

		w := performLogin(handler, `{"username":"admin","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown username is rejected", func(t *testing.T) {
		handler := newAuthHandler(t, "s3cret")

		w := performLogin(handler, `{"username":"root","password":"s3cret"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing password hash is a server error", func(t *testing.T) {
		handler := newAuthHandler(t, "")

		w := performLogin(handler, `{"username":"admin","password":"s3cret"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		handler := newAuthHandler(t, "s3cret")

		w := performLogin(handler, `{"username":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginTokenIsVerifiable(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	hasher := auth.NewBcryptPasswordHasher(0)
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	handler := NewAuthHandler(jwtService, hasher, config.AdminConfig{
		Username:     "admin",
		PasswordHash: hash,
	}, testLogger())

	w := performLogin(handler, `{"username":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := jwtService.Verify(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.Role.IsAdmin())
}
