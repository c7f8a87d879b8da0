package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostdesk/internal/infrastructure/auth"
	"hostdesk/internal/shared/authorization"
	"hostdesk/internal/shared/config"
	"hostdesk/internal/shared/logger"
	"hostdesk/internal/shared/utils"
)

type AuthHandler struct {
	jwtService  *auth.JWTService
	hasher      *auth.BcryptPasswordHasher
	adminConfig config.AdminConfig
	logger      logger.Interface
}

func NewAuthHandler(
	jwtService *auth.JWTService,
	hasher *auth.BcryptPasswordHasher,
	adminConfig config.AdminConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		jwtService:  jwtService,
		hasher:      hasher,
		adminConfig: adminConfig,
		logger:      logger,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Login authenticates the configured admin credential and issues a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	if h.adminConfig.PasswordHash == "" {
		h.logger.Errorw("admin password hash is not configured")
		utils.ErrorResponse(c, http.StatusInternalServerError, "login is not configured")
		return
	}

	if req.Username != h.adminConfig.Username ||
		h.hasher.Verify(req.Password, h.adminConfig.PasswordHash) != nil {
		h.logger.Warnw("failed login attempt", "username", req.Username)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresIn, err := h.jwtService.Generate(req.Username, authorization.RoleAdmin)
	if err != nil {
		h.logger.Errorw("failed to generate token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.OKResponse(c, loginResponse{Token: token, ExpiresIn: expiresIn})
}
