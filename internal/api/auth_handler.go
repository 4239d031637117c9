package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educonnect-backend/internal/core"
	"educonnect-backend/internal/models"
)

const tokenCookie = "token"

// AuthHandler issues bearer tokens and clears the session cookie.
type AuthHandler struct {
	tokenService  core.TokenService
	secureCookies bool
	logger        *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ts core.TokenService, secureCookies bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{tokenService: ts, secureCookies: secureCookies, logger: logger}
}

// IssueToken handles POST /jwt
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Email is required"})
		return
	}

	token, err := h.tokenService.Issue(req.Email)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("email", req.Email))
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Success: true, Token: token})
}

// Logout handles GET /logout. Production cookies were set cross-site, so
// clearing them needs Secure and SameSite=None.
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.secureCookies {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(tokenCookie, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
