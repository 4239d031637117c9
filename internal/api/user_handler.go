package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educonnect-backend/internal/core"
	"educonnect-backend/internal/models"
)

// UserHandler handles user-related API endpoints.
type UserHandler struct {
	userService core.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: us, logger: logger}
}

// Register handles POST /users/:email. It answers with the stored user whether
// it was just created or already existed.
func (h *UserHandler) Register(c *gin.Context) {
	email := c.Param("email")

	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}

	user, created, err := h.userService.Register(c.Request.Context(), email, req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("email", email))
		return
	}
	if created {
		h.logger.Info("User registered", zap.String("email", email), zap.String("userID", user.ID))
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetCurrentUser handles GET /user. The account may have been deleted after
// the token was issued.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	email := callerEmail(c)
	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("email", email))
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetAdminFlag handles GET /users/admin/:email. SelfOnly has already matched
// the path email to the token.
func (h *UserHandler) GetAdminFlag(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.userService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("email", email))
		return
	}
	c.JSON(http.StatusOK, AdminFlagResponse{Admin: isAdmin})
}

// SearchUsers handles GET /users/search?query=
func (h *UserHandler) SearchUsers(c *gin.Context) {
	users, err := h.userService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// PromoteToAdmin handles PATCH /users/admin/:id
func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	userID := c.Param("id")
	result, err := h.userService.PromoteToAdmin(c.Request.Context(), callerEmail(c), userID)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("userID", userID))
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	result, err := h.userService.Delete(c.Request.Context(), callerEmail(c), userID)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("userID", userID))
		return
	}
	c.JSON(http.StatusOK, result)
}
