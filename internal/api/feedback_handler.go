package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educonnect-backend/internal/core"
	"educonnect-backend/internal/models"
)

// FeedbackHandler handles the feedback endpoints.
type FeedbackHandler struct {
	feedbackService core.FeedbackService
	logger          *zap.Logger
}

func NewFeedbackHandler(fs core.FeedbackService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: fs, logger: logger}
}

// CreateFeedback handles POST /feedback. The body is free-form.
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var feedback models.Feedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.feedbackService.Create(c.Request.Context(), feedback)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: created.ID()})
}

// ListFeedback handles GET /feedback
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	feedback, err := h.feedbackService.List(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}
