package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educonnect-backend/internal/core"
	"educonnect-backend/internal/models"
)

// PromptHandler relays prompts to the generative-text provider.
type PromptHandler struct {
	promptService core.PromptService
	logger        *zap.Logger
}

func NewPromptHandler(ps core.PromptService, logger *zap.Logger) *PromptHandler {
	return &PromptHandler{promptService: ps, logger: logger}
}

// Forward handles POST /geminiBot
func (h *PromptHandler) Forward(c *gin.Context) {
	var req models.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: core.ErrPromptRequired.Error()})
		return
	}

	text, err := h.promptService.Forward(c.Request.Context(), req.Prompt)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, PromptResponse{Text: text})
}
