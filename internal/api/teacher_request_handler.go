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

// TeacherRequestHandler handles the teacher application endpoints.
type TeacherRequestHandler struct {
	requestService core.TeacherRequestService
	logger         *zap.Logger
}

// NewTeacherRequestHandler creates a new TeacherRequestHandler.
func NewTeacherRequestHandler(rs core.TeacherRequestService, logger *zap.Logger) *TeacherRequestHandler {
	return &TeacherRequestHandler{requestService: rs, logger: logger}
}

// SubmitRequest handles POST /teacher-req. The applicant is the token holder.
func (h *TeacherRequestHandler) SubmitRequest(c *gin.Context) {
	var req models.TeacherRequestSubmission
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}

	email := callerEmail(c)
	created, err := h.requestService.Submit(c.Request.Context(), email, req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("email", email))
		return
	}
	c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: created.ID})
}

// ListRequests handles GET /teacher-req and the public GET /all-teacher.
func (h *TeacherRequestHandler) ListRequests(c *gin.Context) {
	requests, err := h.requestService.List(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// CheckTeacher handles GET /teacher-req/teacher/:email
func (h *TeacherRequestHandler) CheckTeacher(c *gin.Context) {
	email := c.Param("email")
	approved, err := h.requestService.IsApprovedTeacher(c.Request.Context(), email)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("email", email))
		return
	}
	c.JSON(http.StatusOK, TeacherFlagResponse{Teacher: approved})
}

// ApproveRequest handles PATCH /teacher-req/approve/:id
func (h *TeacherRequestHandler) ApproveRequest(c *gin.Context) {
	h.setStatus(c, models.RequestApproved)
}

// RejectRequest handles PATCH /teacher-req/rejected/:id
func (h *TeacherRequestHandler) RejectRequest(c *gin.Context) {
	h.setStatus(c, models.RequestRejected)
}

func (h *TeacherRequestHandler) setStatus(c *gin.Context, status string) {
	requestID := c.Param("id")
	result, err := h.requestService.SetStatus(c.Request.Context(), callerEmail(c), requestID, status)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("requestID", requestID), zap.String("status", status))
		return
	}
	c.JSON(http.StatusOK, result)
}
