package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educonnect-backend/internal/core"
	"educonnect-backend/internal/models"
)

// ClassHandler handles API endpoints related to classes.
type ClassHandler struct {
	classService core.ClassService
	logger       *zap.Logger
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(cs core.ClassService, logger *zap.Logger) *ClassHandler {
	return &ClassHandler{classService: cs, logger: logger}
}

// CreateClass handles POST /class
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var class models.Class
	if err := c.ShouldBindJSON(&class); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.classService.Create(c.Request.Context(), callerEmail(c), class)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: created.ID})
}

// ListAllClasses handles GET /allClasses
func (h *ClassHandler) ListAllClasses(c *gin.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ListMyClasses handles GET /myClasses for the token's email.
func (h *ClassHandler) ListMyClasses(c *gin.Context) {
	h.listByPublisher(c, callerEmail(c))
}

// ListPublisherClasses handles GET /my-classes/:email
func (h *ClassHandler) ListPublisherClasses(c *gin.Context) {
	h.listByPublisher(c, c.Param("email"))
}

func (h *ClassHandler) listByPublisher(c *gin.Context, email string) {
	classes, err := h.classService.ListByPublisher(c.Request.Context(), email)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("email", email))
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetClass handles GET /class/:id
func (h *ClassHandler) GetClass(c *gin.Context) {
	classID := c.Param("id")
	class, err := h.classService.Get(c.Request.Context(), classID)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("classID", classID))
		return
	}
	c.JSON(http.StatusOK, class)
}

// UpdateClass handles PUT /class/:id as a merge-patch.
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	classID := c.Param("id")

	var patch models.ClassPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.classService.Update(c.Request.Context(), callerEmail(c), classID, patch); err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("classID", classID))
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Class updated successfully"})
}

// SetAssignments handles PATCH /my-classes/:id/assignments. The whole JSON
// body becomes the class's assignments.
func (h *ClassHandler) SetAssignments(c *gin.Context) {
	classID := c.Param("id")

	var assignments interface{}
	if err := c.ShouldBindJSON(&assignments); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.classService.SetAssignments(c.Request.Context(), callerEmail(c), classID, assignments)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("classID", classID))
		return
	}
	c.JSON(http.StatusOK, result)
}

// ApproveClass handles PATCH /allClasses/approve/:id
func (h *ClassHandler) ApproveClass(c *gin.Context) {
	h.setStatus(c, models.ClassApproved)
}

// RejectClass handles PATCH /allClasses/rejected/:id
func (h *ClassHandler) RejectClass(c *gin.Context) {
	h.setStatus(c, models.ClassRejected)
}

func (h *ClassHandler) setStatus(c *gin.Context, status string) {
	classID := c.Param("id")
	result, err := h.classService.SetStatus(c.Request.Context(), callerEmail(c), classID, status)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("classID", classID), zap.String("status", status))
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteClass handles DELETE /class/:id
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	classID := c.Param("id")
	result, err := h.classService.Delete(c.Request.Context(), callerEmail(c), classID)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("classID", classID))
		return
	}
	c.JSON(http.StatusOK, DeleteClassResponse{Message: "Class deleted successfully", DeletedCount: result.DeletedCount})
}
