package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educonnect-backend/internal/core"
	"educonnect-backend/internal/db"
	"educonnect-backend/internal/middleware"
	"educonnect-backend/internal/models"
)

// mapErrorToStatus maps errors from the core services to HTTP status codes and
// an ErrorResponse. Server-side failures are logged with fields; their details
// stay out of the response body.
func mapErrorToStatus(c *gin.Context, logger *zap.Logger, err error, fields ...zap.Field) {
	var statusCode int
	var errResponse models.ErrorResponse

	switch {
	case errors.Is(err, core.ErrUserNotFound):
		statusCode = http.StatusNotFound
		errResponse = models.ErrorResponse{Message: "User not found"}
	case errors.Is(err, core.ErrClassNotFound):
		statusCode = http.StatusNotFound
		errResponse = models.ErrorResponse{Message: "Class not found", Details: err.Error()}
	case errors.Is(err, core.ErrTeacherRequestNotFound):
		statusCode = http.StatusNotFound
		errResponse = models.ErrorResponse{Message: "Teacher request not found"}
	case errors.Is(err, core.ErrInvalidInput), errors.Is(err, core.ErrPromptRequired):
		statusCode = http.StatusBadRequest
		errResponse = models.ErrorResponse{Message: "Invalid request", Details: err.Error()}
	case errors.Is(err, core.ErrForbidden):
		statusCode = http.StatusForbidden
		errResponse = models.ErrorResponse{Message: "forbidden access"}
	case errors.Is(err, core.ErrInvalidToken):
		statusCode = http.StatusUnauthorized
		errResponse = models.ErrorResponse{Message: "unauthorized access"}
	case errors.Is(err, core.ErrPaymentProvider):
		statusCode = http.StatusInternalServerError
		errResponse = models.ErrorResponse{Message: core.ErrPaymentProvider.Error()}
	case errors.Is(err, core.ErrEnrollmentNotRecorded):
		statusCode = http.StatusInternalServerError
		errResponse = models.ErrorResponse{Message: core.ErrEnrollmentNotRecorded.Error()}
	case errors.Is(err, core.ErrAssignmentsNotSaved):
		statusCode = http.StatusInternalServerError
		errResponse = models.ErrorResponse{Message: core.ErrAssignmentsNotSaved.Error()}
	case errors.Is(err, core.ErrTextGeneration):
		statusCode = http.StatusInternalServerError
		errResponse = models.ErrorResponse{Message: "Failed to generate text"}
	case errors.Is(err, db.ErrUnavailable):
		statusCode = http.StatusInternalServerError
		errResponse = models.ErrorResponse{Message: "Database is unavailable"}
	default:
		statusCode = http.StatusInternalServerError
		errResponse = models.ErrorResponse{Message: "Internal server error"}
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("Request failed",
			append(fields, zap.String("path", c.FullPath()), zap.Error(err))...)
		_ = c.Error(err)
	}
	c.JSON(statusCode, errResponse)
}

// bindError answers a 400 for a malformed request body.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request payload", Details: err.Error()})
}

// callerEmail returns the verified token email. Routes without an
// Authenticated check get an empty string.
func callerEmail(c *gin.Context) string {
	if claims, ok := middleware.ClaimsFrom(c.Request.Context()); ok {
		return claims.Email
	}
	return ""
}
