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

// IdempotencyKeyHeader lets a client retry an enrollment without a second intent.
const IdempotencyKeyHeader = "Idempotency-Key"

// PaymentHandler handles payment-intent creation and payment records.
type PaymentHandler struct {
	paymentService core.PaymentService
	logger         *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps core.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: ps, logger: logger}
}

// CreatePaymentIntent handles POST /create-payment-intent/:id
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	classID := c.Param("id")

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindError(c, err)
		return
	}

	secret, err := h.paymentService.CreateIntent(c.Request.Context(), classID, req.Price, c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("classID", classID), zap.Float64("price", req.Price))
		return
	}
	c.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: secret})
}

// RecordPayment handles POST /payments. Any JSON object is stored as sent.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		bindError(c, err)
		return
	}

	recorded, err := h.paymentService.Record(c.Request.Context(), payment)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("email", payment.StringField("email")))
		return
	}
	c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: recorded.ID()})
}

// ListPayments handles GET /payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.List(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// ListEnrollments handles GET /my-enrolled-class/:email
func (h *PaymentHandler) ListEnrollments(c *gin.Context) {
	email := c.Param("email")
	payments, err := h.paymentService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, zap.String("email", email))
		return
	}
	c.JSON(http.StatusOK, payments)
}
