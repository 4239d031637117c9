package core

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

// paymentService implements the PaymentService interface.
type paymentService struct {
	classRepo   db.ClassRepository
	paymentRepo db.PaymentRepository
	gateway     PaymentGateway
}

// NewPaymentService creates a new PaymentService instance.
func NewPaymentService(cr db.ClassRepository, pr db.PaymentRepository, gateway PaymentGateway) PaymentService {
	return &paymentService{
		classRepo:   cr,
		paymentRepo: pr,
		gateway:     gateway,
	}
}

// MinorUnits converts a decimal price into integer minor currency units.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent looks the class up, creates the provider intent and then bumps
// the enrollment counter with one atomic increment. The three steps are not a
// transaction: an increment that matches nothing after a successful intent is
// reported as ErrEnrollmentNotRecorded.
func (s *paymentService) CreateIntent(ctx context.Context, classID string, price float64, idempotencyKey string) (string, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", fmt.Errorf("%w: class with ID '%s'", ErrClassNotFound, classID)
		}
		return "", fmt.Errorf("failed to get class '%s': %w", classID, err)
	}

	if price <= 0 {
		price = class.Price
	}
	amount := MinorUnits(price)
	if amount <= 0 {
		return "", fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}

	if idempotencyKey == "" {
		idempotencyKey = fmt.Sprintf("enroll-%s-%s", classID, uuid.NewString())
	}
	clientSecret, err := s.gateway.CreatePaymentIntent(ctx, amount, idempotencyKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	result, err := s.classRepo.IncrementEnrollment(ctx, classID, 1)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEnrollmentNotRecorded, err)
	}
	if result.MatchedCount == 0 {
		return "", fmt.Errorf("%w: class '%s' disappeared", ErrEnrollmentNotRecorded, classID)
	}
	return clientSecret, nil
}

// Record appends a payment exactly as confirmed by the client. Only a JSON
// null, which carries no document at all, is refused.
func (s *paymentService) Record(ctx context.Context, payment models.Payment) (models.Payment, error) {
	if payment == nil {
		return nil, fmt.Errorf("%w: payment must be a JSON object", ErrInvalidInput)
	}
	paymentID, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return payment.WithID(paymentID), nil
}

func (s *paymentService) List(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *paymentService) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	payments, err := s.paymentRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for '%s': %w", email, err)
	}
	return payments, nil
}
