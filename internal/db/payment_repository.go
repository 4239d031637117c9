package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"educonnect-backend/internal/models"
)

type firestorePaymentRepository struct {
	client *firestore.Client
}

// NewFirestorePaymentRepository creates a new instance of firestorePaymentRepository.
func NewFirestorePaymentRepository(client *firestore.Client) PaymentRepository {
	if client == nil {
		zap.L().Fatal("Firestore client is not initialized for PaymentRepository.")
	}
	return &firestorePaymentRepository{client: client}
}

// Create appends a payment record. Payments are never updated.
func (r *firestorePaymentRepository) Create(ctx context.Context, payment models.Payment) (string, error) {
	docRef, _, err := r.client.Collection(paymentsCollection).Add(ctx, map[string]interface{}(payment.WithoutID()))
	if err != nil {
		return "", fmt.Errorf("failed to create payment: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestorePaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	payments, err := collectDocuments(r.client.Collection(paymentsCollection).Documents(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (r *firestorePaymentRepository) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	query := r.client.Collection(paymentsCollection).Where("email", "==", email)
	payments, err := collectDocuments(query.Documents(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for '%s': %w", email, err)
	}
	return payments, nil
}
