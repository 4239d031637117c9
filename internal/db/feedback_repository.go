package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"educonnect-backend/internal/models"
)

type firestoreFeedbackRepository struct {
	client *firestore.Client
}

// NewFirestoreFeedbackRepository creates a new instance of firestoreFeedbackRepository.
func NewFirestoreFeedbackRepository(client *firestore.Client) FeedbackRepository {
	if client == nil {
		zap.L().Fatal("Firestore client is not initialized for FeedbackRepository.")
	}
	return &firestoreFeedbackRepository{client: client}
}

func (r *firestoreFeedbackRepository) Create(ctx context.Context, feedback models.Feedback) (string, error) {
	docRef, _, err := r.client.Collection(feedbackCollection).Add(ctx, map[string]interface{}(feedback.WithoutID()))
	if err != nil {
		return "", fmt.Errorf("failed to create feedback: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreFeedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	feedback, err := collectDocuments(r.client.Collection(feedbackCollection).Documents(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}
