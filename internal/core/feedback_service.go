package core

import (
	"context"
	"fmt"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

type feedbackService struct {
	feedbackRepo db.FeedbackRepository
}

// NewFeedbackService creates a new FeedbackService instance.
func NewFeedbackService(fr db.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: fr}
}

// Create stores feedback as free-form content. An empty object is refused.
func (s *feedbackService) Create(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	if len(feedback.WithoutID()) == 0 {
		return nil, fmt.Errorf("%w: feedback cannot be empty", ErrInvalidInput)
	}
	feedbackID, err := s.feedbackRepo.Create(ctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return feedback.WithID(feedbackID), nil
}

func (s *feedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	feedback, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}
