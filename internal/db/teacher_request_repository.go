package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"educonnect-backend/internal/models"
)

type firestoreTeacherRequestRepository struct {
	client *firestore.Client
}

// NewFirestoreTeacherRequestRepository creates a new instance of firestoreTeacherRequestRepository.
func NewFirestoreTeacherRequestRepository(client *firestore.Client) TeacherRequestRepository {
	if client == nil {
		zap.L().Fatal("Firestore client is not initialized for TeacherRequestRepository.")
	}
	return &firestoreTeacherRequestRepository{client: client}
}

func setRequestID(t *models.TeacherRequest, id string) { t.ID = id }

func (r *firestoreTeacherRequestRepository) Create(ctx context.Context, req *models.TeacherRequest) (string, error) {
	docRef := r.client.Collection(teacherRequestsCollection).NewDoc()
	if _, err := docRef.Create(ctx, req); err != nil {
		return "", fmt.Errorf("failed to create teacher request: %w", err)
	}
	req.ID = docRef.ID
	return docRef.ID, nil
}

func (r *firestoreTeacherRequestRepository) GetByID(ctx context.Context, requestID string) (*models.TeacherRequest, error) {
	var req models.TeacherRequest
	if err := getDoc(ctx, r.client, teacherRequestsCollection, requestID, &req); err != nil {
		return nil, err
	}
	req.ID = requestID
	return &req, nil
}

func (r *firestoreTeacherRequestRepository) List(ctx context.Context) ([]*models.TeacherRequest, error) {
	reqs, err := collect(r.client.Collection(teacherRequestsCollection).Documents(ctx), setRequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher requests: %w", err)
	}
	return reqs, nil
}

func (r *firestoreTeacherRequestRepository) ListByEmail(ctx context.Context, email string) ([]*models.TeacherRequest, error) {
	query := r.client.Collection(teacherRequestsCollection).Where("email", "==", email)
	reqs, err := collect(query.Documents(ctx), setRequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher requests for '%s': %w", email, err)
	}
	return reqs, nil
}

func (r *firestoreTeacherRequestRepository) SetStatus(ctx context.Context, requestID, status string) (models.UpdateResult, error) {
	return setFields(ctx, r.client, teacherRequestsCollection, requestID, map[string]interface{}{"status": status})
}
