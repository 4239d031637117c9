package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"educonnect-backend/internal/models"
)

// firestoreClassRepository implements the ClassRepository interface using Firestore.
type firestoreClassRepository struct {
	client *firestore.Client
}

// NewFirestoreClassRepository creates a new instance of firestoreClassRepository.
func NewFirestoreClassRepository(client *firestore.Client) ClassRepository {
	if client == nil {
		zap.L().Fatal("Firestore client is not initialized for ClassRepository.")
	}
	return &firestoreClassRepository{client: client}
}

func setClassID(c *models.Class, id string) { c.ID = id }

// Create adds a new class document with an auto-generated ID.
func (r *firestoreClassRepository) Create(ctx context.Context, class *models.Class) (string, error) {
	docRef := r.client.Collection(classesCollection).NewDoc()
	if _, err := docRef.Create(ctx, class); err != nil {
		return "", fmt.Errorf("failed to create class: %w", err)
	}
	class.ID = docRef.ID
	return docRef.ID, nil
}

// GetByID retrieves a class document by its ID.
func (r *firestoreClassRepository) GetByID(ctx context.Context, classID string) (*models.Class, error) {
	var class models.Class
	if err := getDoc(ctx, r.client, classesCollection, classID, &class); err != nil {
		return nil, err
	}
	class.ID = classID
	return &class, nil
}

// List returns every class document.
func (r *firestoreClassRepository) List(ctx context.Context) ([]*models.Class, error) {
	classes, err := collect(r.client.Collection(classesCollection).Documents(ctx), setClassID)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

// ListByPublisher returns the classes whose embedded publisher email matches.
func (r *firestoreClassRepository) ListByPublisher(ctx context.Context, email string) ([]*models.Class, error) {
	query := r.client.Collection(classesCollection).Where("publisher.email", "==", email)
	classes, err := collect(query.Documents(ctx), setClassID)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for publisher '%s': %w", email, err)
	}
	return classes, nil
}

// Patch applies a merge-patch: only the keys present in patch are written.
func (r *firestoreClassRepository) Patch(ctx context.Context, classID string, patch models.ClassPatch) (models.UpdateResult, error) {
	return setFields(ctx, r.client, classesCollection, classID, patch)
}

// SetStatus overwrites the moderation status of one class.
func (r *firestoreClassRepository) SetStatus(ctx context.Context, classID, status string) (models.UpdateResult, error) {
	return setFields(ctx, r.client, classesCollection, classID, map[string]interface{}{"status": status})
}

// SetAssignments replaces the assignments payload wholesale.
func (r *firestoreClassRepository) SetAssignments(ctx context.Context, classID string, assignments interface{}) (models.UpdateResult, error) {
	return setFields(ctx, r.client, classesCollection, classID, map[string]interface{}{"assignments": assignments})
}

// IncrementEnrollment uses a server-side increment transform, so concurrent
// enrollments never overwrite each other. A missing field counts as 0.
func (r *firestoreClassRepository) IncrementEnrollment(ctx context.Context, classID string, delta int64) (models.UpdateResult, error) {
	result := models.UpdateResult{Acknowledged: true}
	ref := docRef(r.client, classesCollection, classID)
	if ref == nil {
		return result, nil
	}
	_, err := ref.Update(ctx, []firestore.Update{{Path: "enroll", Value: firestore.Increment(delta)}})
	if err != nil {
		if isNotFound(err) {
			return result, nil
		}
		return models.UpdateResult{}, fmt.Errorf("failed to increment enrollment for class '%s': %w", classID, err)
	}
	result.MatchedCount, result.ModifiedCount = 1, 1
	return result, nil
}

// Delete removes a class document.
func (r *firestoreClassRepository) Delete(ctx context.Context, classID string) (models.DeleteResult, error) {
	return deleteDoc(ctx, r.client, classesCollection, classID)
}
