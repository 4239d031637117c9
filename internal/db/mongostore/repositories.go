package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

type userRepository struct {
	coll *mongo.Collection
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	oid, ok := objectID(userID)
	if !ok {
		return nil, fmt.Errorf("user with ID '%s': %w", userID, db.ErrNotFound)
	}
	doc, err := findOne[userDocument](ctx, r.coll, bson.M{"_id": oid}, fmt.Sprintf("user with ID '%s'", userID))
	if err != nil {
		return nil, err
	}
	return doc.model(), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := findOne[userDocument](ctx, r.coll, bson.M{"email": email}, fmt.Sprintf("user with email '%s'", email))
	if err != nil {
		return nil, err
	}
	return doc.model(), nil
}

// GetOrCreateByEmail relies on the unique email index: losing an insert race
// yields a duplicate key error, after which the winner's document is returned.
func (r *userRepository) GetOrCreateByEmail(ctx context.Context, user *models.User) (*models.User, bool, error) {
	existing, err := r.GetByEmail(ctx, user.Email)
	if err == nil {
		return existing, false, nil
	}
	if !isNotFound(err) {
		return nil, false, err
	}

	id, err := insert(ctx, r.coll, userDocument{User: *user})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			existing, getErr := r.GetByEmail(ctx, user.Email)
			return existing, false, getErr
		}
		return nil, false, fmt.Errorf("failed to create user '%s': %w", user.Email, err)
	}
	created := *user
	created.ID = id
	return &created, true, nil
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	users, err := findAll(ctx, r.coll, bson.M{}, (*userDocument).model)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Search(ctx context.Context, query string) ([]*models.User, error) {
	pattern := containsFold(query)
	filter := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"email": pattern},
	}}
	users, err := findAll(ctx, r.coll, filter, (*userDocument).model)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

func (r *userRepository) SetRole(ctx context.Context, userID, role string) (models.UpdateResult, error) {
	return update(ctx, r.coll, userID, bson.M{"$set": bson.M{"role": role}})
}

func (r *userRepository) Delete(ctx context.Context, userID string) (models.DeleteResult, error) {
	return remove(ctx, r.coll, userID)
}

type classRepository struct {
	coll *mongo.Collection
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) (string, error) {
	id, err := insert(ctx, r.coll, classDocument{Class: *class})
	if err != nil {
		return "", fmt.Errorf("failed to create class: %w", err)
	}
	class.ID = id
	return id, nil
}

func (r *classRepository) GetByID(ctx context.Context, classID string) (*models.Class, error) {
	oid, ok := objectID(classID)
	if !ok {
		return nil, fmt.Errorf("class with ID '%s': %w", classID, db.ErrNotFound)
	}
	doc, err := findOne[classDocument](ctx, r.coll, bson.M{"_id": oid}, fmt.Sprintf("class with ID '%s'", classID))
	if err != nil {
		return nil, err
	}
	return doc.model(), nil
}

func (r *classRepository) List(ctx context.Context) ([]*models.Class, error) {
	classes, err := findAll(ctx, r.coll, bson.M{}, (*classDocument).model)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

func (r *classRepository) ListByPublisher(ctx context.Context, email string) ([]*models.Class, error) {
	classes, err := findAll(ctx, r.coll, bson.M{"publisher.email": email}, (*classDocument).model)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for publisher '%s': %w", email, err)
	}
	return classes, nil
}

func (r *classRepository) Patch(ctx context.Context, classID string, patch models.ClassPatch) (models.UpdateResult, error) {
	return update(ctx, r.coll, classID, bson.M{"$set": bson.M(patch)})
}

func (r *classRepository) SetStatus(ctx context.Context, classID, status string) (models.UpdateResult, error) {
	return update(ctx, r.coll, classID, bson.M{"$set": bson.M{"status": status}})
}

func (r *classRepository) SetAssignments(ctx context.Context, classID string, assignments interface{}) (models.UpdateResult, error) {
	return update(ctx, r.coll, classID, bson.M{"$set": bson.M{"assignments": assignments}})
}

func (r *classRepository) IncrementEnrollment(ctx context.Context, classID string, delta int64) (models.UpdateResult, error) {
	return update(ctx, r.coll, classID, bson.M{"$inc": bson.M{"enroll": delta}})
}

func (r *classRepository) Delete(ctx context.Context, classID string) (models.DeleteResult, error) {
	return remove(ctx, r.coll, classID)
}

type teacherRequestRepository struct {
	coll *mongo.Collection
}

func (r *teacherRequestRepository) Create(ctx context.Context, req *models.TeacherRequest) (string, error) {
	id, err := insert(ctx, r.coll, teacherRequestDocument{TeacherRequest: *req})
	if err != nil {
		return "", fmt.Errorf("failed to create teacher request: %w", err)
	}
	req.ID = id
	return id, nil
}

func (r *teacherRequestRepository) GetByID(ctx context.Context, requestID string) (*models.TeacherRequest, error) {
	oid, ok := objectID(requestID)
	if !ok {
		return nil, fmt.Errorf("teacher request with ID '%s': %w", requestID, db.ErrNotFound)
	}
	doc, err := findOne[teacherRequestDocument](ctx, r.coll, bson.M{"_id": oid}, fmt.Sprintf("teacher request with ID '%s'", requestID))
	if err != nil {
		return nil, err
	}
	return doc.model(), nil
}

func (r *teacherRequestRepository) List(ctx context.Context) ([]*models.TeacherRequest, error) {
	reqs, err := findAll(ctx, r.coll, bson.M{}, (*teacherRequestDocument).model)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher requests: %w", err)
	}
	return reqs, nil
}

func (r *teacherRequestRepository) ListByEmail(ctx context.Context, email string) ([]*models.TeacherRequest, error) {
	reqs, err := findAll(ctx, r.coll, bson.M{"email": email}, (*teacherRequestDocument).model)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher requests for '%s': %w", email, err)
	}
	return reqs, nil
}

func (r *teacherRequestRepository) SetStatus(ctx context.Context, requestID, status string) (models.UpdateResult, error) {
	return update(ctx, r.coll, requestID, bson.M{"$set": bson.M{"status": status}})
}

type paymentRepository struct {
	coll *mongo.Collection
}

func (r *paymentRepository) Create(ctx context.Context, payment models.Payment) (string, error) {
	id, err := insert(ctx, r.coll, bson.M(payment.WithoutID()))
	if err != nil {
		return "", fmt.Errorf("failed to record payment: %w", err)
	}
	return id, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	payments, err := findDocuments(ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	payments, err := findDocuments(ctx, r.coll, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for '%s': %w", email, err)
	}
	return payments, nil
}

type feedbackRepository struct {
	coll *mongo.Collection
}

func (r *feedbackRepository) Create(ctx context.Context, feedback models.Feedback) (string, error) {
	id, err := insert(ctx, r.coll, bson.M(feedback.WithoutID()))
	if err != nil {
		return "", fmt.Errorf("failed to create feedback: %w", err)
	}
	return id, nil
}

func (r *feedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	feedback, err := findDocuments(ctx, r.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}

type auditRepository struct {
	coll *mongo.Collection
}

func (r *auditRepository) Create(ctx context.Context, logEntry models.AuditLog) error {
	if _, err := r.coll.InsertOne(ctx, auditDocument{AuditLog: logEntry}); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, db.ErrNotFound)
}
