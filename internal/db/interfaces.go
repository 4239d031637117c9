package db

import (
	"context"

	"educonnect-backend/internal/models"
)

// UserRepository defines the storage operations on the users collection.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetOrCreateByEmail returns the stored user with user.Email, or inserts user
	// when none exists. The boolean reports whether an insert happened.
	GetOrCreateByEmail(ctx context.Context, user *models.User) (*models.User, bool, error)
	List(ctx context.Context) ([]*models.User, error)
	// Search returns users whose name or email contains query, ignoring case.
	Search(ctx context.Context, query string) ([]*models.User, error)
	SetRole(ctx context.Context, userID, role string) (models.UpdateResult, error)
	Delete(ctx context.Context, userID string) (models.DeleteResult, error)
}

// ClassRepository defines the storage operations on the classes collection.
type ClassRepository interface {
	Create(ctx context.Context, class *models.Class) (string, error) // Returns new class ID
	GetByID(ctx context.Context, classID string) (*models.Class, error)
	List(ctx context.Context) ([]*models.Class, error)
	ListByPublisher(ctx context.Context, email string) ([]*models.Class, error)
	Patch(ctx context.Context, classID string, patch models.ClassPatch) (models.UpdateResult, error)
	SetStatus(ctx context.Context, classID, status string) (models.UpdateResult, error)
	SetAssignments(ctx context.Context, classID string, assignments interface{}) (models.UpdateResult, error)
	// IncrementEnrollment adds delta to the enroll counter as one server-side write.
	IncrementEnrollment(ctx context.Context, classID string, delta int64) (models.UpdateResult, error)
	Delete(ctx context.Context, classID string) (models.DeleteResult, error)
}

// TeacherRequestRepository defines the storage operations on the teacherRequests collection.
type TeacherRequestRepository interface {
	Create(ctx context.Context, req *models.TeacherRequest) (string, error)
	GetByID(ctx context.Context, requestID string) (*models.TeacherRequest, error)
	List(ctx context.Context) ([]*models.TeacherRequest, error)
	ListByEmail(ctx context.Context, email string) ([]*models.TeacherRequest, error)
	SetStatus(ctx context.Context, requestID, status string) (models.UpdateResult, error)
}

// PaymentRepository defines the storage operations on the payments collection.
// Payments are free-form: Create stores the document as given (minus any
// "_id") and reads return it with the store-assigned "_id".
type PaymentRepository interface {
	Create(ctx context.Context, payment models.Payment) (string, error)
	List(ctx context.Context) ([]models.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// FeedbackRepository defines the storage operations on the feedback collection.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback models.Feedback) (string, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

// AuditRepository defines the interface for audit log data storage operations.
type AuditRepository interface {
	Create(ctx context.Context, logEntry models.AuditLog) error
}
