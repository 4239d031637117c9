package core

import (
	"context"

	"educonnect-backend/internal/models"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	// Register returns the existing user for email, or creates a Student.
	// The boolean reports whether a user was created.
	Register(ctx context.Context, email string, req models.RegisterUserRequest) (*models.User, bool, error)
	List(ctx context.Context) ([]*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// IsAdmin is false for unknown emails.
	IsAdmin(ctx context.Context, email string) (bool, error)
	Search(ctx context.Context, query string) ([]*models.User, error)
	PromoteToAdmin(ctx context.Context, actorEmail, userID string) (models.UpdateResult, error)
	Delete(ctx context.Context, actorEmail, userID string) (models.DeleteResult, error)
}

// ClassService defines the interface for class-related operations.
type ClassService interface {
	Create(ctx context.Context, callerEmail string, class models.Class) (*models.Class, error)
	List(ctx context.Context) ([]*models.Class, error)
	ListByPublisher(ctx context.Context, email string) ([]*models.Class, error)
	Get(ctx context.Context, classID string) (*models.Class, error)
	// Update, SetAssignments and Delete are limited to the class's publisher or an admin.
	Update(ctx context.Context, callerEmail, classID string, patch models.ClassPatch) (models.UpdateResult, error)
	SetAssignments(ctx context.Context, callerEmail, classID string, assignments interface{}) (models.UpdateResult, error)
	// SetStatus moderates a class; status is ClassApproved or ClassRejected.
	SetStatus(ctx context.Context, actorEmail, classID, status string) (models.UpdateResult, error)
	// Delete removes a class published by callerEmail, or any class when the caller is an admin.
	Delete(ctx context.Context, callerEmail, classID string) (models.DeleteResult, error)
}

// TeacherRequestService defines the interface for the teacher application workflow.
type TeacherRequestService interface {
	Submit(ctx context.Context, email string, req models.TeacherRequestSubmission) (*models.TeacherRequest, error)
	List(ctx context.Context) ([]*models.TeacherRequest, error)
	IsApprovedTeacher(ctx context.Context, email string) (bool, error)
	// SetStatus moderates a request; status is RequestApproved or RequestRejected.
	SetStatus(ctx context.Context, actorEmail, requestID, status string) (models.UpdateResult, error)
}

// PaymentService defines the interface for enrollment payments.
type PaymentService interface {
	// CreateIntent creates a payment intent for classID and records the enrollment.
	// A non-positive price falls back to the stored class price.
	CreateIntent(ctx context.Context, classID string, price float64, idempotencyKey string) (string, error)
	// Record stores the payment document exactly as sent, without validation.
	Record(ctx context.Context, payment models.Payment) (models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// FeedbackService defines the interface for feedback operations.
type FeedbackService interface {
	// Create stores any non-empty feedback object as sent.
	Create(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

// PromptService relays prompts to the generative-text provider.
type PromptService interface {
	Forward(ctx context.Context, prompt string) (string, error)
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(email string) (string, error)
	Verify(token string) (*Claims, error)
}

// AuditService defines the interface for audit logging operations.
type AuditService interface {
	CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error
}

// PaymentGateway creates payment intents with an external provider.
type PaymentGateway interface {
	// CreatePaymentIntent returns the client secret of a card-only intent for
	// amount minor currency units.
	CreatePaymentIntent(ctx context.Context, amount int64, idempotencyKey string) (string, error)
}

// TextGenerator produces text from a prompt with an external model.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
