package db

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"educonnect-backend/internal/models"
)

// ErrUnavailable is returned by every repository of an unavailable store.
var ErrUnavailable = errors.New("document store unavailable")

// NewUnavailableStore returns a Store whose repositories fail every call with
// ErrUnavailable wrapping cause. The server keeps answering requests that do
// not touch storage while the store is down.
func NewUnavailableStore(cause error) *Store {
	down := unavailable{cause: cause}
	return NewStore(
		unavailableUsers{down},
		unavailableClasses{down},
		unavailableRequests{down},
		unavailablePayments{down},
		unavailableFeedback{down},
		unavailableAudit{down},
		nil,
	)
}

type unavailable struct {
	cause error
}

func (u unavailable) err() error {
	zap.L().Debug("Store call rejected", zap.Error(u.cause))
	return fmt.Errorf("%w: %v", ErrUnavailable, u.cause)
}

type unavailableUsers struct{ unavailable }

func (u unavailableUsers) GetByID(context.Context, string) (*models.User, error) {
	return nil, u.err()
}
func (u unavailableUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, u.err()
}
func (u unavailableUsers) GetOrCreateByEmail(context.Context, *models.User) (*models.User, bool, error) {
	return nil, false, u.err()
}
func (u unavailableUsers) List(context.Context) ([]*models.User, error) { return nil, u.err() }
func (u unavailableUsers) Search(context.Context, string) ([]*models.User, error) {
	return nil, u.err()
}
func (u unavailableUsers) SetRole(context.Context, string, string) (models.UpdateResult, error) {
	return models.UpdateResult{}, u.err()
}
func (u unavailableUsers) Delete(context.Context, string) (models.DeleteResult, error) {
	return models.DeleteResult{}, u.err()
}

type unavailableClasses struct{ unavailable }

func (u unavailableClasses) Create(context.Context, *models.Class) (string, error) {
	return "", u.err()
}
func (u unavailableClasses) GetByID(context.Context, string) (*models.Class, error) {
	return nil, u.err()
}
func (u unavailableClasses) List(context.Context) ([]*models.Class, error) { return nil, u.err() }
func (u unavailableClasses) ListByPublisher(context.Context, string) ([]*models.Class, error) {
	return nil, u.err()
}
func (u unavailableClasses) Patch(context.Context, string, models.ClassPatch) (models.UpdateResult, error) {
	return models.UpdateResult{}, u.err()
}
func (u unavailableClasses) SetStatus(context.Context, string, string) (models.UpdateResult, error) {
	return models.UpdateResult{}, u.err()
}
func (u unavailableClasses) SetAssignments(context.Context, string, interface{}) (models.UpdateResult, error) {
	return models.UpdateResult{}, u.err()
}
func (u unavailableClasses) IncrementEnrollment(context.Context, string, int64) (models.UpdateResult, error) {
	return models.UpdateResult{}, u.err()
}
func (u unavailableClasses) Delete(context.Context, string) (models.DeleteResult, error) {
	return models.DeleteResult{}, u.err()
}

type unavailableRequests struct{ unavailable }

func (u unavailableRequests) Create(context.Context, *models.TeacherRequest) (string, error) {
	return "", u.err()
}
func (u unavailableRequests) GetByID(context.Context, string) (*models.TeacherRequest, error) {
	return nil, u.err()
}
func (u unavailableRequests) List(context.Context) ([]*models.TeacherRequest, error) {
	return nil, u.err()
}
func (u unavailableRequests) ListByEmail(context.Context, string) ([]*models.TeacherRequest, error) {
	return nil, u.err()
}
func (u unavailableRequests) SetStatus(context.Context, string, string) (models.UpdateResult, error) {
	return models.UpdateResult{}, u.err()
}

type unavailablePayments struct{ unavailable }

func (u unavailablePayments) Create(context.Context, models.Payment) (string, error) {
	return "", u.err()
}
func (u unavailablePayments) List(context.Context) ([]models.Payment, error) { return nil, u.err() }
func (u unavailablePayments) ListByEmail(context.Context, string) ([]models.Payment, error) {
	return nil, u.err()
}

type unavailableFeedback struct{ unavailable }

func (u unavailableFeedback) Create(context.Context, models.Feedback) (string, error) {
	return "", u.err()
}
func (u unavailableFeedback) List(context.Context) ([]models.Feedback, error) { return nil, u.err() }

type unavailableAudit struct{ unavailable }

func (u unavailableAudit) Create(context.Context, models.AuditLog) error { return u.err() }
