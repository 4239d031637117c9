package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

// userService implements the UserService interface.
type userService struct {
	userRepo     db.UserRepository
	auditService AuditService
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository, auditService AuditService) UserService {
	return &userService{
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// Register is idempotent: a second call for the same email returns the stored
// record unchanged, whatever profile it carries.
func (s *userService) Register(ctx context.Context, email string, req models.RegisterUserRequest) (*models.User, bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, false, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	newUser := &models.User{
		Email:     email,
		Name:      req.Name,
		Photo:     req.Photo,
		Role:      models.RoleStudent,
		Timestamp: time.Now().UTC(),
	}
	user, created, err := s.userRepo.GetOrCreateByEmail(ctx, newUser)
	if err != nil {
		return nil, false, fmt.Errorf("failed to register user '%s': %w", email, err)
	}
	return user, created, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetByEmail retrieves a user by their email.
func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with email '%s'", ErrUserNotFound, email)
		}
		return nil, fmt.Errorf("failed to get user by email '%s' from repository: %w", email, err)
	}
	return user, nil
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *userService) Search(ctx context.Context, query string) ([]*models.User, error) {
	users, err := s.userRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search users for %q: %w", query, err)
	}
	return users, nil
}

// PromoteToAdmin reports zero matches for unknown IDs instead of failing.
func (s *userService) PromoteToAdmin(ctx context.Context, actorEmail, userID string) (models.UpdateResult, error) {
	result, err := s.userRepo.SetRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to promote user '%s': %w", userID, err)
	}
	if result.ModifiedCount > 0 {
		recordAudit(ctx, s.auditService, actorEmail, AuditUserPromote, "USER", userID)
	}
	return result, nil
}

func (s *userService) Delete(ctx context.Context, actorEmail, userID string) (models.DeleteResult, error) {
	result, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete user '%s': %w", userID, err)
	}
	if result.DeletedCount > 0 {
		recordAudit(ctx, s.auditService, actorEmail, AuditUserDelete, "USER", userID)
	}
	return result, nil
}
