package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

// classService implements the ClassService interface.
type classService struct {
	classRepo    db.ClassRepository
	userRepo     db.UserRepository
	auditService AuditService
}

// NewClassService creates a new ClassService instance.
func NewClassService(cr db.ClassRepository, ur db.UserRepository, as AuditService) ClassService {
	return &classService{
		classRepo:    cr,
		userRepo:     ur,
		auditService: as,
	}
}

// Create stores a new class. Status always starts as Pending and the enrollment
// counter at zero, whatever the payload carries. The publisher email is always
// the caller's; name and image come from the payload.
func (s *classService) Create(ctx context.Context, callerEmail string, class models.Class) (*models.Class, error) {
	if strings.TrimSpace(class.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if class.Price < 0 || class.Seats < 0 {
		return nil, fmt.Errorf("%w: price and seats cannot be negative", ErrInvalidInput)
	}

	class.ID = ""
	class.Status = models.ClassPending
	class.Enroll = 0
	class.CreatedAt = time.Now().UTC()
	class.Publisher.Email = callerEmail

	classID, err := s.classRepo.Create(ctx, &class)
	if err != nil {
		return nil, fmt.Errorf("failed to create class in repository: %w", err)
	}
	class.ID = classID
	return &class, nil
}

func (s *classService) List(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

func (s *classService) ListByPublisher(ctx context.Context, email string) ([]*models.Class, error) {
	classes, err := s.classRepo.ListByPublisher(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for '%s': %w", email, err)
	}
	return classes, nil
}

func (s *classService) Get(ctx context.Context, classID string) (*models.Class, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: class with ID '%s'", ErrClassNotFound, classID)
		}
		return nil, fmt.Errorf("failed to get class '%s': %w", classID, err)
	}
	return class, nil
}

// Update applies a merge-patch. Nothing changing, including an unknown ID,
// is reported as ErrClassNotFound. Only an admin may hand the class to another
// publisher email.
func (s *classService) Update(ctx context.Context, callerEmail, classID string, patch models.ClassPatch) (models.UpdateResult, error) {
	fields, err := normalizeClassPatch(patch)
	if err != nil {
		return models.UpdateResult{}, err
	}
	class, _, err := s.authorizeWrite(ctx, callerEmail, classID)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if publisher, ok := fields["publisher"].(map[string]interface{}); ok {
		email, _ := publisher["email"].(string)
		switch {
		case email == "":
			publisher["email"] = class.Publisher.Email
		case email != class.Publisher.Email:
			admin, err := s.callerIsAdmin(ctx, callerEmail)
			if err != nil {
				return models.UpdateResult{}, err
			}
			if !admin {
				return models.UpdateResult{}, fmt.Errorf("%w: only an admin can change the publisher of class '%s'", ErrForbidden, classID)
			}
		}
	}
	result, err := s.classRepo.Patch(ctx, classID, fields)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to update class '%s': %w", classID, err)
	}
	if result.ModifiedCount == 0 {
		return result, fmt.Errorf("%w: no changes applied to class '%s'", ErrClassNotFound, classID)
	}
	return result, nil
}

// normalizeClassPatch checks value types and converts JSON numbers to the
// stored representation.
func normalizeClassPatch(patch models.ClassPatch) (models.ClassPatch, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fields := make(models.ClassPatch, len(patch))
	for key, value := range patch {
		switch key {
		case "price":
			price, ok := value.(float64)
			if !ok || price < 0 {
				return nil, fmt.Errorf("%w: price must be a non-negative number", ErrInvalidInput)
			}
			fields[key] = price
		case "seats":
			seats, ok := value.(float64)
			if !ok || seats < 0 || seats != math.Trunc(seats) {
				return nil, fmt.Errorf("%w: seats must be a non-negative integer", ErrInvalidInput)
			}
			fields[key] = int64(seats)
		case "publisher":
			publisher, ok := value.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%w: publisher must be an object", ErrInvalidInput)
			}
			fields[key] = publisher
		default:
			text, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a string", ErrInvalidInput, key)
			}
			fields[key] = text
		}
	}
	return fields, nil
}

// SetAssignments overwrites the assignments payload wholesale. An unknown
// class is reported as ErrAssignmentsNotSaved.
func (s *classService) SetAssignments(ctx context.Context, callerEmail, classID string, assignments interface{}) (models.UpdateResult, error) {
	if _, _, err := s.authorizeWrite(ctx, callerEmail, classID); err != nil {
		if errors.Is(err, ErrClassNotFound) {
			return models.UpdateResult{Acknowledged: true}, fmt.Errorf("%w: class '%s' did not match", ErrAssignmentsNotSaved, classID)
		}
		return models.UpdateResult{}, err
	}
	result, err := s.classRepo.SetAssignments(ctx, classID, assignments)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to save assignments for class '%s': %w", classID, err)
	}
	if result.MatchedCount == 0 {
		return result, fmt.Errorf("%w: class '%s' did not match", ErrAssignmentsNotSaved, classID)
	}
	return result, nil
}

func (s *classService) SetStatus(ctx context.Context, actorEmail, classID, status string) (models.UpdateResult, error) {
	var action string
	switch status {
	case models.ClassApproved:
		action = AuditClassApprove
	case models.ClassRejected:
		action = AuditClassReject
	default:
		return models.UpdateResult{}, fmt.Errorf("%w: unknown class status %q", ErrInvalidInput, status)
	}

	result, err := s.classRepo.SetStatus(ctx, classID, status)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to set status of class '%s': %w", classID, err)
	}
	if result.MatchedCount > 0 {
		recordAudit(ctx, s.auditService, actorEmail, action, "CLASS", classID)
	}
	return result, nil
}

func (s *classService) Delete(ctx context.Context, callerEmail, classID string) (models.DeleteResult, error) {
	_, byAdmin, err := s.authorizeWrite(ctx, callerEmail, classID)
	if err != nil {
		return models.DeleteResult{}, err
	}

	result, err := s.classRepo.Delete(ctx, classID)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete class '%s': %w", classID, err)
	}
	if result.DeletedCount == 0 {
		return result, fmt.Errorf("%w: class with ID '%s'", ErrClassNotFound, classID)
	}
	if byAdmin {
		recordAudit(ctx, s.auditService, callerEmail, AuditClassDelete, "CLASS", classID)
	}
	return result, nil
}

// authorizeWrite loads the class and lets its publisher or an admin through.
// byAdmin reports that the caller got through only as an admin.
func (s *classService) authorizeWrite(ctx context.Context, callerEmail, classID string) (class *models.Class, byAdmin bool, err error) {
	class, err = s.Get(ctx, classID)
	if err != nil {
		return nil, false, err
	}
	if callerEmail != "" && class.Publisher.Email == callerEmail {
		return class, false, nil
	}
	admin, err := s.callerIsAdmin(ctx, callerEmail)
	if err != nil {
		return nil, false, err
	}
	if !admin {
		return nil, false, fmt.Errorf("%w: only the publisher or an admin can change class '%s'", ErrForbidden, classID)
	}
	return class, true, nil
}

func (s *classService) callerIsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load caller '%s': %w", email, err)
	}
	return user.IsAdmin(), nil
}
