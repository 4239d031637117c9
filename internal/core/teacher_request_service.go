package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

// teacherRequestService implements the TeacherRequestService interface.
type teacherRequestService struct {
	requestRepo  db.TeacherRequestRepository
	auditService AuditService
}

// NewTeacherRequestService creates a new TeacherRequestService instance.
func NewTeacherRequestService(rr db.TeacherRequestRepository, as AuditService) TeacherRequestService {
	return &teacherRequestService{
		requestRepo:  rr,
		auditService: as,
	}
}

// Submit stores a pending application for email.
func (s *teacherRequestService) Submit(ctx context.Context, email string, req models.TeacherRequestSubmission) (*models.TeacherRequest, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: applicant email is required", ErrInvalidInput)
	}
	request := &models.TeacherRequest{
		Email:      email,
		Name:       req.Name,
		Image:      req.Image,
		Title:      req.Title,
		Experience: req.Experience,
		Category:   req.Category,
		Status:     models.RequestPending,
		CreatedAt:  time.Now().UTC(),
	}
	requestID, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create teacher request for '%s': %w", email, err)
	}
	request.ID = requestID
	return request, nil
}

// List returns every request with legacy status values normalised.
func (s *teacherRequestService) List(ctx context.Context) ([]*models.TeacherRequest, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher requests: %w", err)
	}
	for _, req := range requests {
		req.Status = models.NormalizeRequestStatus(req.Status)
	}
	return requests, nil
}

func (s *teacherRequestService) IsApprovedTeacher(ctx context.Context, email string) (bool, error) {
	requests, err := s.requestRepo.ListByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to load teacher requests for '%s': %w", email, err)
	}
	for _, req := range requests {
		if models.NormalizeRequestStatus(req.Status) == models.RequestApproved {
			return true, nil
		}
	}
	return false, nil
}

// SetStatus does not touch the applicant's user role.
func (s *teacherRequestService) SetStatus(ctx context.Context, actorEmail, requestID, status string) (models.UpdateResult, error) {
	var action string
	switch status {
	case models.RequestApproved:
		action = AuditRequestApprove
	case models.RequestRejected:
		action = AuditRequestReject
	default:
		return models.UpdateResult{}, fmt.Errorf("%w: unknown teacher request status %q", ErrInvalidInput, status)
	}

	result, err := s.requestRepo.SetStatus(ctx, requestID, status)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to set status of teacher request '%s': %w", requestID, err)
	}
	if result.MatchedCount > 0 {
		recordAudit(ctx, s.auditService, actorEmail, action, "TEACHER_REQUEST", requestID)
	}
	return result, nil
}
