package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

// Audit actions recorded for admin moderation.
const (
	AuditUserPromote    = "USER_PROMOTE"
	AuditUserDelete     = "USER_DELETE"
	AuditClassApprove   = "CLASS_APPROVE"
	AuditClassReject    = "CLASS_REJECT"
	AuditClassDelete    = "CLASS_DELETE"
	AuditRequestApprove = "TEACHER_REQUEST_APPROVE"
	AuditRequestReject  = "TEACHER_REQUEST_REJECT"
)

// auditService implements the AuditService interface.
type auditService struct {
	auditRepo db.AuditRepository
}

// NewAuditService creates a new AuditService instance.
func NewAuditService(auditRepo db.AuditRepository) AuditService {
	return &auditService{
		auditRepo: auditRepo,
	}
}

// CreateAuditLog stamps the entry and delegates storage to the AuditRepository.
func (s *auditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	if s.auditRepo == nil {
		return fmt.Errorf("AuditRepository not initialized in AuditService")
	}
	if logEntry.Timestamp.IsZero() {
		logEntry.Timestamp = time.Now().UTC()
	}
	if err := s.auditRepo.Create(ctx, logEntry); err != nil {
		return fmt.Errorf("failed to create audit log via repository: %w", err)
	}
	return nil
}

// recordAudit writes an audit entry; failures are logged and never returned.
func recordAudit(ctx context.Context, audit AuditService, actorEmail, action, targetType, targetID string) {
	if audit == nil {
		return
	}
	entry := models.AuditLog{
		ActorEmail: actorEmail,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Timestamp:  time.Now().UTC(),
	}
	if err := audit.CreateAuditLog(ctx, entry); err != nil {
		zap.L().Warn("Failed to create audit log",
			zap.String("action", action),
			zap.String("targetID", targetID),
			zap.Error(err))
	}
}
