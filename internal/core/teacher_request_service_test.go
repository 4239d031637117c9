package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educonnect-backend/internal/models"
)

func TestTeacherRequestService_Workflow(t *testing.T) {
	store, database := newTestStore()
	svc := NewTeacherRequestService(store.TeacherRequests, NewAuditService(store.Audit))
	ctx := context.Background()

	req, err := svc.Submit(ctx, "t@x.io", models.TeacherRequestSubmission{Title: "Go", Category: "Programming"})
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, req.Status)

	approved, err := svc.IsApprovedTeacher(ctx, "t@x.io")
	require.NoError(t, err)
	assert.False(t, approved)

	_, err = svc.SetStatus(ctx, "admin@x.io", req.ID, models.RequestRejected)
	require.NoError(t, err)
	approved, err = svc.IsApprovedTeacher(ctx, "t@x.io")
	require.NoError(t, err)
	assert.False(t, approved)

	_, err = svc.SetStatus(ctx, "admin@x.io", req.ID, models.RequestApproved)
	require.NoError(t, err)
	approved, err = svc.IsApprovedTeacher(ctx, "t@x.io")
	require.NoError(t, err)
	assert.True(t, approved)

	assert.Len(t, database.AuditLogs(), 2)
}

func TestTeacherRequestService_LegacyStatusCountsAsApproved(t *testing.T) {
	store, _ := newTestStore()
	svc := NewTeacherRequestService(store.TeacherRequests, nil)
	ctx := context.Background()

	_, err := store.TeacherRequests.Create(ctx, &models.TeacherRequest{Email: "old@x.io", Status: "teacher"})
	require.NoError(t, err)

	approved, err := svc.IsApprovedTeacher(ctx, "old@x.io")
	require.NoError(t, err)
	assert.True(t, approved)

	requests, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, models.RequestApproved, requests[0].Status)
}

func TestTeacherRequestService_RejectsUnknownStatus(t *testing.T) {
	store, _ := newTestStore()
	svc := NewTeacherRequestService(store.TeacherRequests, nil)

	_, err := svc.SetStatus(context.Background(), "admin@x.io", "any", "teacher")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
