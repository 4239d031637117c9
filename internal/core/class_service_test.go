package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educonnect-backend/internal/models"
)

func TestClassService_CreateForcesPending(t *testing.T) {
	store, _ := newTestStore()
	svc := NewClassService(store.Classes, store.Users, nil)

	class, err := svc.Create(context.Background(), "t@x.io", models.Class{
		Title:  "Intro to Go",
		Price:  20,
		Status:    models.ClassApproved,
		Enroll:    99,
		Publisher: models.Publisher{Email: "someone-else@x.io", Name: "T"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, class.ID)
	assert.Equal(t, models.ClassPending, class.Status)
	assert.Equal(t, int64(0), class.Enroll)
	assert.Equal(t, "t@x.io", class.Publisher.Email)
	assert.Equal(t, "T", class.Publisher.Name)

	stored, err := svc.Get(context.Background(), class.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClassPending, stored.Status)
}

func TestClassService_CreateRequiresTitle(t *testing.T) {
	store, _ := newTestStore()
	svc := NewClassService(store.Classes, store.Users, nil)

	_, err := svc.Create(context.Background(), "t@x.io", models.Class{Price: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClassService_Update(t *testing.T) {
	store, _ := newTestStore()
	svc := NewClassService(store.Classes, store.Users, nil)
	ctx := context.Background()
	class, err := svc.Create(ctx, "t@x.io", models.Class{Title: "Go", Price: 10, Seats: 4})
	require.NoError(t, err)

	testCases := []struct {
		name        string
		patch       models.ClassPatch
		expectedErr error
	}{
		{"changes title", models.ClassPatch{"title": "Go 101"}, nil},
		{"identical values", models.ClassPatch{"price": 10.0, "seats": 4.0}, ErrClassNotFound},
		{"empty patch", models.ClassPatch{}, ErrInvalidInput},
		{"status is not patchable", models.ClassPatch{"status": "approved"}, ErrInvalidInput},
		{"fractional seats", models.ClassPatch{"seats": 2.5}, ErrInvalidInput},
		{"wrong type", models.ClassPatch{"title": 3.0}, ErrInvalidInput},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Update(ctx, "t@x.io", class.ID, tc.patch)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}

	_, err = svc.Update(ctx, "t@x.io", "missing", models.ClassPatch{"title": "x"})
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestClassService_WritesAreLimitedToPublisherOrAdmin(t *testing.T) {
	store, _ := newTestStore()
	users := NewUserService(store.Users, nil)
	svc := NewClassService(store.Classes, store.Users, nil)
	ctx := context.Background()

	admin, _, err := users.Register(ctx, "admin@x.io", models.RegisterUserRequest{})
	require.NoError(t, err)
	_, err = users.PromoteToAdmin(ctx, "root@x.io", admin.ID)
	require.NoError(t, err)

	class, err := svc.Create(ctx, "t@x.io", models.Class{Title: "Go"})
	require.NoError(t, err)

	takeover := models.ClassPatch{"publisher": map[string]interface{}{"email": "s@x.io"}}
	_, err = svc.Update(ctx, "s@x.io", class.ID, takeover)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Update(ctx, "s@x.io", class.ID, models.ClassPatch{"title": "Mine"})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.SetAssignments(ctx, "s@x.io", class.ID, []interface{}{"x"})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Delete(ctx, "s@x.io", class.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, "t@x.io", class.ID, takeover)
	assert.ErrorIs(t, err, ErrForbidden, "the publisher cannot hand the class to another email")

	_, err = svc.Update(ctx, "t@x.io", class.ID, models.ClassPatch{"publisher": map[string]interface{}{"name": "Teacher T"}})
	require.NoError(t, err)
	stored, err := svc.Get(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, "t@x.io", stored.Publisher.Email)
	assert.Equal(t, "Teacher T", stored.Publisher.Name)

	_, err = svc.Update(ctx, "admin@x.io", class.ID, takeover)
	require.NoError(t, err)
	stored, err = svc.Get(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, "s@x.io", stored.Publisher.Email)
}

func TestClassService_SetAssignmentsUnknownClass(t *testing.T) {
	store, _ := newTestStore()
	svc := NewClassService(store.Classes, store.Users, nil)
	ctx := context.Background()

	_, err := svc.SetAssignments(ctx, "t@x.io", "missing", map[string]interface{}{"week1": "read"})
	assert.ErrorIs(t, err, ErrAssignmentsNotSaved)

	class, err := svc.Create(ctx, "t@x.io", models.Class{Title: "Go"})
	require.NoError(t, err)
	_, err = svc.SetAssignments(ctx, "t@x.io", class.ID, map[string]interface{}{"week1": "read"})
	require.NoError(t, err)
	_, err = svc.SetAssignments(ctx, "t@x.io", class.ID, []interface{}{"replaced"})
	require.NoError(t, err)

	stored, err := svc.Get(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"replaced"}, stored.Assignments)
}

func TestClassService_SetStatusAudits(t *testing.T) {
	store, database := newTestStore()
	svc := NewClassService(store.Classes, store.Users, NewAuditService(store.Audit))
	ctx := context.Background()
	class, err := svc.Create(ctx, "t@x.io", models.Class{Title: "Go"})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, "admin@x.io", class.ID, "Pending")
	assert.ErrorIs(t, err, ErrInvalidInput)

	result, err := svc.SetStatus(ctx, "admin@x.io", class.ID, models.ClassApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)

	stored, err := svc.Get(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClassApproved, stored.Status)

	logs := database.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, AuditClassApprove, logs[0].Action)
}

func TestClassService_Delete(t *testing.T) {
	store, _ := newTestStore()
	users := NewUserService(store.Users, nil)
	svc := NewClassService(store.Classes, store.Users, nil)
	ctx := context.Background()

	admin, _, err := users.Register(ctx, "admin@x.io", models.RegisterUserRequest{})
	require.NoError(t, err)
	_, err = users.PromoteToAdmin(ctx, "root@x.io", admin.ID)
	require.NoError(t, err)

	owned, err := svc.Create(ctx, "t@x.io", models.Class{Title: "Owned"})
	require.NoError(t, err)
	other, err := svc.Create(ctx, "t@x.io", models.Class{Title: "Other"})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, "stranger@x.io", owned.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	result, err := svc.Delete(ctx, "t@x.io", owned.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	_, err = svc.Delete(ctx, "t@x.io", owned.ID)
	assert.ErrorIs(t, err, ErrClassNotFound)

	result, err = svc.Delete(ctx, "admin@x.io", other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)
}
