package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educonnect-backend/internal/models"
)

func TestUserService_RegisterIsIdempotent(t *testing.T) {
	store, _ := newTestStore()
	svc := NewUserService(store.Users, NewAuditService(store.Audit))
	ctx := context.Background()

	first, created, err := svc.Register(ctx, "bob@x.io", models.RegisterUserRequest{Name: "Bob"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleStudent, first.Role)
	assert.False(t, first.Timestamp.IsZero())

	second, created, err := svc.Register(ctx, "bob@x.io", models.RegisterUserRequest{Name: "Robert"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Bob", second.Name)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_RegisterRequiresEmail(t *testing.T) {
	store, _ := newTestStore()
	svc := NewUserService(store.Users, nil)

	_, _, err := svc.Register(context.Background(), "  ", models.RegisterUserRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_PromoteUnknownUserReportsZeroModified(t *testing.T) {
	store, database := newTestStore()
	svc := NewUserService(store.Users, NewAuditService(store.Audit))

	result, err := svc.PromoteToAdmin(context.Background(), "admin@x.io", "does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.ModifiedCount)
	assert.Empty(t, database.AuditLogs())
}

func TestUserService_PromoteAndIsAdmin(t *testing.T) {
	store, database := newTestStore()
	svc := NewUserService(store.Users, NewAuditService(store.Audit))
	ctx := context.Background()

	usr, _, err := svc.Register(ctx, "carol@x.io", models.RegisterUserRequest{})
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(ctx, "carol@x.io")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	result, err := svc.PromoteToAdmin(ctx, "root@x.io", usr.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)

	isAdmin, err = svc.IsAdmin(ctx, "carol@x.io")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	logs := database.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, AuditUserPromote, logs[0].Action)
	assert.Equal(t, "root@x.io", logs[0].ActorEmail)
	assert.Equal(t, usr.ID, logs[0].TargetID)
}

func TestUserService_IsAdminUnknownEmail(t *testing.T) {
	store, _ := newTestStore()
	svc := NewUserService(store.Users, nil)

	isAdmin, err := svc.IsAdmin(context.Background(), "ghost@x.io")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestUserService_Search(t *testing.T) {
	store, _ := newTestStore()
	svc := NewUserService(store.Users, nil)
	ctx := context.Background()
	for _, u := range []struct{ email, name string }{
		{"bob@x.io", "Robert"},
		{"alice@x.io", "Alice Bobson"},
		{"carol@x.io", "Carol"},
	} {
		_, _, err := svc.Register(ctx, u.email, models.RegisterUserRequest{Name: u.name})
		require.NoError(t, err)
	}

	found, err := svc.Search(ctx, "BOB")
	require.NoError(t, err)
	emails := make([]string, 0, len(found))
	for _, u := range found {
		emails = append(emails, u.Email)
	}
	assert.ElementsMatch(t, []string{"bob@x.io", "alice@x.io"}, emails)
}

func TestUserService_AuditFailureDoesNotFailDelete(t *testing.T) {
	store, _ := newTestStore()
	svc := NewUserService(store.Users, NewAuditService(failingAuditRepo{}))
	ctx := context.Background()

	usr, _, err := svc.Register(ctx, "dan@x.io", models.RegisterUserRequest{})
	require.NoError(t, err)

	result, err := svc.Delete(ctx, "root@x.io", usr.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	_, err = svc.GetByEmail(ctx, "dan@x.io")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
