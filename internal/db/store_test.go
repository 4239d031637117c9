package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"educonnect-backend/internal/models"
)

func TestSameValue(t *testing.T) {
	testCases := []struct {
		name     string
		stored   interface{}
		patched  interface{}
		expected bool
	}{
		{"int64 vs float64", int64(3), 3.0, true},
		{"different numbers", int64(3), 4.0, false},
		{"strings", "Go", "Go", true},
		{"nested maps", map[string]interface{}{"email": "a@x.io"}, map[string]interface{}{"email": "a@x.io"}, true},
		{"nested maps differ", map[string]interface{}{"email": "a@x.io"}, map[string]interface{}{"email": "b@x.io"}, false},
		{"nil vs value", nil, "x", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SameValue(tc.stored, tc.patched))
		})
	}
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("Bob Smith", "bob@x.io", "SMITH"))
	assert.True(t, MatchesSearch("Alice", "alice@bob.io", "bob"))
	assert.True(t, MatchesSearch("Alice", "alice@x.io", ""))
	assert.False(t, MatchesSearch("Alice", "alice@x.io", "a.*e"))
}

func TestUnavailableStore(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	store := NewUnavailableStore(cause)
	ctx := context.Background()

	_, err := store.Users.GetByEmail(ctx, "a@x.io")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "connection refused")

	_, err = store.Classes.IncrementEnrollment(ctx, "c1", 1)
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, store.Audit.Create(ctx, models.AuditLog{Action: "USER_PROMOTE"}), ErrUnavailable)
	assert.NoError(t, store.Close())
}
