package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educonnect-backend/internal/models"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)

	signed, err := tokens.Issue("a@x.io")
	require.NoError(t, err)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", claims.Email)

	_, err = tokens.Issue("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTokenService_RejectsForeignAndExpiredTokens(t *testing.T) {
	tokens, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)
	foreign, err := NewTokenService("other-secret", time.Hour)
	require.NoError(t, err)
	expired, err := NewTokenService("secret", -time.Minute)
	require.NoError(t, err)

	foreignToken, err := foreign.Issue("a@x.io")
	require.NoError(t, err)
	_, err = tokens.Verify(foreignToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expiredToken, err := expired.Issue("a@x.io")
	require.NoError(t, err)
	_, err = tokens.Verify(expiredToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	tokens, err := NewTokenService("secret", time.Hour)
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "a@x.io"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)
}

func TestPromptService_Forward(t *testing.T) {
	generator := &fakeGenerator{}
	svc := NewPromptService(generator)

	_, err := svc.Forward(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrPromptRequired)
	assert.Empty(t, generator.prompts)

	text, err := svc.Forward(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "generated: hello", text)

	generator.err = errors.New("quota exceeded")
	_, err = svc.Forward(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrTextGeneration)
}

func TestFeedbackService(t *testing.T) {
	store, _ := newTestStore()
	svc := NewFeedbackService(store.Feedback)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Feedback{})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Create(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	created, err := svc.Create(ctx, models.Feedback{"email": "a@x.io", "rating": 4.0, "description": "great class"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID())

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "great class", all[0]["description"])
	assert.Equal(t, 4.0, all[0]["rating"])
	assert.Equal(t, created.ID(), all[0].ID())
}
