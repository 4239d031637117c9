package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educonnect-backend/internal/models"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), MinorUnits(19.99))
	assert.Equal(t, int64(1000), MinorUnits(10))
	assert.Equal(t, int64(50), MinorUnits(0.5))
}

func TestPaymentService_CreateIntent(t *testing.T) {
	store, _ := newTestStore()
	gateway := &fakeGateway{}
	svc := NewPaymentService(store.Classes, store.Payments, gateway)
	ctx := context.Background()

	classID, err := store.Classes.Create(ctx, &models.Class{Title: "Go", Price: 5})
	require.NoError(t, err)

	secret, err := svc.CreateIntent(ctx, classID, 19.99, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "pi_secret_test", secret)
	assert.Equal(t, []int64{1999}, gateway.amounts)
	assert.Equal(t, []string{"key-1"}, gateway.keys)

	_, err = svc.CreateIntent(ctx, classID, 0, "")
	require.NoError(t, err)
	assert.Equal(t, int64(500), gateway.amounts[1])
	assert.Contains(t, gateway.keys[1], "enroll-"+classID+"-")

	class, err := store.Classes.GetByID(ctx, classID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), class.Enroll)
}

func TestPaymentService_UnknownClassSkipsOracle(t *testing.T) {
	store, _ := newTestStore()
	gateway := &fakeGateway{}
	svc := NewPaymentService(store.Classes, store.Payments, gateway)

	_, err := svc.CreateIntent(context.Background(), "missing", 10, "")
	assert.ErrorIs(t, err, ErrClassNotFound)
	assert.Zero(t, gateway.calls())
}

func TestPaymentService_ProviderFailureDoesNotEnroll(t *testing.T) {
	store, _ := newTestStore()
	gateway := &fakeGateway{err: errors.New("card_declined")}
	svc := NewPaymentService(store.Classes, store.Payments, gateway)
	ctx := context.Background()
	classID, err := store.Classes.Create(ctx, &models.Class{Title: "Go", Price: 5})
	require.NoError(t, err)

	_, err = svc.CreateIntent(ctx, classID, 0, "")
	assert.ErrorIs(t, err, ErrPaymentProvider)

	class, err := store.Classes.GetByID(ctx, classID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), class.Enroll)
}

func TestPaymentService_FreeClassIsRejected(t *testing.T) {
	store, _ := newTestStore()
	gateway := &fakeGateway{}
	svc := NewPaymentService(store.Classes, store.Payments, gateway)
	ctx := context.Background()
	classID, err := store.Classes.Create(ctx, &models.Class{Title: "Free"})
	require.NoError(t, err)

	_, err = svc.CreateIntent(ctx, classID, 0, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, gateway.calls())
}

func TestPaymentService_ConcurrentEnrollmentsAreCounted(t *testing.T) {
	store, _ := newTestStore()
	gateway := &fakeGateway{}
	svc := NewPaymentService(store.Classes, store.Payments, gateway)
	ctx := context.Background()
	classID, err := store.Classes.Create(ctx, &models.Class{Title: "Go", Price: 5})
	require.NoError(t, err)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.CreateIntent(ctx, classID, 0, "")
		}()
	}
	wg.Wait()

	class, err := store.Classes.GetByID(ctx, classID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), class.Enroll)
	assert.Equal(t, n, gateway.calls())
}

func TestPaymentService_RecordAndListByEmail(t *testing.T) {
	store, _ := newTestStore()
	svc := NewPaymentService(store.Classes, store.Payments, &fakeGateway{})
	ctx := context.Background()

	for _, email := range []string{"a@x.io", "b@x.io", "a@x.io"} {
		payment, err := svc.Record(ctx, models.Payment{"email": email, "classId": "c1", "price": 10.0})
		require.NoError(t, err)
		assert.NotEmpty(t, payment.ID())
	}

	mine, err := svc.ListByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPaymentService_RecordKeepsDocumentVerbatim(t *testing.T) {
	store, _ := newTestStore()
	svc := NewPaymentService(store.Classes, store.Payments, &fakeGateway{})
	ctx := context.Background()

	sent := models.Payment{"email": "a@x.io", "date": "2025-01-05", "status": "succeeded", "price": 19.99}
	_, err := svc.Record(ctx, sent)
	require.NoError(t, err)
	assert.NotContains(t, sent, models.DocumentIDKey, "caller's document is not modified")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2025-01-05", all[0]["date"])
	assert.Equal(t, "succeeded", all[0]["status"])
	assert.Equal(t, 19.99, all[0]["price"])

	_, err = svc.Record(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
