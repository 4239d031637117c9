package core

import (
	"context"
	"errors"
	"sync"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/db/memstore"
	"educonnect-backend/internal/models"
)

type fakeGateway struct {
	mu      sync.Mutex
	amounts []int64
	keys    []string
	err     error
}

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, amount int64, key string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.amounts = append(g.amounts, amount)
	g.keys = append(g.keys, key)
	if g.err != nil {
		return "", g.err
	}
	return "pi_secret_test", nil
}

func (g *fakeGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.amounts)
}

type fakeGenerator struct {
	prompts []string
	err     error
}

func (g *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return "generated: " + prompt, nil
}

type failingAuditRepo struct{}

func (failingAuditRepo) Create(context.Context, models.AuditLog) error {
	return errors.New("audit store down")
}

func newTestStore() (*db.Store, *memstore.DB) {
	database := memstore.Open()
	return memstore.NewStore(database), database
}
