package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"educonnect-backend/internal/config"
	"educonnect-backend/internal/core"
	"educonnect-backend/internal/db"
	"educonnect-backend/internal/db/memstore"
	"educonnect-backend/internal/models"
)

type recordingGateway struct {
	mu      sync.Mutex
	amounts []int64
	keys    []string
}

func (g *recordingGateway) CreatePaymentIntent(_ context.Context, amount int64, key string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.amounts = append(g.amounts, amount)
	g.keys = append(g.keys, key)
	return "pi_test_secret", nil
}

type echoGenerator struct{}

func (echoGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	return "echo: " + prompt, nil
}

type testServer struct {
	router   *gin.Engine
	store    *db.Store
	database *memstore.DB
	tokens   core.TokenService
	gateway  *recordingGateway
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database := memstore.Open()
	store := memstore.NewStore(database)
	tokens, err := core.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	gateway := &recordingGateway{}
	audit := core.NewAuditService(store.Audit)

	services := Services{
		Users:           core.NewUserService(store.Users, audit),
		Classes:         core.NewClassService(store.Classes, store.Users, audit),
		TeacherRequests: core.NewTeacherRequestService(store.TeacherRequests, audit),
		Payments:        core.NewPaymentService(store.Classes, store.Payments, gateway),
		Feedback:        core.NewFeedbackService(store.Feedback),
		Prompts:         core.NewPromptService(echoGenerator{}),
		Tokens:          tokens,
	}

	router := gin.New()
	SetupRoutes(router, &config.Config{NodeEnv: "development"}, zap.NewNop(), services)
	return &testServer{router: router, store: store, database: database, tokens: tokens, gateway: gateway}
}

func (s *testServer) bearer(t *testing.T, email string) string {
	t.Helper()
	token, err := s.tokens.Issue(email)
	require.NoError(t, err)
	return "Bearer " + token
}

// registerAdmin stores a promoted user and returns its bearer header.
func (s *testServer) registerAdmin(t *testing.T, email string) string {
	t.Helper()
	ctx := context.Background()
	usr, _, err := s.store.Users.GetOrCreateByEmail(ctx, &models.User{Email: email, Role: models.RoleStudent})
	require.NoError(t, err)
	_, err = s.store.Users.SetRole(ctx, usr.ID, models.RoleAdmin)
	require.NoError(t, err)
	return s.bearer(t, email)
}

func (s *testServer) do(t *testing.T, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *testServer) createClass(t *testing.T, publisher string, class models.Class) string {
	t.Helper()
	class.Publisher.Email = publisher
	id, err := s.store.Classes.Create(context.Background(), &class)
	require.NoError(t, err)
	return id
}

