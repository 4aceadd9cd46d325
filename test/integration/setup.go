package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/lib/pq"

	handler "github.com/logbook/api/internal/adapters/handler/http"
	pgrepo "github.com/logbook/api/internal/adapters/repository/postgres"
	"github.com/logbook/api/internal/core/domain"
	"github.com/logbook/api/internal/core/services"
)

// TestApp runs the whole stack against a disposable database: real router,
// real services, real repositories, migrated schema.
type TestApp struct {
	DB        *sql.DB
	Server    *httptest.Server
	Container testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func setupApp(t *testing.T) *TestApp {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, connStr, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, pgrepo.RunMigrations(ctx, db))

	logger := zap.NewNop()
	clock := domain.NewSystemClock()
	userRepo := pgrepo.NewUserRepository(db)
	logRepo := pgrepo.NewLogRepository(db)
	creds := services.NewCredentialService(bcrypt.MinCost)
	tokens := services.NewTokenService([]byte("test-secret"), time.Hour, clock)
	userSvc := services.NewUserService(userRepo, creds, tokens, clock)
	logSvc := services.NewLogService(logRepo, userRepo, clock)

	mux := handler.NewHandler(
		handler.NewUserHandler(userSvc, logSvc, logger),
		handler.NewLogHandler(logSvc, logger),
		handler.NewAuthMiddleware(tokens),
		logger,
	)
	server := httptest.NewServer(mux)

	app := &TestApp{DB: db, Server: server, Container: container}
	t.Cleanup(func() {
		server.Close()
		db.Close()
		container.Terminate(context.Background())
	})
	return app
}

type response struct {
	Status int
	Body   map[string]any
	Raw    []byte
}

func (a *TestApp) do(t *testing.T, method, path, token string, payload any) response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.Server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := response{Status: resp.StatusCode, Raw: raw}
	if len(raw) > 0 {
		var parsed map[string]any
		if json.Unmarshal(raw, &parsed) == nil {
			out.Body = parsed
		}
	}
	return out
}

func (a *TestApp) signUp(t *testing.T, name, email, password string) {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/user/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.Status)
}

func (a *TestApp) signIn(t *testing.T, email, password string) string {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/user/signin", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.Status)
	token, ok := resp.Body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func (a *TestApp) createLog(t *testing.T, token string, fields map[string]string) map[string]any {
	t.Helper()
	payload := map[string]string{
		"level":             "FATAL",
		"description":       "Application down",
		"senderApplication": "App_1",
		"sendDate":          "10/10/2019 15:00",
		"environment":       "production",
	}
	for k, v := range fields {
		payload[k] = v
	}
	resp := a.do(t, http.MethodPost, "/logs", token, payload)
	require.Equal(t, http.StatusCreated, resp.Status)
	created, ok := resp.Body["createdLog"].(map[string]any)
	require.True(t, ok)
	return created
}

func message(t *testing.T, resp response) string {
	t.Helper()
	msg, _ := resp.Body["message"].(string)
	return msg
}
