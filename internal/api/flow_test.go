package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/calverly/taskdeck-api/internal/api/middleware"
	"github.com/calverly/taskdeck-api/internal/config"
	"github.com/calverly/taskdeck-api/internal/mocks"
	"github.com/calverly/taskdeck-api/internal/service"
	"github.com/calverly/taskdeck-api/internal/service/auth"
)

// TestFullAuthenticatedFlow runs the whole lifecycle against the real token
// service and hasher: register, sign in, and use the issued token for CRUD.
func TestFullAuthenticatedFlow(t *testing.T) {
	t.Parallel()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "integration-test-secret-32-characters",
		TokenLifetimeMinutes: 30,
	})
	require.NoError(t, err)

	userStore := mocks.NewMockUserStore()
	tagStore := mocks.NewMockTagStore()
	taskStore := mocks.NewMockTaskStore()
	taskStore.TagSource = tagStore

	env := &testEnv{
		userStore: userStore,
		taskStore: taskStore,
		tagStore:  tagStore,
		router: NewRouter(
			NewAuthHandler(userStore, jwtService, auth.NewBcryptHasher(bcrypt.MinCost)),
			NewTaskHandler(service.NewTaskService(&mocks.MockTxRunner{}, taskStore, tagStore, nil), nil),
			NewTagHandler(service.NewTagService(tagStore, nil), nil),
			middleware.NewAuthMiddleware(jwtService, userStore),
		),
	}

	// Register
	rec := env.doJSON(t, http.MethodPost, "/auth/sign-up", "", SignUpRequest{
		Username: "Dana",
		Password: "Str0ng!pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "dana", decodeBody[UserResponse](t, rec).Username)

	// Sign in with the original casing
	rec = env.doForm(t, "/token", url.Values{
		"username": {"Dana"},
		"password": {"Str0ng!pass"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody[TokenResponse](t, rec)
	require.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)

	// Whoami
	rec = env.doJSON(t, http.MethodGet, "/auth/me", token.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dana", decodeBody[UserResponse](t, rec).Username)

	// Create a tag, then a task referencing it
	rec = env.doJSON(t, http.MethodPost, "/tags/", token.AccessToken, TagRequest{Name: "groceries"})
	require.Equal(t, http.StatusCreated, rec.Code)
	tag := decodeBody[TagResponse](t, rec)

	rec = env.doJSON(t, http.MethodPost, "/tasks/", token.AccessToken, CreateTaskRequest{
		Title:  "Buy milk",
		TagIDs: []int64{tag.ID},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decodeBody[TaskResponse](t, rec)
	require.Len(t, task.Tags, 1)
	assert.Equal(t, "groceries", task.Tags[0].Name)

	// Complete the task
	rec = env.doJSON(t, http.MethodPatch, "/tasks/"+itoa(task.ID), token.AccessToken, map[string]any{
		"done": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[TaskResponse](t, rec).Done)

	// Delete it
	rec = env.doJSON(t, http.MethodDelete, "/tasks/"+itoa(task.ID), token.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/tasks/"+itoa(task.ID), token.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doJSON(t, http.MethodGet, "/tasks/", token.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]TaskResponse](t, rec))

	// A tampered token is rejected
	rec = env.doJSON(t, http.MethodGet, "/tasks/", token.AccessToken+"x", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Passwords near the policy's 128-character ceiling exceed bcrypt's 72-byte
// input limit; registration and sign-in must still work with the real hasher.
func TestLongPasswordSignUpAndSignIn(t *testing.T) {
	t.Parallel()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "integration-test-secret-32-characters",
		TokenLifetimeMinutes: 30,
	})
	require.NoError(t, err)

	userStore := mocks.NewMockUserStore()
	tagStore := mocks.NewMockTagStore()
	taskStore := mocks.NewMockTaskStore()
	taskStore.TagSource = tagStore

	env := &testEnv{
		userStore: userStore,
		taskStore: taskStore,
		tagStore:  tagStore,
		router: NewRouter(
			NewAuthHandler(userStore, jwtService, auth.NewBcryptHasher(bcrypt.MinCost)),
			NewTaskHandler(service.NewTaskService(&mocks.MockTxRunner{}, taskStore, tagStore, nil), nil),
			NewTagHandler(service.NewTagService(tagStore, nil), nil),
			middleware.NewAuthMiddleware(jwtService, userStore),
		),
	}

	password := "Aa1!" + strings.Repeat("x", 96)

	rec := env.doJSON(t, http.MethodPost, "/auth/sign-up", "", SignUpRequest{
		Username: "erin",
		Password: password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.doForm(t, "/token", url.Values{
		"username": {"erin"},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody[TokenResponse](t, rec).AccessToken)

	rec = env.doForm(t, "/token", url.Values{
		"username": {"erin"},
		"password": {"Wr0ng!pass"},
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
