package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calverly/taskdeck-api/internal/api/middleware"
	"github.com/calverly/taskdeck-api/internal/domain"
	"github.com/calverly/taskdeck-api/internal/mocks"
	"github.com/calverly/taskdeck-api/internal/service"
	"github.com/calverly/taskdeck-api/internal/service/auth"
)

// testEnv wires the full router to mock stores. Bearer tokens double as the
// token subject, so "Bearer alice" authenticates as the stored user alice.
type testEnv struct {
	router    http.Handler
	userStore *mocks.MockUserStore
	taskStore *mocks.MockTaskStore
	tagStore  *mocks.MockTagStore
	hasher    *mocks.MockPasswordHasher
	alice     *domain.User
	bob       *domain.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userStore := mocks.NewMockUserStore()
	alice := &domain.User{ID: 1, Username: "alice", HashedPassword: "hashed:Str0ng!pass"}
	bob := &domain.User{ID: 2, Username: "bob", HashedPassword: "hashed:Str0ng!pass"}
	userStore.Users["alice"] = alice
	userStore.Users["bob"] = bob

	jwtService := &mocks.MockJWTService{
		Token: "issued-token",
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			return &auth.Claims{Subject: tokenString}, nil
		},
	}
	hasher := &mocks.MockPasswordHasher{ShouldSucceed: true}

	tagStore := mocks.NewMockTagStore()
	taskStore := mocks.NewMockTaskStore()
	taskStore.TagSource = tagStore

	taskService := service.NewTaskService(&mocks.MockTxRunner{}, taskStore, tagStore, nil)
	tagService := service.NewTagService(tagStore, nil)

	router := NewRouter(
		NewAuthHandler(userStore, jwtService, hasher),
		NewTaskHandler(taskService, nil),
		NewTagHandler(tagService, nil),
		middleware.NewAuthMiddleware(jwtService, userStore),
	)

	return &testEnv{
		router:    router,
		userStore: userStore,
		taskStore: taskStore,
		tagStore:  tagStore,
		hasher:    hasher,
		alice:     alice,
		bob:       bob,
	}
}

// doJSON performs a request with an optional JSON body. A non-empty token is
// sent as a bearer credential.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// doForm performs a form-encoded POST, as the token endpoint expects.
func (e *testEnv) doForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody[map[string]any](t, rec)
	msg, _ := body["error"].(string)
	return msg
}
