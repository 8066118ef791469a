package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calverly/taskdeck-api/internal/domain"
)

func (e *testEnv) seedTask(t *testing.T, userID int64, title, description string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(userID, title, description)
	require.NoError(t, err)
	require.NoError(t, e.taskStore.Create(context.Background(), task))
	return task
}

func (e *testEnv) seedTag(t *testing.T, userID int64, name string) *domain.Tag {
	t.Helper()
	tag, err := domain.NewTag(userID, name)
	require.NoError(t, err)
	require.NoError(t, e.tagStore.Create(context.Background(), tag))
	return tag
}

func TestTaskEndpointsRequireAuth(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/tasks/"},
		{http.MethodPost, "/tasks/"},
		{http.MethodGet, "/tasks/1"},
		{http.MethodPatch, "/tasks/1"},
		{http.MethodDelete, "/tasks/1"},
	} {
		rec := env.doJSON(t, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestCreateTaskEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("creates a task with tags", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		tag := env.seedTag(t, env.alice.ID, "errand")

		rec := env.doJSON(t, http.MethodPost, "/tasks/", "alice", CreateTaskRequest{
			Title:       "  Buy milk  ",
			Description: "2 liters",
			TagIDs:      []int64{tag.ID},
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[TaskResponse](t, rec)
		assert.Equal(t, "Buy milk", body.Title)
		require.NotNil(t, body.Description)
		assert.Equal(t, "2 liters", *body.Description)
		assert.False(t, body.Done)
		require.Len(t, body.Tags, 1)
		assert.Equal(t, "errand", body.Tags[0].Name)
	})

	t.Run("blank description is absent, not empty", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.doJSON(t, http.MethodPost, "/tasks/", "alice", CreateTaskRequest{
			Title:       "Buy milk",
			Description: "   ",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[TaskResponse](t, rec)
		assert.Nil(t, body.Description)
		assert.NotNil(t, body.Tags, "tags serialize as an empty list")
	})

	t.Run("accepts a multibyte title within the character limit", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		title := strings.Repeat("é", 150)
		rec := env.doJSON(t, http.MethodPost, "/tasks/", "alice", CreateTaskRequest{Title: title})

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, title, decodeBody[TaskResponse](t, rec).Title)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.doJSON(t, http.MethodPost, "/tasks/", "alice", map[string]any{
			"description": "no title",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejects whitespace-only title", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.doJSON(t, http.MethodPost, "/tasks/", "alice", CreateTaskRequest{Title: "   "})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejects another user's tag", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		foreign := env.seedTag(t, env.bob.ID, "bobs-tag")

		rec := env.doJSON(t, http.MethodPost, "/tasks/", "alice", CreateTaskRequest{
			Title:  "Buy milk",
			TagIDs: []int64{foreign.ID},
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects unknown tag as not found", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.doJSON(t, http.MethodPost, "/tasks/", "alice", CreateTaskRequest{
			Title:  "Buy milk",
			TagIDs: []int64{9999},
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListTasksEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	first := env.seedTask(t, env.alice.ID, "First", "")
	second := env.seedTask(t, env.alice.ID, "Second", "")
	env.seedTask(t, env.bob.ID, "Bob's task", "")

	rec := env.doJSON(t, http.MethodGet, "/tasks/", "alice", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]TaskResponse](t, rec)
	require.Len(t, body, 2, "only the principal's tasks")
	assert.Equal(t, second.ID, body[0].ID, "newest first")
	assert.Equal(t, first.ID, body[1].ID)
}

func TestGetTaskEndpoint(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	mine := env.seedTask(t, env.alice.ID, "Mine", "")
	theirs := env.seedTask(t, env.bob.ID, "Theirs", "")

	t.Run("returns own task", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, fmt.Sprintf("/tasks/%d", mine.ID), "alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, mine.ID, decodeBody[TaskResponse](t, rec).ID)
	})

	t.Run("another user's task is forbidden", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, fmt.Sprintf("/tasks/%d", theirs.ID), "alice", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing task is not found", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/tasks/9999", "alice", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found", errorMessage(t, rec))
	})

	t.Run("malformed id is a bad request", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/tasks/abc", "alice", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid ID format", errorMessage(t, rec))
	})
}

func TestUpdateTaskEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("partial update changes only supplied fields", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		task := env.seedTask(t, env.alice.ID, "Original", "keep me")

		rec := env.doJSON(t, http.MethodPatch, fmt.Sprintf("/tasks/%d", task.ID), "alice", map[string]any{
			"done": true,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[TaskResponse](t, rec)
		assert.True(t, body.Done)
		assert.Equal(t, "Original", body.Title)
		require.NotNil(t, body.Description)
		assert.Equal(t, "keep me", *body.Description)
	})

	t.Run("replaces tag set", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		task := env.seedTask(t, env.alice.ID, "Original", "")
		tag := env.seedTag(t, env.alice.ID, "errand")

		rec := env.doJSON(t, http.MethodPatch, fmt.Sprintf("/tasks/%d", task.ID), "alice", map[string]any{
			"tag_ids": []int64{tag.ID},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[TaskResponse](t, rec)
		require.Len(t, body.Tags, 1)
		assert.Equal(t, tag.ID, body.Tags[0].ID)
	})

	t.Run("another user's task is forbidden and unchanged", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		theirs := env.seedTask(t, env.bob.ID, "Theirs", "")

		rec := env.doJSON(t, http.MethodPatch, fmt.Sprintf("/tasks/%d", theirs.ID), "alice", map[string]any{
			"title": "Hijacked",
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Theirs", env.taskStore.Tasks[theirs.ID].Title)
	})

	t.Run("rejects empty replacement title", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		task := env.seedTask(t, env.alice.ID, "Original", "")

		rec := env.doJSON(t, http.MethodPatch, fmt.Sprintf("/tasks/%d", task.ID), "alice", map[string]any{
			"title": "  ",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestDeleteTaskEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("deletes own task", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		task := env.seedTask(t, env.alice.ID, "Doomed", "")

		rec := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/tasks/%d", task.ID), "alice", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
		assert.NotContains(t, env.taskStore.Tasks, task.ID)
	})

	t.Run("another user's task is forbidden", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		theirs := env.seedTask(t, env.bob.ID, "Theirs", "")

		rec := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/tasks/%d", theirs.ID), "alice", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, env.taskStore.Tasks, theirs.ID)
	})

	t.Run("missing task is not found", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		rec := env.doJSON(t, http.MethodDelete, "/tasks/9999", "alice", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
