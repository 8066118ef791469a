package api

import "github.com/calverly/taskdeck-api/internal/domain"

// Common request/response structures

// SignUpRequest defines the payload for the user registration endpoint.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// UserResponse is the public view of a user. The password hash is never
// part of any response.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenResponse defines the successful response for the sign-in endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,max=200"`
	Description string  `json:"description" validate:"max=1000"`
	TagIDs      []int64 `json:"tag_ids"`
}

// UpdateTaskRequest defines a partial task update. Absent fields are left
// untouched; a present tag_ids replaces the full tag set.
type UpdateTaskRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Done        *bool    `json:"done"`
	TagIDs      *[]int64 `json:"tag_ids"`
}

// TaskResponse is the public view of a task.
type TaskResponse struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Done        bool          `json:"done"`
	Tags        []TagResponse `json:"tags"`
}

// TagRequest defines the payload for creating or renaming a tag.
type TagRequest struct {
	Name string `json:"name" validate:"required,min=3,max=50"`
}

// TagResponse is the public view of a tag.
type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

func tagToResponse(tag *domain.Tag) TagResponse {
	return TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

func tagsToResponse(tags []*domain.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tagToResponse(tag))
	}
	return out
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Done:        task.Done,
		Tags:        tagsToResponse(task.Tags),
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
