package services

import (
	"context"

	"promptcloud/internal/domain/models"
	"promptcloud/internal/httputil"
)

// PromptService handles prompt business logic
type PromptService interface {
	// ListPrompts lists prompts matching the filter (nil = no restriction,
	// default ordering). Filters combine conjunctively.
	ListPrompts(ctx context.Context, filter *models.ListPromptsFilter) ([]models.Prompt, error)

	// CreatePrompt creates a new prompt
	CreatePrompt(ctx context.Context, req *CreatePromptRequest) (*models.Prompt, error)

	// GetPrompt retrieves a prompt with its embedded folder
	GetPrompt(ctx context.Context, id string) (*models.Prompt, error)

	// UpdatePrompt applies a partial update
	UpdatePrompt(ctx context.Context, id string, req *UpdatePromptRequest) (*models.Prompt, error)

	// DeletePrompt removes a prompt
	DeletePrompt(ctx context.Context, id string) error
}

// CreatePromptRequest represents a prompt creation request
type CreatePromptRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Emoji    *string `json:"emoji,omitempty"`
	FolderID *string `json:"folderId,omitempty"`
}

// UpdatePromptRequest represents a prompt update request.
// Title, content and emoji follow pointer-partial semantics (nil = leave
// unchanged). FolderID is tri-state: absent = leave unchanged, explicit
// null = detach from any folder, value = reassign (the folder must exist).
type UpdatePromptRequest struct {
	Title    *string                 `json:"title,omitempty"`
	Content  *string                 `json:"content,omitempty"`
	Emoji    *string                 `json:"emoji,omitempty"`
	FolderID httputil.OptionalString `json:"folderId"`
}
