package services

import (
	"context"

	"promptcloud/internal/domain/models"
)

// FolderService handles folder business logic
type FolderService interface {
	// ListFolders lists all folders, newest first, each with its prompt count
	ListFolders(ctx context.Context) ([]models.Folder, error)

	// CreateFolder creates a new folder
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)

	// GetFolder retrieves a folder including its owned prompts
	GetFolder(ctx context.Context, id string) (*models.Folder, error)

	// UpdateFolder applies a partial update (rename and/or emoji)
	UpdateFolder(ctx context.Context, id string, req *UpdateFolderRequest) (*models.Folder, error)

	// DeleteFolder removes a folder and, by store cascade, its prompts
	DeleteFolder(ctx context.Context, id string) error
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name  string  `json:"name"`
	Emoji *string `json:"emoji,omitempty"`
}

// UpdateFolderRequest represents a folder update request.
// Omitted fields are left unchanged; at least one must be supplied.
type UpdateFolderRequest struct {
	Name  *string `json:"name,omitempty"`
	Emoji *string `json:"emoji,omitempty"`
}
