package repositories

import (
	"context"

	"promptcloud/internal/domain/models"
)

// FolderRepository defines data access operations for folders.
// Every operation is a single store round trip.
type FolderRepository interface {
	// Create inserts a new folder
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder including its owned prompts (newest first)
	// and their count
	GetByID(ctx context.Context, id string) (*models.Folder, error)

	// ListAll retrieves all folders ordered by creation time descending,
	// each annotated with its prompt count
	ListAll(ctx context.Context) ([]models.Folder, error)

	// Update applies the supplied fields to an existing folder and returns
	// the updated row
	Update(ctx context.Context, id string, update *models.FolderUpdate) (*models.Folder, error)

	// Delete removes a folder; owned prompts go with it via the
	// schema-enforced cascade
	Delete(ctx context.Context, id string) error
}
