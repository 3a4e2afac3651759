package repositories

import (
	"context"

	"promptcloud/internal/domain/models"
)

// PromptRepository defines data access operations for prompts.
// Read and write results carry the owning folder embedded.
type PromptRepository interface {
	// Create inserts a new prompt and fills in its embedded folder.
	// A dangling FolderID fails with domain.ErrInvalidReference.
	Create(ctx context.Context, prompt *models.Prompt) error

	// GetByID retrieves a prompt with its embedded folder
	GetByID(ctx context.Context, id string) (*models.Prompt, error)

	// List retrieves prompts matching the filter. The filter must have gone
	// through ApplyDefaults. Returns an empty slice when nothing matches.
	List(ctx context.Context, filter *models.ListPromptsFilter) ([]models.Prompt, error)

	// Update applies the supplied fields to an existing prompt in a single
	// statement and returns the updated row with its embedded folder. A
	// dangling folder reference fails with domain.ErrInvalidReference.
	Update(ctx context.Context, id string, update *models.PromptUpdate) (*models.Prompt, error)

	// Delete removes a prompt
	Delete(ctx context.Context, id string) error
}
