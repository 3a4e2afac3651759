package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"promptcloud/internal/domain"
	"promptcloud/internal/domain/models"
	"promptcloud/internal/domain/repositories"
	"promptcloud/internal/domain/services"
)

type promptService struct {
	promptRepo repositories.PromptRepository
	logger     *slog.Logger
}

// NewPromptService creates a new prompt service
func NewPromptService(
	promptRepo repositories.PromptRepository,
	logger *slog.Logger,
) services.PromptService {
	return &promptService{
		promptRepo: promptRepo,
		logger:     logger,
	}
}

// ListPrompts lists prompts matching the filter. A nil filter lists
// everything in the default order (createdAt descending).
func (s *promptService) ListPrompts(ctx context.Context, filter *models.ListPromptsFilter) ([]models.Prompt, error) {
	if filter == nil {
		filter = &models.ListPromptsFilter{}
	}
	filter.ApplyDefaults()

	return s.promptRepo.List(ctx, filter)
}

// CreatePrompt creates a new prompt
func (s *promptService) CreatePrompt(ctx context.Context, req *services.CreatePromptRequest) (*models.Prompt, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Normalize empty string to nil for unassigned prompts
	if req.FolderID != nil && *req.FolderID == "" {
		req.FolderID = nil
	}

	now := time.Now()
	prompt := &models.Prompt{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Emoji:     req.Emoji,
		FolderID:  req.FolderID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.promptRepo.Create(ctx, prompt); err != nil {
		return nil, err
	}

	s.logger.Info("prompt created",
		"id", prompt.ID,
		"title", prompt.Title,
		"folder_id", prompt.FolderID,
	)

	return prompt, nil
}

// GetPrompt retrieves a prompt with its embedded folder
func (s *promptService) GetPrompt(ctx context.Context, id string) (*models.Prompt, error) {
	return s.promptRepo.GetByID(ctx, id)
}

// UpdatePrompt applies a partial update. Title, content and emoji change
// only when supplied; folderId distinguishes absent (leave unchanged),
// explicit null (detach) and a value (reassign). The whole update is one
// store statement, so omitted fields can never overwrite a concurrent write.
func (s *promptService) UpdatePrompt(ctx context.Context, id string, req *services.UpdatePromptRequest) (*models.Prompt, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	update := &models.PromptUpdate{
		Title:     req.Title,
		Content:   req.Content,
		Emoji:     req.Emoji,
		UpdatedAt: time.Now(),
	}

	// Tri-state: only touch the folder reference if the field was present
	if req.FolderID.Present {
		update.Folder = models.FolderChange{Set: true, Value: req.FolderID.Value}
	}

	prompt, err := s.promptRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("prompt updated",
		"id", prompt.ID,
		"title", prompt.Title,
		"folder_id", prompt.FolderID,
	)

	return prompt, nil
}

// DeletePrompt removes a prompt
func (s *promptService) DeletePrompt(ctx context.Context, id string) error {
	if err := s.promptRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("prompt deleted", "id", id)

	return nil
}

// validateCreateRequest validates a prompt creation request. Title and
// content must be non-empty; no upper bound — the columns are unbounded TEXT.
func (s *promptService) validateCreateRequest(req *services.CreatePromptRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Content, validation.Required),
	)
}

// validateUpdateRequest validates a prompt update request
func (s *promptService) validateUpdateRequest(req *services.UpdatePromptRequest) error {
	// At least one field must be provided
	if req.Title == nil && req.Content == nil && req.Emoji == nil && !req.FolderID.Present {
		return fmt.Errorf("at least one field must be provided (title, content, emoji, or folderId)")
	}

	var rules []*validation.FieldRules

	if req.Title != nil {
		rules = append(rules,
			validation.Field(&req.Title, validation.Required),
		)
	}
	if req.Content != nil {
		rules = append(rules,
			validation.Field(&req.Content, validation.Required),
		)
	}

	return validation.ValidateStruct(req, rules...)
}
