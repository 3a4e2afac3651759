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

type folderService struct {
	folderRepo repositories.FolderRepository
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// ListFolders lists all folders, newest first, each with its prompt count
func (s *folderService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return s.folderRepo.ListAll(ctx)
}

// CreateFolder creates a new folder
func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	folder := &models.Folder{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Emoji:     req.Emoji,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
	)

	return folder, nil
}

// GetFolder retrieves a folder including its owned prompts, newest first.
// The repository fetches both in one round trip.
func (s *folderService) GetFolder(ctx context.Context, id string) (*models.Folder, error) {
	return s.folderRepo.GetByID(ctx, id)
}

// UpdateFolder applies a partial update: omitted fields are left unchanged.
// The update is a single store statement.
func (s *folderService) UpdateFolder(ctx context.Context, id string, req *services.UpdateFolderRequest) (*models.Folder, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	update := &models.FolderUpdate{
		Name:      req.Name,
		Emoji:     req.Emoji,
		UpdatedAt: time.Now(),
	}

	folder, err := s.folderRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder updated",
		"id", folder.ID,
		"name", folder.Name,
	)

	return folder, nil
}

// DeleteFolder removes a folder; the store cascade removes its prompts
func (s *folderService) DeleteFolder(ctx context.Context, id string) error {
	if err := s.folderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("folder deleted", "id", id)

	return nil
}

// validateCreateRequest validates a folder creation request. Name must be
// non-empty; no upper bound — the column is unbounded TEXT.
func (s *folderService) validateCreateRequest(req *services.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required),
	)
}

// validateUpdateRequest validates a folder update request
func (s *folderService) validateUpdateRequest(req *services.UpdateFolderRequest) error {
	// At least one field must be provided
	if req.Name == nil && req.Emoji == nil {
		return fmt.Errorf("at least one field must be provided (name or emoji)")
	}

	var rules []*validation.FieldRules

	if req.Name != nil {
		rules = append(rules,
			validation.Field(&req.Name, validation.Required),
		)
	}

	return validation.ValidateStruct(req, rules...)
}
