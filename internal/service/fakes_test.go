package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"promptcloud/internal/domain"
	"promptcloud/internal/domain/models"
)

// testLogger discards output so service logging stays out of test noise
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeFolderRepository is an in-memory FolderRepository
type fakeFolderRepository struct {
	folders map[string]models.Folder
	prompts *fakePromptRepository

	failWith error
}

func newFakeFolderRepository() *fakeFolderRepository {
	return &fakeFolderRepository{folders: make(map[string]models.Folder)}
}

func (f *fakeFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.folders[folder.ID] = *folder
	return nil
}

func (f *fakeFolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	folder, ok := f.folders[id]
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	folder.Prompts = []models.Prompt{}
	if f.prompts != nil {
		for _, prompt := range f.prompts.prompts {
			if prompt.FolderID != nil && *prompt.FolderID == id {
				folder.Prompts = append(folder.Prompts, prompt)
			}
		}
		sort.Slice(folder.Prompts, func(i, j int) bool {
			return folder.Prompts[i].CreatedAt.After(folder.Prompts[j].CreatedAt)
		})
	}
	folder.PromptCount = len(folder.Prompts)

	return &folder, nil
}

func (f *fakeFolderRepository) ListAll(ctx context.Context) ([]models.Folder, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	folders := make([]models.Folder, 0, len(f.folders))
	for _, folder := range f.folders {
		if f.prompts != nil {
			folder.PromptCount = f.prompts.countInFolder(folder.ID)
		}
		folders = append(folders, folder)
	}
	sort.Slice(folders, func(i, j int) bool {
		return folders[i].CreatedAt.After(folders[j].CreatedAt)
	})
	return folders, nil
}

func (f *fakeFolderRepository) Update(ctx context.Context, id string, update *models.FolderUpdate) (*models.Folder, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	folder, ok := f.folders[id]
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	if update.Name != nil {
		folder.Name = *update.Name
	}
	if update.Emoji != nil {
		folder.Emoji = update.Emoji
	}
	folder.UpdatedAt = update.UpdatedAt

	f.folders[id] = folder
	return &folder, nil
}

func (f *fakeFolderRepository) Delete(ctx context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.folders[id]; !ok {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	delete(f.folders, id)
	if f.prompts != nil {
		f.prompts.deleteInFolder(id)
	}
	return nil
}

// fakePromptRepository is an in-memory PromptRepository that mirrors the
// store semantics: embedded folders on reads, reference checks on writes.
type fakePromptRepository struct {
	prompts map[string]models.Prompt
	folders *fakeFolderRepository

	// lastUpdate records the patch the service handed to Update
	lastUpdate *models.PromptUpdate

	failWith error
}

func newFakePromptRepository() *fakePromptRepository {
	return &fakePromptRepository{prompts: make(map[string]models.Prompt)}
}

// link wires the two fakes together so folder embedding, prompt counts and
// cascade deletes behave like the real store.
func link(folders *fakeFolderRepository, prompts *fakePromptRepository) {
	folders.prompts = prompts
	prompts.folders = folders
}

func (f *fakePromptRepository) embedFolder(prompt *models.Prompt) {
	prompt.Folder = nil
	if prompt.FolderID == nil || f.folders == nil {
		return
	}
	if folder, ok := f.folders.folders[*prompt.FolderID]; ok {
		prompt.Folder = &folder
	}
}

func (f *fakePromptRepository) checkReference(prompt *models.Prompt) error {
	if prompt.FolderID == nil || f.folders == nil {
		return nil
	}
	if _, ok := f.folders.folders[*prompt.FolderID]; !ok {
		return fmt.Errorf("folder %s: %w", *prompt.FolderID, domain.ErrInvalidReference)
	}
	return nil
}

func (f *fakePromptRepository) countInFolder(folderID string) int {
	count := 0
	for _, prompt := range f.prompts {
		if prompt.FolderID != nil && *prompt.FolderID == folderID {
			count++
		}
	}
	return count
}

func (f *fakePromptRepository) deleteInFolder(folderID string) {
	for id, prompt := range f.prompts {
		if prompt.FolderID != nil && *prompt.FolderID == folderID {
			delete(f.prompts, id)
		}
	}
}

func (f *fakePromptRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	if f.failWith != nil {
		return f.failWith
	}
	if err := f.checkReference(prompt); err != nil {
		return err
	}
	f.prompts[prompt.ID] = *prompt
	f.embedFolder(prompt)
	return nil
}

func (f *fakePromptRepository) GetByID(ctx context.Context, id string) (*models.Prompt, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	prompt, ok := f.prompts[id]
	if !ok {
		return nil, fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}
	f.embedFolder(&prompt)
	return &prompt, nil
}

func (f *fakePromptRepository) List(ctx context.Context, filter *models.ListPromptsFilter) ([]models.Prompt, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	matched := []models.Prompt{}
	for _, prompt := range f.prompts {
		if filter.FolderID != nil {
			if prompt.FolderID == nil || *prompt.FolderID != *filter.FolderID {
				continue
			}
		}
		if filter.Search != "" {
			term := strings.ToLower(filter.Search)
			title := strings.ToLower(prompt.Title)
			content := strings.ToLower(prompt.Content)
			if !strings.Contains(title, term) && !strings.Contains(content, term) {
				continue
			}
		}
		f.embedFolder(&prompt)
		matched = append(matched, prompt)
	}

	sort.Slice(matched, func(i, j int) bool {
		var less bool
		if filter.SortBy == models.SortByTitle {
			less = matched[i].Title < matched[j].Title
		} else {
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if filter.SortOrder == models.SortOrderDesc {
			return !less
		}
		return less
	})

	return matched, nil
}

func (f *fakePromptRepository) Update(ctx context.Context, id string, update *models.PromptUpdate) (*models.Prompt, error) {
	f.lastUpdate = update
	if f.failWith != nil {
		return nil, f.failWith
	}
	prompt, ok := f.prompts[id]
	if !ok {
		return nil, fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}

	if update.Title != nil {
		prompt.Title = *update.Title
	}
	if update.Content != nil {
		prompt.Content = *update.Content
	}
	if update.Emoji != nil {
		prompt.Emoji = update.Emoji
	}
	if update.Folder.Set {
		prompt.FolderID = update.Folder.Value
	}
	prompt.UpdatedAt = update.UpdatedAt

	if err := f.checkReference(&prompt); err != nil {
		return nil, err
	}

	f.prompts[id] = prompt
	f.embedFolder(&prompt)
	return &prompt, nil
}

func (f *fakePromptRepository) Delete(ctx context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.prompts[id]; !ok {
		return fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}
	delete(f.prompts, id)
	return nil
}
