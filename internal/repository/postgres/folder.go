package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"promptcloud/internal/domain"
	"promptcloud/internal/domain/models"
	"promptcloud/internal/domain/repositories"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new folder
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, emoji, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, r.tables.Folders)

	err := r.pool.QueryRow(ctx, query,
		folder.ID,
		folder.Name,
		folder.Emoji,
		folder.CreatedAt,
		folder.UpdatedAt,
	).Scan(&folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// GetByID retrieves a folder together with its owned prompts, newest first,
// in one round trip. A folder with no prompts comes back as a single row with
// NULL prompt columns.
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	query := getFolderWithPromptsQuery(r.tables)

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get folder: %w", err)
	}
	defer rows.Close()

	var folder *models.Folder
	for rows.Next() {
		var (
			f models.Folder
			p promptRow
		)
		err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Emoji,
			&f.CreatedAt,
			&f.UpdatedAt,
			&p.id,
			&p.title,
			&p.content,
			&p.emoji,
			&p.folderID,
			&p.createdAt,
			&p.updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}

		if folder == nil {
			f.Prompts = []models.Prompt{}
			folder = &f
		}
		if p.id != nil {
			folder.Prompts = append(folder.Prompts, p.toModel())
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folder prompts: %w", err)
	}

	if folder == nil {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	folder.PromptCount = len(folder.Prompts)
	return folder, nil
}

// getFolderWithPromptsQuery selects one folder and its prompts in a single
// statement, prompts ordered newest first.
func getFolderWithPromptsQuery(tables *TableNames) string {
	return fmt.Sprintf(`
		SELECT f.id, f.name, f.emoji, f.created_at, f.updated_at,
		       p.id, p.title, p.content, p.emoji, p.folder_id, p.created_at, p.updated_at
		FROM %s f
		LEFT JOIN %s p ON p.folder_id = f.id
		WHERE f.id = $1
		ORDER BY p.created_at DESC
	`, tables.Folders, tables.Prompts)
}

// promptRow holds the nullable prompt half of a folder-with-prompts row.
type promptRow struct {
	id        *string
	title     *string
	content   *string
	emoji     *string
	folderID  *string
	createdAt *time.Time
	updatedAt *time.Time
}

func (p *promptRow) toModel() models.Prompt {
	return models.Prompt{
		ID:        *p.id,
		Title:     *p.title,
		Content:   *p.content,
		Emoji:     p.emoji,
		FolderID:  p.folderID,
		CreatedAt: *p.createdAt,
		UpdatedAt: *p.updatedAt,
	}
}

// ListAll retrieves all folders, newest first, each annotated with the count
// of prompts referencing it.
func (r *PostgresFolderRepository) ListAll(ctx context.Context) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT f.id, f.name, f.emoji, f.created_at, f.updated_at, COUNT(p.id)
		FROM %s f
		LEFT JOIN %s p ON p.folder_id = f.id
		GROUP BY f.id, f.name, f.emoji, f.created_at, f.updated_at
		ORDER BY f.created_at DESC
	`, r.tables.Folders, r.tables.Prompts)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.Name,
			&folder.Emoji,
			&folder.CreatedAt,
			&folder.UpdatedAt,
			&folder.PromptCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	// Return empty slice instead of nil
	if folders == nil {
		folders = []models.Folder{}
	}

	return folders, nil
}

// Update applies the supplied fields in a single statement. NULL parameters
// fall through to the current column values, so concurrent updates to other
// fields are never overwritten.
func (r *PostgresFolderRepository) Update(ctx context.Context, id string, update *models.FolderUpdate) (*models.Folder, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = COALESCE($1, name),
		    emoji = COALESCE($2, emoji),
		    updated_at = $3
		WHERE id = $4
		RETURNING id, name, emoji, created_at, updated_at
	`, r.tables.Folders)

	var folder models.Folder
	err := r.pool.QueryRow(ctx, query,
		update.Name,
		update.Emoji,
		update.UpdatedAt,
		id,
	).Scan(
		&folder.ID,
		&folder.Name,
		&folder.Emoji,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update folder: %w", err)
	}

	return &folder, nil
}

// Delete removes a folder. The ON DELETE CASCADE constraint on the prompts
// table removes its prompts in the same round trip.
func (r *PostgresFolderRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Folders)

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
