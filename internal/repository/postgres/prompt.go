package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"promptcloud/internal/domain"
	"promptcloud/internal/domain/models"
	"promptcloud/internal/domain/repositories"
)

// PostgresPromptRepository implements the PromptRepository interface
type PostgresPromptRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewPromptRepository creates a new prompt repository
func NewPromptRepository(config *RepositoryConfig) repositories.PromptRepository {
	return &PostgresPromptRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// promptColumns is the select list shared by every prompt read: the prompt
// row followed by the (possibly NULL) owning folder row.
const promptColumns = `p.id, p.title, p.content, p.emoji, p.folder_id, p.created_at, p.updated_at,
	       f.id, f.name, f.emoji, f.created_at, f.updated_at`

// Create inserts a new prompt and returns it with its embedded folder in a
// single round trip. A folder_id that references no folder trips the foreign
// key constraint and maps to domain.ErrInvalidReference.
func (r *PostgresPromptRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	query := fmt.Sprintf(`
		WITH p AS (
			INSERT INTO %s (id, title, content, emoji, folder_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, title, content, emoji, folder_id, created_at, updated_at
		)
		SELECT %s
		FROM p
		LEFT JOIN %s f ON f.id = p.folder_id
	`, r.tables.Prompts, promptColumns, r.tables.Folders)

	row := r.pool.QueryRow(ctx, query,
		prompt.ID,
		prompt.Title,
		prompt.Content,
		prompt.Emoji,
		prompt.FolderID,
		prompt.CreatedAt,
		prompt.UpdatedAt,
	)

	if err := scanPromptWithFolder(row, prompt); err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("folder %s: %w", derefOr(prompt.FolderID, ""), domain.ErrInvalidReference)
		}
		return fmt.Errorf("create prompt: %w", err)
	}

	return nil
}

// GetByID retrieves a prompt with its embedded folder
func (r *PostgresPromptRepository) GetByID(ctx context.Context, id string) (*models.Prompt, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		LEFT JOIN %s f ON f.id = p.folder_id
		WHERE p.id = $1
	`, promptColumns, r.tables.Prompts, r.tables.Folders)

	var prompt models.Prompt
	err := scanPromptWithFolder(r.pool.QueryRow(ctx, query, id), &prompt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get prompt: %w", err)
	}

	return &prompt, nil
}

// List retrieves prompts matching the filter, each with its embedded folder
func (r *PostgresPromptRepository) List(ctx context.Context, filter *models.ListPromptsFilter) ([]models.Prompt, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("invalid list filter: %w", err)
	}

	query, args := buildListPromptsQuery(r.tables, filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []models.Prompt
	for rows.Next() {
		var prompt models.Prompt
		if err := scanPromptWithFolder(rows, &prompt); err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		prompts = append(prompts, prompt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prompts: %w", err)
	}

	// Return empty slice instead of nil
	if prompts == nil {
		prompts = []models.Prompt{}
	}

	return prompts, nil
}

// Update applies the supplied fields and returns the updated prompt with its
// refreshed embedded folder, all in one statement. NULL parameters fall
// through to the current column values; the folder reference changes only
// when the update says so.
func (r *PostgresPromptRepository) Update(ctx context.Context, id string, update *models.PromptUpdate) (*models.Prompt, error) {
	query := updatePromptQuery(r.tables)

	row := r.pool.QueryRow(ctx, query,
		update.Title,
		update.Content,
		update.Emoji,
		update.Folder.Set,
		update.Folder.Value,
		update.UpdatedAt,
		id,
	)

	var prompt models.Prompt
	if err := scanPromptWithFolder(row, &prompt); err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
		}
		if IsPgForeignKeyError(err) {
			return nil, fmt.Errorf("folder %s: %w", derefOr(update.Folder.Value, ""), domain.ErrInvalidReference)
		}
		return nil, fmt.Errorf("update prompt: %w", err)
	}

	return &prompt, nil
}

// updatePromptQuery builds the partial-update statement: COALESCE keeps
// omitted columns at their current values, and the folder reference is
// touched only when the change flag is set.
func updatePromptQuery(tables *TableNames) string {
	return fmt.Sprintf(`
		WITH p AS (
			UPDATE %s
			SET title = COALESCE($1, title),
			    content = COALESCE($2, content),
			    emoji = COALESCE($3, emoji),
			    folder_id = CASE WHEN $4 THEN $5 ELSE folder_id END,
			    updated_at = $6
			WHERE id = $7
			RETURNING id, title, content, emoji, folder_id, created_at, updated_at
		)
		SELECT %s
		FROM p
		LEFT JOIN %s f ON f.id = p.folder_id
	`, tables.Prompts, promptColumns, tables.Folders)
}

// Delete removes a prompt
func (r *PostgresPromptRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Prompts)

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// buildListPromptsQuery translates a validated filter into parameterized SQL.
// Filter values travel as bind parameters; the ORDER BY clause is assembled
// only from the closed enum mappings below, never from request strings.
func buildListPromptsQuery(tables *TableNames, filter *models.ListPromptsFilter) (string, []interface{}) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		LEFT JOIN %s f ON f.id = p.folder_id
	`, promptColumns, tables.Prompts, tables.Folders)

	var conditions []string
	var args []interface{}

	if filter.FolderID != nil {
		args = append(args, *filter.FolderID)
		conditions = append(conditions, fmt.Sprintf("p.folder_id = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", n, n))
	}

	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ") + "\n"
	}

	query += "ORDER BY " + sortColumn(filter.SortBy) + " " + sortDirection(filter.SortOrder)

	return query, args
}

// sortColumn maps the sort key enum to a column reference
func sortColumn(by models.SortBy) string {
	if by == models.SortByTitle {
		return "p.title"
	}
	return "p.created_at"
}

// sortDirection maps the sort order enum to a SQL keyword
func sortDirection(order models.SortOrder) string {
	if order == models.SortOrderAsc {
		return "ASC"
	}
	return "DESC"
}

// escapeLike escapes LIKE/ILIKE metacharacters so the search term matches
// literally, the way a substring search promises.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// scanPromptWithFolder scans a promptColumns row into prompt, materializing
// the embedded folder when the joined row is present.
func scanPromptWithFolder(row interface{ Scan(dest ...any) error }, prompt *models.Prompt) error {
	var (
		folderID    *string
		folderName  *string
		folderEmoji *string
		folderCr    *time.Time
		folderUp    *time.Time
	)

	err := row.Scan(
		&prompt.ID,
		&prompt.Title,
		&prompt.Content,
		&prompt.Emoji,
		&prompt.FolderID,
		&prompt.CreatedAt,
		&prompt.UpdatedAt,
		&folderID,
		&folderName,
		&folderEmoji,
		&folderCr,
		&folderUp,
	)
	if err != nil {
		return err
	}

	if folderID != nil {
		prompt.Folder = &models.Folder{
			ID:        *folderID,
			Name:      *folderName,
			Emoji:     folderEmoji,
			CreatedAt: *folderCr,
			UpdatedAt: *folderUp,
		}
	} else {
		prompt.Folder = nil
	}

	return nil
}

// derefOr returns *s or the fallback when s is nil
func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
