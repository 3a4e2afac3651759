package models

import (
	"fmt"
	"strings"
	"time"
)

// Prompt is a stored prompt text. FolderID is null for unassigned prompts.
type Prompt struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Emoji     *string   `json:"emoji"`
	FolderID  *string   `json:"folderId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Folder is the owning folder embedded on reads, null when unassigned.
	Folder *Folder `json:"folder"`
}

// PromptUpdate is a partial update. Nil pointer fields are left unchanged;
// the repository applies it in a single statement so concurrent updates to
// other fields are never clobbered by a stale full-row write.
type PromptUpdate struct {
	Title   *string
	Content *string
	Emoji   *string

	// Folder carries the tri-state folder assignment.
	Folder FolderChange

	UpdatedAt time.Time
}

// FolderChange expresses what an update does to a prompt's folder reference:
// Set=false leaves it alone, Set=true with a nil Value detaches, Set=true
// with a value reassigns.
type FolderChange struct {
	Set   bool
	Value *string
}

// SortBy selects the prompt list ordering key.
type SortBy string

const (
	SortByTitle     SortBy = "title"
	SortByCreatedAt SortBy = "createdAt"
)

// SortOrder selects the ordering direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

const (
	DefaultSortBy    = SortByCreatedAt
	DefaultSortOrder = SortOrderDesc
)

// ListPromptsFilter configures the prompt list query. It is a closed
// structure: SortBy and SortOrder are validated enums, never raw request
// strings, so the repository can translate them into SQL deterministically.
type ListPromptsFilter struct {
	// FolderID restricts results to prompts with exactly this folder.
	// nil = all folders (including unassigned prompts).
	FolderID *string

	// Search restricts results to prompts whose title or content contains
	// the term, case-insensitively. Blank = no search restriction.
	Search string

	// SortBy and SortOrder combine into a single ordering criterion.
	// No secondary tie-break key is applied.
	SortBy    SortBy
	SortOrder SortOrder
}

// ApplyDefaults normalizes the filter the way the list endpoint promises:
// the search term is trimmed, an unrecognized or absent sort key falls back
// to createdAt, and any direction other than "asc" (case-insensitive)
// falls back to desc.
func (f *ListPromptsFilter) ApplyDefaults() {
	f.Search = strings.TrimSpace(f.Search)

	switch f.SortBy {
	case SortByTitle, SortByCreatedAt:
	default:
		f.SortBy = DefaultSortBy
	}

	if strings.EqualFold(string(f.SortOrder), string(SortOrderAsc)) {
		f.SortOrder = SortOrderAsc
	} else {
		f.SortOrder = DefaultSortOrder
	}
}

// Validate checks that the filter holds only values the repository knows how
// to translate. A filter that went through ApplyDefaults always passes.
func (f *ListPromptsFilter) Validate() error {
	switch f.SortBy {
	case SortByTitle, SortByCreatedAt:
	default:
		return fmt.Errorf("invalid sortBy: %q (supported: title, createdAt)", f.SortBy)
	}

	switch f.SortOrder {
	case SortOrderAsc, SortOrderDesc:
	default:
		return fmt.Errorf("invalid sortOrder: %q (supported: asc, desc)", f.SortOrder)
	}

	return nil
}
