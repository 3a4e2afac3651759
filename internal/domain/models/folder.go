package models

import (
	"time"
)

// Folder groups prompts. Emoji is a display glyph and may be null.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     *string   `json:"emoji"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// PromptCount is computed on read, never stored.
	PromptCount int `json:"promptCount"`

	// Prompts is populated only when fetching a single folder.
	Prompts []Prompt `json:"prompts,omitempty"`
}

// FolderUpdate is a partial update; nil fields are left unchanged. Applied by
// the repository in a single statement.
type FolderUpdate struct {
	Name  *string
	Emoji *string

	UpdatedAt time.Time
}
