package client

import (
	"encoding/json"
	"time"
)

// Folder mirrors the API's folder resource
type Folder struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Emoji       *string   `json:"emoji"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	PromptCount int       `json:"promptCount"`
	Prompts     []Prompt  `json:"prompts,omitempty"`
}

// Prompt mirrors the API's prompt resource
type Prompt struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Emoji     *string   `json:"emoji"`
	FolderID  *string   `json:"folderId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Folder    *Folder   `json:"folder,omitempty"`
}

// CreateFolderRequest is the POST /folders body
type CreateFolderRequest struct {
	Name  string  `json:"name"`
	Emoji *string `json:"emoji,omitempty"`
}

// UpdateFolderRequest is the PUT /folders/{id} body; omitted fields are
// left unchanged
type UpdateFolderRequest struct {
	Name  *string `json:"name,omitempty"`
	Emoji *string `json:"emoji,omitempty"`
}

// CreatePromptRequest is the POST /prompts body
type CreatePromptRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Emoji    *string `json:"emoji,omitempty"`
	FolderID *string `json:"folderId,omitempty"`
}

// UpdatePromptRequest is the PUT /prompts/{id} body. FolderID is tri-state:
// leave it nil to keep the current folder, use ClearFolder to detach, or
// SetFolder to reassign.
type UpdatePromptRequest struct {
	Title    *string     `json:"title,omitempty"`
	Content  *string     `json:"content,omitempty"`
	Emoji    *string     `json:"emoji,omitempty"`
	FolderID *NullString `json:"folderId,omitempty"`
}

// NullString marshals to its value, or to JSON null when Value is nil.
// Wrapping it in a pointer with omitempty gives the full tri-state:
// nil pointer = field omitted, Value nil = explicit null.
type NullString struct {
	Value *string
}

// MarshalJSON implements json.Marshaler
func (n NullString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// SetFolder returns a folderId field that reassigns the prompt to id
func SetFolder(id string) *NullString {
	return &NullString{Value: &id}
}

// ClearFolder returns a folderId field that detaches the prompt
func ClearFolder() *NullString {
	return &NullString{}
}

// ListPromptsQuery holds the optional GET /prompts query parameters.
// Zero values are omitted from the query string.
type ListPromptsQuery struct {
	FolderID  string
	Search    string
	SortBy    string // "title" or "createdAt"
	SortOrder string // "asc" or "desc"
}
