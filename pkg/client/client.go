// Package client is a typed Go client for the prompt-library API, one method
// per endpoint. Non-2xx responses surface as *APIError carrying the
// server-supplied message, or a generic HTTP-status message when the body is
// not parseable JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client calls the prompt-library API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8080")
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is the uniform error for non-2xx responses
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ListFolders retrieves all folders with their prompt counts
func (c *Client) ListFolders(ctx context.Context) ([]Folder, error) {
	var folders []Folder
	if err := c.do(ctx, http.MethodGet, "/folders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// CreateFolder creates a new folder
func (c *Client) CreateFolder(ctx context.Context, req *CreateFolderRequest) (*Folder, error) {
	var folder Folder
	if err := c.do(ctx, http.MethodPost, "/folders", req, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetFolder retrieves a folder by ID including its prompts
func (c *Client) GetFolder(ctx context.Context, id string) (*Folder, error) {
	var folder Folder
	if err := c.do(ctx, http.MethodGet, "/folders/"+url.PathEscape(id), nil, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// UpdateFolder applies a partial update to a folder
func (c *Client) UpdateFolder(ctx context.Context, id string, req *UpdateFolderRequest) (*Folder, error) {
	var folder Folder
	if err := c.do(ctx, http.MethodPut, "/folders/"+url.PathEscape(id), req, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder removes a folder and, by cascade, its prompts
func (c *Client) DeleteFolder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/folders/"+url.PathEscape(id), nil, nil)
}

// ListPrompts retrieves prompts matching the query
func (c *Client) ListPrompts(ctx context.Context, query *ListPromptsQuery) ([]Prompt, error) {
	endpoint := "/prompts"
	if qs := buildPromptsQuery(query); qs != "" {
		endpoint += "?" + qs
	}

	var prompts []Prompt
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &prompts); err != nil {
		return nil, err
	}
	return prompts, nil
}

// CreatePrompt creates a new prompt
func (c *Client) CreatePrompt(ctx context.Context, req *CreatePromptRequest) (*Prompt, error) {
	var prompt Prompt
	if err := c.do(ctx, http.MethodPost, "/prompts", req, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// GetPrompt retrieves a prompt by ID with its embedded folder
func (c *Client) GetPrompt(ctx context.Context, id string) (*Prompt, error) {
	var prompt Prompt
	if err := c.do(ctx, http.MethodGet, "/prompts/"+url.PathEscape(id), nil, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// UpdatePrompt applies a partial update to a prompt
func (c *Client) UpdatePrompt(ctx context.Context, id string, req *UpdatePromptRequest) (*Prompt, error) {
	var prompt Prompt
	if err := c.do(ctx, http.MethodPut, "/prompts/"+url.PathEscape(id), req, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// DeletePrompt removes a prompt
func (c *Client) DeletePrompt(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/prompts/"+url.PathEscape(id), nil, nil)
}

// buildPromptsQuery encodes the non-zero query fields, trimming is left to
// the server which treats blank search terms as absent
func buildPromptsQuery(query *ListPromptsQuery) string {
	if query == nil {
		return ""
	}

	params := url.Values{}
	if query.FolderID != "" {
		params.Set("folderId", query.FolderID)
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.SortBy != "" {
		params.Set("sortBy", query.SortBy)
		if query.SortOrder != "" {
			params.Set("sortOrder", query.SortOrder)
		}
	}
	return params.Encode()
}

// do issues one request and decodes the response into out (nil for 204s)
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// errorFromResponse extracts the server message, falling back to a generic
// status message when the body is not the expected JSON shape
func (c *Client) errorFromResponse(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	}

	return apiErr
}
