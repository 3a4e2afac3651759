package handler

import (
	"log/slog"
	"net/http"

	"promptcloud/internal/domain/models"
	"promptcloud/internal/domain/services"
	"promptcloud/internal/httputil"
)

// PromptHandler handles prompt HTTP requests
type PromptHandler struct {
	promptService services.PromptService
	logger        *slog.Logger
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(promptService services.PromptService, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
		logger:        logger,
	}
}

// ListPrompts lists prompts, optionally filtered and sorted
// GET /prompts?folderId=&search=&sortBy=&sortOrder=
func (h *PromptHandler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := &models.ListPromptsFilter{
		Search:    q.Get("search"),
		SortBy:    models.SortBy(q.Get("sortBy")),
		SortOrder: models.SortOrder(q.Get("sortOrder")),
	}
	if folderID := q.Get("folderId"); folderID != "" {
		filter.FolderID = &folderID
	}

	prompts, err := h.promptService.ListPrompts(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prompts)
}

// CreatePrompt creates a new prompt
// POST /prompts
func (h *PromptHandler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req services.CreatePromptRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prompt, err := h.promptService.CreatePrompt(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, prompt)
}

// GetPrompt retrieves a prompt by ID with its embedded folder
// GET /prompts/{id}
func (h *PromptHandler) GetPrompt(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	prompt, err := h.promptService.GetPrompt(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prompt)
}

// UpdatePrompt updates a prompt; folderId null detaches it from its folder
// PUT /prompts/{id}
func (h *PromptHandler) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req services.UpdatePromptRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prompt, err := h.promptService.UpdatePrompt(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prompt)
}

// DeletePrompt deletes a prompt
// DELETE /prompts/{id}
func (h *PromptHandler) DeletePrompt(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.promptService.DeletePrompt(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
