package handler

import "net/http"

// Routes builds the HTTP router (Go 1.22+ enhanced patterns)
func Routes(folders *FolderHandler, prompts *PromptHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", HealthCheck)

	// Folder routes
	mux.HandleFunc("GET /folders", folders.ListFolders)
	mux.HandleFunc("POST /folders", folders.CreateFolder)
	mux.HandleFunc("GET /folders/{id}", folders.GetFolder)
	mux.HandleFunc("PUT /folders/{id}", folders.UpdateFolder)
	mux.HandleFunc("DELETE /folders/{id}", folders.DeleteFolder)

	// Prompt routes
	mux.HandleFunc("GET /prompts", prompts.ListPrompts)
	mux.HandleFunc("POST /prompts", prompts.CreatePrompt)
	mux.HandleFunc("GET /prompts/{id}", prompts.GetPrompt)
	mux.HandleFunc("PUT /prompts/{id}", prompts.UpdatePrompt)
	mux.HandleFunc("DELETE /prompts/{id}", prompts.DeletePrompt)

	return mux
}
