package api

import "github.com/starford/raido/internal/settings"

// SettingsResponse wraps the active settings record.
type SettingsResponse struct {
	Settings *settings.Settings `json:"settings"`
}

// RegenerateRequest is the request body for a manual regeneration pass.
// An empty folder means the whole vault.
type RegenerateRequest struct {
	Folder string `json:"folder"`
}

// StatusResponse is the generic acknowledgement body.
type StatusResponse struct {
	Status string `json:"status"`
}

// TreeResponse wraps a rendered tree preview.
type TreeResponse struct {
	Folder string `json:"folder"`
	Tree   string `json:"tree"`
}
