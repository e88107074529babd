package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/starford/raido/internal/apperr"
	"github.com/starford/raido/internal/settings"
)

// Handler holds API route handlers.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SettingsResponse{Settings: h.svc.Settings()})
}

// UpdateSettings handles PUT /api/settings. Missing fields fall back to
// their defaults; individually invalid fields are reverted, not rejected.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	next := settings.Default()
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	applied, err := h.svc.UpdateSettings(next)
	if err != nil {
		slog.Error("update settings failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, SettingsResponse{Settings: applied})
}

// Regenerate handles POST /api/regenerate.
func (h *Handler) Regenerate(w http.ResponseWriter, r *http.Request) {
	var req RegenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	if err := h.svc.Regenerate(req.Folder); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("regenerate failed", slog.String("folder", req.Folder), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Tree handles GET /api/tree?folder=X.
func (h *Handler) Tree(w http.ResponseWriter, r *http.Request) {
	folder := r.URL.Query().Get("folder")
	if folder == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("folder is required"))
		return
	}

	tree, err := h.svc.Preview(folder)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("tree preview failed", slog.String("folder", folder), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, TreeResponse{Folder: folder, Tree: tree})
}
