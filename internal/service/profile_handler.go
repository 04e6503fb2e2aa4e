package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage"
)

// ProfilePath is where ProfileHandler is mounted.
const ProfilePath = "/api/auth/user"

type profileRequest struct {
	UID string `json:"uid"`
}

type profileResponse struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ProfileHandler looks up a staff profile by account ID. It answers
// POST {"uid": "..."} with the profile's name, email and role.
type ProfileHandler struct {
	users storage.UserStore
}

// NewProfileHandler creates a ProfileHandler backed by the given user store.
func NewProfileHandler(users storage.UserStore) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "uid is required"})
		return
	}

	user, err := h.users.GetUserByID(r.Context(), req.UID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "user profile not found"})
		return
	}
	if err != nil {
		slog.Error("Profile lookup failed", "uid", req.UID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load user profile"})
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}
