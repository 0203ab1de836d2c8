package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/utils"
	"github.com/MKhiriev/trade-journal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUserRequestBytes caps the body of a user creation request.
const maxUserRequestBytes = 1 << 20

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.UserRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUserRequestBytes)).Decode(&request); err != nil {
		request.Password.Wipe()
		log.Err(err).Str("func", "*Handler.createUser").Msg("failed to decode user request")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("failed to write response")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidUserID, err))
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
