package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/labchat/chat-server-go/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// POST /api/user
// Registers a user. Field presence is the client's job; the server inserts
// whatever arrives and answers an empty object on success.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("failed to decode register request")
		writeError(w, err)
		return
	}

	if err := h.userService.Register(r.Context(), req.Username, req.Password); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to register user")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{})
}
