package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/labchat/chat-server-go/internal/model"
	"github.com/labchat/chat-server-go/internal/service"
)

// SessionIDHeader carries the session prefix on history requests.
const SessionIDHeader = "idsession"

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// POST /api/chat
// One chat turn: question in, gateway answer out, one interaction row.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question  string `json:"question"`
		IDSession string `json:"idSession"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("failed to decode chat request")
		writeError(w, err)
		return
	}

	answer, err := h.chatService.Ask(r.Context(), req.IDSession, req.Question)
	if err != nil {
		log.Error().Err(err).Str("sessionId", req.IDSession).Msg("chat turn failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]json.RawMessage{"answer": answer})
}

// GET /api/history
// Returns the flattened conversation for the session prefix in the
// idsession header. An unknown or empty prefix just yields what it
// matches; there is no session registry to check against.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionPrefix := r.Header.Get(SessionIDHeader)

	messages, err := h.chatService.History(r.Context(), sessionPrefix)
	if err != nil {
		log.Error().Err(err).Str("sessionPrefix", sessionPrefix).Msg("failed to fetch history")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]model.ChatMessage{"history": messages})
}
