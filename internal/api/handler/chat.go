package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gearhub/gearhub/internal/api/apierr"
	"github.com/gearhub/gearhub/internal/api/middleware"
	"github.com/gearhub/gearhub/internal/api/request"
	"github.com/gearhub/gearhub/internal/api/response"
	"github.com/gearhub/gearhub/internal/services/chat"
)

// ChatHandler handles the shared chat endpoints
type ChatHandler struct {
	chatService *chat.Service
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *chat.Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Send handles POST /api/v1/chat
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	actor := middleware.MustGetProfile(r.Context())
	msg, err := h.chatService.Send(r.Context(), actor, req.Text)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ChatMessageFromModel(msg))
}

// Recent handles GET /api/v1/chat?limit=N
func (h *ChatHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be an integer"))
			return
		}
		limit = parsed
	}

	msgs, err := h.chatService.Recent(r.Context(), limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.ChatMessage, len(msgs))
	for i, m := range msgs {
		out[i] = response.ChatMessageFromModel(m)
	}
	response.JSON(w, http.StatusOK, out)
}
