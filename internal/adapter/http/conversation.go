package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adpilot/internal/core/port"
)

func (h *Handler) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.svc.CreateConversation(r.Context())
	if err != nil {
		h.logger.Error("create conversation error", slog.Any("error", err))
		writeProblem(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	writeJSON(w, http.StatusCreated, conv)
}

func (h *Handler) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	id, ok := conversationID(w, r)
	if !ok {
		return
	}
	conv, err := h.svc.Conversation(r.Context(), id)
	if err != nil {
		h.conversationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

// handleSendMessage runs one chat turn. The reply is returned even when it
// carries no specification; the extraction outcome tells the caller what
// was found.
func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := conversationID(w, r)
	if !ok {
		return
	}
	var req sendMessageRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	resp, err := h.svc.Chat(r.Context(), port.ChatRequest{ConversationID: id, Message: req.Message})
	if err != nil {
		h.conversationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newChatResponse(resp))
}

func (h *Handler) conversationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrConversationNotFound):
		writeProblem(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, port.ErrEmptyMessage):
		writeProblem(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, port.ErrModelUnavailable):
		h.logger.Error("chat error", slog.Any("error", err))
		writeProblem(w, http.StatusBadGateway, "the model could not produce a reply", nil)
	default:
		h.logger.Error("conversation error", slog.Any("error", err))
		writeProblem(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func conversationID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid conversation id", nil)
		return uuid.Nil, false
	}
	return id, true
}
