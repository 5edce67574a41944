package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SaiSriramKurapati/chatBot-backend/internal/pkg/validate"
)

// CreateMessage handles POST /messages/
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "Invalid request body")
		return
	}
	if !validate.Content(req.Content) {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "content must be non-empty and at most 8192 bytes")
		return
	}

	msg, err := h.messageService.Create(r.Context(), req.Content)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, msg)
}

// ListMessages handles GET /messages/
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := h.pagination(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid skip or limit")
		return
	}

	messages, err := h.messageService.List(r.Context(), skip, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}

// EditMessage handles PUT /messages/{id}
func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid message id")
		return
	}

	var req struct {
		NewContent string `json:"new_content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "Invalid request body")
		return
	}
	if !validate.Content(req.NewContent) {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "new_content must be non-empty and at most 8192 bytes")
		return
	}

	msg, err := h.messageService.Edit(r.Context(), id, req.NewContent)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, msg)
}

// DeleteMessageFrom handles DELETE /messages/{id}: the message and every
// later one are removed in one atomic operation.
func (h *Handler) DeleteMessageFrom(w http.ResponseWriter, r *http.Request) {
	id, ok := messageID(r)
	if !ok {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid message id")
		return
	}

	report, err := h.messageService.DeleteFrom(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// pagination reads skip and limit query parameters, applying the handler's
// defaults when absent.
func (h *Handler) pagination(r *http.Request) (skip, limit int, ok bool) {
	skip = h.defaultSkip
	limit = h.defaultLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		skip = v
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		limit = v
	}

	if !validate.Pagination(skip, limit) {
		return 0, 0, false
	}
	return skip, limit, true
}

func messageID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || !validate.MessageID(id) {
		return 0, false
	}
	return id, true
}
