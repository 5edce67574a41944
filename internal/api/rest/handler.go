package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SaiSriramKurapati/chatBot-backend/internal/service"
)

// Handler manages HTTP request handlers
type Handler struct {
	messageService service.MessageService
	defaultSkip    int
	defaultLimit   int
}

// NewHandler creates a new HTTP handler. The list defaults preserve the
// historical API: skip defaults to 1, limit to 10.
func NewHandler(ms service.MessageService, defaultSkip, defaultLimit int) *Handler {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &Handler{
		messageService: ms,
		defaultSkip:    defaultSkip,
		defaultLimit:   defaultLimit,
	}
}

// SetupRoutes configures API routes
func SetupRoutes(router *mux.Router, h *Handler) {
	router.HandleFunc("/messages/", h.CreateMessage).Methods("POST")
	router.HandleFunc("/messages/", h.ListMessages).Methods("GET")
	router.HandleFunc("/messages/{id:[0-9]+}", h.EditMessage).Methods("PUT")
	router.HandleFunc("/messages/{id:[0-9]+}", h.DeleteMessageFrom).Methods("DELETE")
}

// Helper functions
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
