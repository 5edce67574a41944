package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/SaiSriramKurapati/chatBot-backend/internal/models"
	"github.com/SaiSriramKurapati/chatBot-backend/internal/service"
)

// stubMessageService returns canned results and records call parameters.
type stubMessageService struct {
	createErr error
	editErr   error
	deleteErr error
	listSkip  int
	listLimit int
	messages  []*models.Message
}

func (s *stubMessageService) Create(_ context.Context, content string) (*models.Message, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Message{ID: 1, Content: content, Response: "Hi there"}, nil
}

func (s *stubMessageService) List(_ context.Context, skip, limit int) ([]*models.Message, error) {
	s.listSkip, s.listLimit = skip, limit
	return s.messages, nil
}

func (s *stubMessageService) Edit(_ context.Context, id int64, newContent string) (*models.Message, error) {
	if s.editErr != nil {
		return nil, s.editErr
	}
	return &models.Message{ID: id, Content: newContent, Response: "regenerated"}, nil
}

func (s *stubMessageService) DeleteFrom(_ context.Context, id int64) (*models.DeleteReport, error) {
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	return &models.DeleteReport{DeletedCount: 3, FromID: id}, nil
}

func setupRouter(svc service.MessageService) *mux.Router {
	router := mux.NewRouter()
	SetupRoutes(router, NewHandler(svc, 1, 10))
	return router
}

func TestCreateMessage(t *testing.T) {
	router := setupRouter(&stubMessageService{})

	body := bytes.NewBufferString(`{"content":"Hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/messages/", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var msg models.Message
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if msg.ID != 1 || msg.Content != "Hello" || msg.Response != "Hi there" {
		t.Errorf("Unexpected message: %+v", msg)
	}
}

func TestCreateMessage_InvalidBody(t *testing.T) {
	router := setupRouter(&stubMessageService{})

	req := httptest.NewRequest(http.MethodPost, "/messages/", bytes.NewBufferString(`not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateMessage_BlankContent(t *testing.T) {
	router := setupRouter(&stubMessageService{})

	req := httptest.NewRequest(http.MethodPost, "/messages/", bytes.NewBufferString(`{"content":"   "}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateMessage_GenerationFailure(t *testing.T) {
	router := setupRouter(&stubMessageService{createErr: service.ErrGeneration})

	req := httptest.NewRequest(http.MethodPost, "/messages/", bytes.NewBufferString(`{"content":"Hello"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", rec.Code)
	}

	var apiErr APIError
	if err := json.NewDecoder(rec.Body).Decode(&apiErr); err != nil {
		t.Fatalf("Failed to decode error: %v", err)
	}
	if apiErr.Code != ErrCodeGenerationFailed {
		t.Errorf("Expected code %s, got %s", ErrCodeGenerationFailed, apiErr.Code)
	}
}

func TestListMessages_Defaults(t *testing.T) {
	stub := &stubMessageService{messages: []*models.Message{}}
	router := setupRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/messages/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	// Historical defaults: skip=1, limit=10.
	if stub.listSkip != 1 || stub.listLimit != 10 {
		t.Errorf("Expected defaults skip=1 limit=10, got skip=%d limit=%d", stub.listSkip, stub.listLimit)
	}

	var messages []models.Message
	if err := json.NewDecoder(rec.Body).Decode(&messages); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("Expected empty list, got %d", len(messages))
	}
}

func TestListMessages_ExplicitParams(t *testing.T) {
	stub := &stubMessageService{}
	router := setupRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/messages/?skip=0&limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if stub.listSkip != 0 || stub.listLimit != 5 {
		t.Errorf("Expected skip=0 limit=5, got skip=%d limit=%d", stub.listSkip, stub.listLimit)
	}
}

func TestListMessages_InvalidParams(t *testing.T) {
	router := setupRouter(&stubMessageService{})

	for _, query := range []string{"?skip=-1", "?limit=0", "?limit=9999", "?skip=abc"} {
		req := httptest.NewRequest(http.MethodGet, "/messages/"+query, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Query %q: expected status 400, got %d", query, rec.Code)
		}
	}
}

func TestEditMessage(t *testing.T) {
	router := setupRouter(&stubMessageService{})

	body := bytes.NewBufferString(`{"new_content":"new text"}`)
	req := httptest.NewRequest(http.MethodPut, "/messages/2", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var msg models.Message
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if msg.ID != 2 || msg.Content != "new text" || msg.Response != "regenerated" {
		t.Errorf("Unexpected message: %+v", msg)
	}
}

func TestEditMessage_NotFound(t *testing.T) {
	router := setupRouter(&stubMessageService{editErr: service.ErrNotFound})

	body := bytes.NewBufferString(`{"new_content":"new text"}`)
	req := httptest.NewRequest(http.MethodPut, "/messages/42", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}

	var apiErr APIError
	if err := json.NewDecoder(rec.Body).Decode(&apiErr); err != nil {
		t.Fatalf("Failed to decode error: %v", err)
	}
	if apiErr.Code != ErrCodeNotFound {
		t.Errorf("Expected code %s, got %s", ErrCodeNotFound, apiErr.Code)
	}
}

func TestDeleteMessageFrom(t *testing.T) {
	router := setupRouter(&stubMessageService{})

	req := httptest.NewRequest(http.MethodDelete, "/messages/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var report models.DeleteReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if report.DeletedCount != 3 || report.FromID != 3 {
		t.Errorf("Unexpected report: %+v", report)
	}
}

func TestDeleteMessageFrom_NotFound(t *testing.T) {
	router := setupRouter(&stubMessageService{deleteErr: service.ErrNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/messages/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
}

func TestMessageRoutes_NonNumericID(t *testing.T) {
	router := setupRouter(&stubMessageService{})

	req := httptest.NewRequest(http.MethodDelete, "/messages/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// The route pattern only matches numeric ids.
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404 for non-numeric id, got %d", rec.Code)
	}
}
