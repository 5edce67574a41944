package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Unexpected Authorization header: %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("Unexpected model: %s", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Content != "Hello" {
			t.Errorf("Unexpected messages: %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  Hi there \n"}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-model", "test-key", 5*time.Second)
	got, err := client.Generate(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "Hi there" {
		t.Errorf("Expected trimmed response 'Hi there', got %q", got)
	}
}

func TestGenerate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-model", "", 5*time.Second)
	_, err := client.Generate(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Expected error for upstream 503")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("Expected status in error, got %v", err)
	}
}

func TestGenerate_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-model", "", 5*time.Second)
	_, err := client.Generate(context.Background(), "Hello")
	if err == nil {
		t.Fatal("Expected error for empty choices")
	}
}

func TestGenerate_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	client := NewClient(srv.URL, "test-model", "", time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, "Hello")
	if err == nil {
		t.Fatal("Expected error when context deadline passes")
	}
}
