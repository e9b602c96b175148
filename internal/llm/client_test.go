package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChat(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]string{"role": "assistant", "content": "hello there"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "llama3.1", map[string]string{"digest": "qwen2.5:14b"})

	out, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, "digest")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if out != "hello there" {
		t.Errorf("unexpected reply: %q", out)
	}
	if gotReq.Model != "qwen2.5:14b" {
		t.Errorf("expected per-task model override, got %q", gotReq.Model)
	}
	if gotReq.Stream {
		t.Error("expected stream disabled")
	}
	if gotReq.Options.Temperature != 0.3 {
		t.Errorf("unexpected temperature: %v", gotReq.Options.Temperature)
	}
}

func TestChatDefaultModel(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]string{"content": "ok"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "llama3.1", map[string]string{"digest": "qwen2.5:14b"})
	if _, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, "brainstorm"); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if gotReq.Model != "llama3.1" {
		t.Errorf("expected profile default model, got %q", gotReq.Model)
	}
}

func TestChatBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "llama3.1", nil)
	if _, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, "digest"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestChatUnreachable(t *testing.T) {
	// Closed server: connection refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "llama3.1", nil)
	if _, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, "digest"); err == nil {
		t.Fatal("expected error for unreachable backend")
	}
}
