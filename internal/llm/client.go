// Package llm talks to the local text-generation backend over its
// chat endpoint. Model selection is per task: a profile-wide default
// with optional per-task overrides.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultHost = "http://localhost:11434"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client struct {
	host       string
	model      string
	taskModels map[string]string
	client     *http.Client
}

// New builds a client for the backend at host. Deadlines come from the
// caller's context; generation can legitimately take minutes.
func New(host, model string, taskModels map[string]string) *Client {
	if host == "" {
		host = defaultHost
	}
	return &Client{
		host:       strings.TrimRight(host, "/"),
		model:      model,
		taskModels: taskModels,
		client:     &http.Client{},
	}
}

type chatRequest struct {
	Model    string      `json:"model"`
	Messages []Message   `json:"messages"`
	Stream   bool        `json:"stream"`
	Options  chatOptions `json:"options"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Chat sends the conversation and returns the assistant's reply text.
func (c *Client) Chat(ctx context.Context, messages []Message, task string) (string, error) {
	body, _ := json.Marshal(chatRequest{
		Model:    c.modelFor(task),
		Messages: messages,
		Stream:   false,
		Options:  chatOptions{Temperature: 0.3},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("backend call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("backend returned %d: %s", resp.StatusCode, string(b))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decoding backend response: %w", err)
	}
	if cr.Message.Content == "" {
		return "", fmt.Errorf("empty backend response")
	}
	return cr.Message.Content, nil
}

func (c *Client) modelFor(task string) string {
	if m, ok := c.taskModels[task]; ok && m != "" {
		return m
	}
	if c.model != "" {
		return c.model
	}
	return "llama3.1"
}
