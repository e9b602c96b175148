// Package agent implements the conversational commands: brainstorm,
// codegen, and diagnose. Each is a single request/response exchange
// with the generation backend, seeded by the user's profile.
package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apal9569/robodev-agent/internal/artifacts"
	"github.com/apal9569/robodev-agent/internal/llm"
	"github.com/apal9569/robodev-agent/internal/profile"
)

const requestTimeout = 2 * time.Minute

// ChatClient is the slice of the backend client the agent needs.
type ChatClient interface {
	Chat(ctx context.Context, messages []llm.Message, task string) (string, error)
}

type Agent struct {
	// Profile is shared with the shell so /set edits take effect on
	// the next request.
	Profile *profile.Profile
	Client  ChatClient
}

func New(p *profile.Profile, c ChatClient) *Agent {
	return &Agent{Profile: p, Client: c}
}

func (a *Agent) Brainstorm(ctx context.Context, query string) (string, error) {
	resp, err := a.chat(ctx, brainstormPrompt(*a.Profile, query), "brainstorm")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp), nil
}

// Codegen asks for artifacts and writes any returned file blocks under
// outDir. The rendered result lists what was written.
func (a *Agent) Codegen(ctx context.Context, query, lang, xml, outDir string) (string, error) {
	resp, err := a.chat(ctx, codegenPrompt(*a.Profile, query, lang, xml), "codegen")
	if err != nil {
		return "", err
	}
	files, err := artifacts.Write(resp, outDir)
	if err != nil {
		return "", fmt.Errorf("writing artifacts: %w", err)
	}
	return renderCodegen(resp, files), nil
}

func (a *Agent) Diagnose(ctx context.Context, logText string) (string, error) {
	resp, err := a.chat(ctx, diagnosePrompt(logText), "diagnose")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp), nil
}

func (a *Agent) chat(ctx context.Context, prompt, task string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return a.Client.Chat(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt(*a.Profile)},
		{Role: "user", Content: prompt},
	}, task)
}

func renderCodegen(text string, files []string) string {
	lines := []string{strings.TrimSpace(text), ""}
	if len(files) > 0 {
		lines = append(lines, "Wrote files:")
		for _, f := range files {
			lines = append(lines, " - "+f)
		}
	} else {
		lines = append(lines, "No files were written.")
	}
	return strings.Join(lines, "\n")
}
