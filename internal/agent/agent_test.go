package agent

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apal9569/robodev-agent/internal/llm"
	"github.com/apal9569/robodev-agent/internal/profile"
)

type fakeChat struct {
	reply string
	err   error
	msgs  []llm.Message
	task  string
}

func (c *fakeChat) Chat(ctx context.Context, messages []llm.Message, task string) (string, error) {
	c.msgs = messages
	c.task = task
	return c.reply, c.err
}

func TestBrainstorm(t *testing.T) {
	chat := &fakeChat{reply: "  1) Assumptions...  \n"}
	p := profile.Default()
	a := New(&p, chat)

	out, err := a.Brainstorm(context.Background(), "pick a local planner")
	if err != nil {
		t.Fatalf("Brainstorm: %v", err)
	}
	if out != "1) Assumptions..." {
		t.Errorf("expected trimmed response, got %q", out)
	}
	if chat.task != "brainstorm" {
		t.Errorf("unexpected task: %q", chat.task)
	}
	if len(chat.msgs) != 2 || chat.msgs[0].Role != "system" {
		t.Fatalf("expected system+user turns, got %+v", chat.msgs)
	}
	if !strings.Contains(chat.msgs[0].Content, "Stack: ROS2") {
		t.Errorf("expected profile in system prompt:\n%s", chat.msgs[0].Content)
	}
	if !strings.Contains(chat.msgs[1].Content, "pick a local planner") {
		t.Errorf("expected query in user prompt:\n%s", chat.msgs[1].Content)
	}
}

func TestCodegenWritesArtifacts(t *testing.T) {
	outDir := t.TempDir()
	chat := &fakeChat{reply: "=== SUMMARY ===\nA node.\n\n=== FILES ===\n" +
		"# filename: node.py\n```python\nprint('hi')\n```"}
	p := profile.Default()
	a := New(&p, chat)

	out, err := a.Codegen(context.Background(), "make a node", "python", "none", outDir)
	if err != nil {
		t.Fatalf("Codegen: %v", err)
	}
	if chat.task != "codegen" {
		t.Errorf("unexpected task: %q", chat.task)
	}
	if !strings.Contains(out, "Wrote files:") {
		t.Errorf("expected file listing in output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(outDir, "node.py")); err != nil {
		t.Errorf("expected artifact on disk: %v", err)
	}
}

func TestCodegenNoFiles(t *testing.T) {
	chat := &fakeChat{reply: "I have no files for you."}
	p := profile.Default()
	a := New(&p, chat)

	out, err := a.Codegen(context.Background(), "q", "python", "none", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No files were written.") {
		t.Errorf("expected empty-file notice:\n%s", out)
	}
}

func TestDiagnose(t *testing.T) {
	chat := &fakeChat{reply: "1) Observations\n"}
	p := profile.Default()
	a := New(&p, chat)

	out, err := a.Diagnose(context.Background(), "undefined reference to `main'")
	if err != nil {
		t.Fatal(err)
	}
	if chat.task != "diagnose" {
		t.Errorf("unexpected task: %q", chat.task)
	}
	if out != "1) Observations" {
		t.Errorf("expected trimmed output, got %q", out)
	}
	if !strings.Contains(chat.msgs[1].Content, "undefined reference") {
		t.Errorf("expected log text in prompt:\n%s", chat.msgs[1].Content)
	}
}

func TestBackendErrorPropagates(t *testing.T) {
	chat := &fakeChat{err: errors.New("connection refused")}
	p := profile.Default()
	a := New(&p, chat)

	if _, err := a.Brainstorm(context.Background(), "q"); err == nil {
		t.Fatal("expected backend error to propagate")
	}
}
