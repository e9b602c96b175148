// Package shell is the interactive mode: a line-oriented loop that
// dispatches to the agent commands and exposes profile management via
// slash commands.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/apal9569/robodev-agent/internal/agent"
	"github.com/apal9569/robodev-agent/internal/profile"
	"github.com/apal9569/robodev-agent/internal/project"
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#F2C744"})
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"})
)

var modes = map[string]bool{"brainstorm": true, "codegen": true, "diagnose": true}

type Shell struct {
	Agent       *agent.Agent
	Profile     *profile.Profile
	ProfilePath string
	In          io.Reader
	Out         io.Writer
}

// Run reads commands until EOF or /exit.
func (s *Shell) Run(ctx context.Context) error {
	mode := s.Profile.DefaultMode
	if !modes[mode] {
		mode = "brainstorm"
	}

	fmt.Fprintln(s.Out, dimStyle.Render("Type: brainstorm|codegen|diagnose <text> | /mode <name> | /config | /set k=v | /project | /exit"))
	fmt.Fprintln(s.Out, dimStyle.Render("Shortcuts: b <text> | c <text> | d <text>"))

	scanner := bufio.NewScanner(s.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(s.Out, promptStyle.Render(fmt.Sprintf("robodev[%s]> ", mode)))
		if !scanner.Scan() {
			fmt.Fprintln(s.Out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "/exit" || line == "/quit" {
			fmt.Fprintln(s.Out, "Exiting interactive mode.")
			return nil
		}

		if strings.HasPrefix(line, "/") {
			var err error
			mode, err = s.slashCommand(line, mode)
			if err != nil {
				fmt.Fprintln(s.Out, warnStyle.Render(err.Error()))
			}
			continue
		}

		cmd, rest := splitCommand(line, mode)
		s.dispatch(ctx, cmd, rest)
	}
}

func splitCommand(line, mode string) (cmd, rest string) {
	switch {
	case strings.HasPrefix(line, "b "):
		return "brainstorm", line[2:]
	case strings.HasPrefix(line, "c "):
		return "codegen", line[2:]
	case strings.HasPrefix(line, "d "):
		return "diagnose", line[2:]
	}
	parts := strings.SplitN(line, " ", 2)
	if modes[parts[0]] {
		rest = ""
		if len(parts) > 1 {
			rest = parts[1]
		}
		return parts[0], rest
	}
	return mode, line
}

func (s *Shell) slashCommand(line, mode string) (string, error) {
	switch {
	case strings.HasPrefix(line, "/mode"):
		parts := strings.Fields(line)
		if len(parts) != 2 || !modes[parts[1]] {
			return mode, fmt.Errorf("invalid mode. Available modes: brainstorm, codegen, diagnose")
		}
		s.Profile.DefaultMode = parts[1]
		s.saveProfile()
		return parts[1], nil

	case line == "/config":
		fmt.Fprintln(s.Out, s.Profile.Pretty())
		return mode, nil

	case strings.HasPrefix(line, "/set "):
		for _, kv := range strings.Fields(line[len("/set "):]) {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				continue
			}
			if err := s.Profile.Set(key, strings.Trim(value, `"'`)); err != nil {
				return mode, err
			}
		}
		s.saveProfile()
		return mode, nil

	case strings.HasPrefix(line, "/project"):
		return mode, s.projectCommand(line)

	default:
		return mode, fmt.Errorf("unknown command: %s", line)
	}
}

func (s *Shell) projectCommand(line string) error {
	parts := strings.Fields(line)
	switch {
	case len(parts) == 1 || parts[1] == "show":
		if s.Profile.ProjectRoot == "" {
			fmt.Fprintln(s.Out, "Project root is not set.")
		} else {
			fmt.Fprintf(s.Out, "Project root: %s\n", s.Profile.ProjectRoot)
		}
		return nil

	case parts[1] == "set" && len(parts) == 3:
		path, err := filepath.Abs(parts[2])
		if err != nil {
			return err
		}
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("invalid path: %s", path)
		}
		s.Profile.ProjectRoot = path
		s.saveProfile()
		fmt.Fprintf(s.Out, "Project root set to: %s\n", path)
		return nil

	case parts[1] == "tree":
		if s.Profile.ProjectRoot == "" {
			fmt.Fprintln(s.Out, "Project root is not set.")
			return nil
		}
		tree, err := project.Tree(s.Profile.ProjectRoot)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.Out, tree)
		return nil

	default:
		return fmt.Errorf("usage: /project show | /project set <path> | /project tree")
	}
}

func (s *Shell) dispatch(ctx context.Context, cmd, rest string) {
	var (
		out string
		err error
	)
	switch cmd {
	case "brainstorm":
		out, err = s.Agent.Brainstorm(ctx, rest)
	case "codegen":
		outDir := s.Profile.OutDir
		if outDir == "" {
			outDir = "./generated"
		}
		out, err = s.Agent.Codegen(ctx, rest, strings.ToLower(s.Profile.Language), "none", outDir)
	case "diagnose":
		text := rest
		if strings.HasSuffix(rest, ".log") || strings.HasSuffix(rest, ".txt") {
			data, readErr := os.ReadFile(rest)
			if readErr != nil {
				fmt.Fprintln(s.Out, warnStyle.Render(fmt.Sprintf("File not found: %s", rest)))
				return
			}
			text = string(data)
		}
		out, err = s.Agent.Diagnose(ctx, text)
	}
	if err != nil {
		fmt.Fprintln(s.Out, warnStyle.Render(err.Error()))
		return
	}
	fmt.Fprintln(s.Out, out)
}

func (s *Shell) saveProfile() {
	if err := profile.Save(s.ProfilePath, *s.Profile); err != nil {
		fmt.Fprintln(s.Out, warnStyle.Render(fmt.Sprintf("could not save profile: %v", err)))
	}
}
