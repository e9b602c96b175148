// Package profile holds the per-user engineering profile that seeds
// every prompt: stack, simulator, robot type, interests, and model
// selection. It is a single JSON document loaded once per invocation
// and passed around as a value.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Profile struct {
	ProjectRoot string            `json:"project_root,omitempty"`
	Model       string            `json:"model"`
	TaskModels  map[string]string `json:"task_models,omitempty"`
	Stack       string            `json:"stack"`
	Sim         string            `json:"sim"`
	Language    string            `json:"language"`
	RobotType   string            `json:"robot_type"`
	Style       string            `json:"style"`
	Interests   string            `json:"interests"`
	DefaultMode string            `json:"default_mode,omitempty"`
	OutDir      string            `json:"out_dir,omitempty"`
}

// Default returns the profile used before the user customizes anything.
func Default() Profile {
	return Profile{
		Model:     "llama3.1",
		Stack:     "ROS2",
		Sim:       "Gazebo",
		Language:  "Python",
		RobotType: "drone",
		Style:     "concise",
		Interests: "motion planning, control, perception, SLAM, manipulation, sim-to-real, simulation",
	}
}

// Load reads the profile at path, returning defaults when the file
// does not exist yet.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, nil
}

func Save(path string, p Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating profile dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ModelFor resolves the model for a task, preferring a per-task
// override over the profile default.
func (p Profile) ModelFor(task string) string {
	if m, ok := p.TaskModels[task]; ok && m != "" {
		return m
	}
	if p.Model != "" {
		return p.Model
	}
	return "llama3.1"
}

// Set updates a field by its config key. Unknown keys are an error so
// typos surface instead of silently vanishing.
func (p *Profile) Set(key, value string) error {
	switch key {
	case "project_root":
		p.ProjectRoot = value
	case "model":
		p.Model = value
	case "stack":
		p.Stack = value
	case "sim":
		p.Sim = value
	case "language":
		p.Language = value
	case "robot_type":
		p.RobotType = value
	case "style":
		p.Style = value
	case "interests":
		p.Interests = value
	case "default_mode":
		p.DefaultMode = value
	case "out_dir":
		p.OutDir = value
	default:
		return fmt.Errorf("unknown profile key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Keys lists the settable profile keys in sorted order.
func Keys() []string {
	keys := []string{
		"project_root", "model", "stack", "sim", "language",
		"robot_type", "style", "interests", "default_mode", "out_dir",
	}
	sort.Strings(keys)
	return keys
}

// Pretty renders the profile for `robodev config --show`.
func (p Profile) Pretty() string {
	lines := []string{"RoboDev config:"}
	add := func(k, v string) {
		if v != "" {
			lines = append(lines, fmt.Sprintf("  %s: %s", k, v))
		}
	}
	add("project_root", p.ProjectRoot)
	add("model", p.Model)
	add("stack", p.Stack)
	add("sim", p.Sim)
	add("language", p.Language)
	add("robot_type", p.RobotType)
	add("style", p.Style)
	add("interests", p.Interests)
	add("default_mode", p.DefaultMode)
	add("out_dir", p.OutDir)
	for task, model := range p.TaskModels {
		add("model."+task, model)
	}
	return strings.Join(lines, "\n")
}
