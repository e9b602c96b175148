// Package project gives the agent a view of the user's workspace.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ignoredDirs = map[string]bool{
	".git":        true,
	"__pycache__": true,
	"build":       true,
	"dist":        true,
	"install":     true,
	"logs":        true,
}

const maxDepth = 5

// Tree renders an indented listing of root, skipping build and VCS
// noise and stopping at a fixed depth.
func Tree(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("reading project root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", root)
	}

	var out []string
	if err := walk(root, 0, &out); err != nil {
		return "", err
	}
	return strings.Join(out, "\n"), nil
}

func walk(dir string, depth int, out *[]string) error {
	if depth > maxDepth {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		if ignoredDirs[e.Name()] {
			continue
		}
		*out = append(*out, strings.Repeat(" ", depth)+e.Name())
		if e.IsDir() {
			if err := walk(filepath.Join(dir, e.Name()), depth+1, out); err != nil {
				return err
			}
		}
	}
	return nil
}
