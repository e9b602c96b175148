// Package artifacts extracts generated files from a codegen response.
// The backend is instructed to emit file blocks as:
//
//	# filename: <relative_path>
//	```lang
//	<content>
//	```
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var fileBlockRe = regexp.MustCompile("(?s)# filename:[ \t]*([^\n]+)\n```[^\n]*\n(.*?)\n```")

// Write parses file blocks out of text and writes each under outDir,
// creating parent directories as needed. Returns the written paths.
func Write(text, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	var written []string
	for _, m := range fileBlockRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		content := m[2]

		// Keep generated files inside outDir
		if filepath.IsAbs(name) || strings.Contains(name, "..") {
			continue
		}

		path := filepath.Join(outDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("creating dir for %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
