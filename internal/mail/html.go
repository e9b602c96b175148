package mail

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)
	linkRe = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)
)

// RenderHTML converts the digest markdown into simple HTML for the
// mail body. It is a deliberately minimal line-oriented transform,
// not a markdown engine: headings, blockquotes, bold, and links are
// all it knows.
func RenderHTML(md string) string {
	var out []string
	for _, line := range strings.Split(md, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			line = fmt.Sprintf("<h1>%s</h1>", line[2:])
		case strings.HasPrefix(line, "## "):
			line = fmt.Sprintf("<h2>%s</h2>", line[3:])
		case strings.HasPrefix(line, "> "):
			line = fmt.Sprintf("<blockquote>%s</blockquote>", line[2:])
		default:
			line = boldRe.ReplaceAllString(line, "<strong>$1</strong>")
			line = linkRe.ReplaceAllString(line, `<a href="$2">$1</a>`)
			if strings.TrimSpace(line) != "" {
				line = fmt.Sprintf("<p>%s</p>", line)
			} else {
				line = "<br>"
			}
		}
		out = append(out, line)
	}
	return fmt.Sprintf(`<html><body style="font-family: sans-serif; max-width: 700px; margin: auto; padding: 20px;">
%s
</body></html>`, strings.Join(out, ""))
}
