package agent

import (
	"fmt"

	"github.com/apal9569/robodev-agent/internal/profile"
)

func systemPrompt(p profile.Profile) string {
	return fmt.Sprintf(`You are RoboDev, a robotics engineering assistant/expert that produces practical engineering outputs.
User context defaults:
- Stack: %s
- Simulator: %s
- Language: %s
- Robot Type: %s
Style: %s

Rules:
- Be specific, robotics-first (control, planning, perception, integration).
- When generating artifacts, output in STRICT sections with filenames.
- Avoid fluff. Provide runnable skeletons and clear TODOs.
`, p.Stack, p.Sim, p.Language, p.RobotType, p.Style)
}

func brainstormPrompt(p profile.Profile, query string) string {
	return fmt.Sprintf(`Task: Brainstorm robotics approaches/solutions

%s

User query: %s

Output format:
1) Assumptions (bullet list)
2) 2-3 approaches/solutions (each with: idea, when to use, pros/cons, pitfalls, tuning knobs)
3) Recommended approach/solution + why
4) Implementation plan (steps, resources, timeline)
`, projectContext(p), query)
}

func codegenPrompt(p profile.Profile, query, lang, xml string) string {
	return fmt.Sprintf(`Task: Generate robotics artifacts

%s

User query: %s

Constraints:
- Language: %s
- XML type: %s

Output MUST follow this exact structure.

=== SUMMARY ===
(What you generated, how to use it, and any important notes)

=== FILES ===
# filename: <relative_path_to_file>
`+"```"+`<language or text>
<file content>
`+"```"+`
`, projectContext(p), query, lang, xml)
}

func diagnosePrompt(logText string) string {
	return fmt.Sprintf(`Task: Diagnose robotics compile/build errors and propose minimal fixes.

Log text: %s

Output format:
1) Observations (bullet list)
2) Potential causes (bullet list)
3) Fix plan (ordered steps)
4) Patch Suggestions (show diffs if applicable)
5) Verification steps (how to confirm the fix works)
`, logText)
}

func projectContext(p profile.Profile) string {
	if p.ProjectRoot == "" {
		return "Project root is not set."
	}
	return fmt.Sprintf("Project root: %s", p.ProjectRoot)
}
