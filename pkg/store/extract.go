package store

import "strings"

// ExtractDescription finds the first non-empty line after the "## Description"
// header. Workflow files are hand-edited freeform markdown, so this is
// best-effort by design: missing or reordered sections yield an empty string,
// never an error.
func ExtractDescription(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "## Description" {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				return ""
			}
			return strings.Trim(trimmed, "_")
		}
		break
	}
	return ""
}
