package docview

import (
	"regexp"
	"strconv"
	"strings"
)

// Front-matter entries are "key: value" lines; keys are limited to word
// characters and hyphens.
var frontMatterLineRe = regexp.MustCompile(`^([\w-]+):\s*(.*)$`)

// ExtractFrontMatter splits an optional leading front-matter block,
// delimited by standalone "---" lines, from content. Two reserved keys are
// coerced: defaultOpen becomes a bool (case-insensitive "true") and sort a
// base-10 int; every other value stays a plain string. The returned content
// has the block removed and surrounding whitespace trimmed.
func ExtractFrontMatter(content string) (Metadata, string) {
	trimmed := strings.TrimSpace(content)
	metadata := Metadata{}

	lines := strings.Split(trimmed, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return metadata, trimmed
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		// Unterminated block: treat the whole input as content.
		return metadata, trimmed
	}

	for _, line := range lines[1:end] {
		m := frontMatterLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key, value := m[1], strings.TrimSpace(m[2])
		switch key {
		case "defaultOpen":
			metadata[key] = strings.EqualFold(value, "true")
		case "sort":
			if n, err := strconv.Atoi(value); err == nil {
				metadata[key] = n
			}
		default:
			metadata[key] = value
		}
	}

	return metadata, strings.TrimSpace(strings.Join(lines[end+1:], "\n"))
}
