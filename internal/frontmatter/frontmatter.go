// Package frontmatter parses and validates the YAML metadata headers
// that gate rule activation.
package frontmatter

import (
	"bufio"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter marks the start and end of a frontmatter block.
const Delimiter = "---"

// Parse splits a document into its frontmatter mapping and body. The
// header must start on the first line and be closed by a matching
// delimiter. ok is false when no well-formed header is present, in
// which case body is the full input unchanged. A header that is
// present but not valid YAML also reports ok=false: a rule with a
// broken header behaves like a rule with no header at all.
func Parse(content string) (fields map[string]interface{}, body string, ok bool) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() || scanner.Text() != Delimiter {
		return nil, content, false
	}

	var headerLines []string
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		if line == Delimiter {
			closed = true
			break
		}
		headerLines = append(headerLines, line)
	}
	if !closed {
		return nil, content, false
	}

	header := strings.Join(headerLines, "\n")
	fields = make(map[string]interface{})
	if err := yaml.Unmarshal([]byte(header), &fields); err != nil {
		return nil, content, false
	}

	var bodyLines []string
	for scanner.Scan() {
		bodyLines = append(bodyLines, scanner.Text())
	}
	body = strings.Join(bodyLines, "\n")
	body = strings.TrimLeft(body, " \t\n")

	return fields, body, true
}
