package models

import "strings"

// Category distinguishes the two kinds of documents in the catalog.
// Rules carry YAML frontmatter that gates their activation; commands
// are plain markdown invoked on demand.
type Category string

const (
	CategoryCommand Category = "command"
	CategoryRule    Category = "rule"
)

// TemplateDocument is a single rule or command held by the catalog.
// Documents are immutable once loaded: every consumer gets the same
// bytes, and substitution happens on copies inside the kit builder.
type TemplateDocument struct {
	// Path is the document's unique identity within the catalog,
	// e.g. "rules/cursor-rules.md".
	Path string `yaml:"path" json:"path"`

	Name        string   `yaml:"name" json:"name"`
	Category    Category `yaml:"category" json:"category"`
	Description string   `yaml:"description" json:"description"`

	// Body is the raw markdown text, frontmatter included for rules.
	Body string `yaml:"-" json:"-"`

	// DefaultSelected marks documents pre-checked in the wizard.
	DefaultSelected bool `yaml:"default_selected" json:"default_selected"`
}

// SlashName returns the command invocation name derived from the file
// name, e.g. "commands/debug.md" -> "debug". Empty for rules.
func (d TemplateDocument) SlashName() string {
	if d.Category != CategoryCommand {
		return ""
	}
	name := d.Path
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.TrimSuffix(name, ".md")
}
