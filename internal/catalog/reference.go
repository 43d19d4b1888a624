package catalog

// Static reference data surfaced by the UI collaborators (CLI `fields`
// command, HTTP /api/v1/reference). Documentation, not behavior: the
// validator's schema lives in models.RuleSchema.

// FieldDoc documents one frontmatter field for display.
type FieldDoc struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// ComparisonRow is one aspect of the rules-vs-commands comparison.
type ComparisonRow struct {
	Aspect   string `json:"aspect"`
	Rules    string `json:"rules"`
	Commands string `json:"commands"`
}

// FrontmatterFieldDocs returns display documentation for the rule
// frontmatter fields.
func FrontmatterFieldDocs() []FieldDoc {
	return []FieldDoc{
		{
			Field:       "description",
			Type:        "string",
			Required:    true,
			Description: "A brief summary of what this rule does. Shown in the Cursor UI when browsing rules and used by the AI agent to decide whether to include the rule.",
			Example:     `description: "Coding standards for Python files"`,
		},
		{
			Field:       "globs",
			Type:        "array of strings",
			Required:    false,
			Description: "File patterns that trigger this rule. When a file matching these patterns is open, the rule is automatically included in the AI context.",
			Example:     "globs:\n  - \"**/*.py\"\n  - \"src/**/*.ts\"",
		},
		{
			Field:       "alwaysApply",
			Type:        "boolean",
			Required:    false,
			Description: "If true, this rule is always included in the AI context regardless of which files are open. Keep these minimal to preserve context space.",
			Example:     "alwaysApply: true",
		},
	}
}

// Comparison returns the rules-vs-commands comparison table rows.
func Comparison() []ComparisonRow {
	return []ComparisonRow{
		{"Purpose", "Provide persistent context/guidance", "Execute specific actions on demand"},
		{"Location", ".cursor/rules/", ".cursor/commands/"},
		{"Triggered By", "File patterns (globs) or alwaysApply", "/slash-command in chat"},
		{"Format", "Markdown + YAML frontmatter", "Plain markdown"},
		{"Invocation", "Automatic", "Manual"},
		{"Scope", "Project-wide persistent context", "Single action"},
		{"Use Cases", "Coding standards, architecture docs", "Code reviews, generators"},
	}
}

// QuickTips returns short usage tips for a category: "rules",
// "commands", or "general".
func QuickTips(category string) []string {
	switch category {
	case "rules":
		return []string{
			"Use `alwaysApply: true` for project-wide context that should always be available",
			"Use specific globs like `src/components/**/*.tsx` to target specific file types",
			"Keep rules focused - one rule per concern",
			"Include code examples in rules to guide the AI's style",
		}
	case "commands":
		return []string{
			"Name commands descriptively: `/generate-api-endpoint` not `/gen`",
			"Include clear instructions for what the command should do",
			"Commands are great for repetitive tasks with specific steps",
			"Use commands for actions, rules for context",
		}
	default:
		return []string{
			"Rules = Persistent context, Commands = On-demand actions",
			"Test rules by opening a file that matches your glob pattern",
			"Commands appear in chat when you type `/`",
			"You can have multiple rules active at once based on open files",
		}
	}
}
