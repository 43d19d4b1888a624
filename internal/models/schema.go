package models

// FieldType enumerates the value types a frontmatter field may take.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldArray   FieldType = "array"
	FieldBoolean FieldType = "boolean"
)

// FieldSpec describes one frontmatter field: its expected type, whether
// a document must carry it, and an optional closed set of values.
type FieldSpec struct {
	Type     FieldType `yaml:"type" json:"type"`
	Required bool      `yaml:"required" json:"required"`
	Allowed  []string  `yaml:"allowed,omitempty" json:"allowed,omitempty"`
}

// FrontmatterSchema maps field names to their specs. One schema exists
// per document category; commands carry no frontmatter contract, so
// their schema is nil.
type FrontmatterSchema map[string]FieldSpec

// RuleSchema returns the schema for rule documents. description is the
// only required field: Cursor's agent-decision activation mode depends
// on it. globs and alwaysApply gate activation but may be omitted.
func RuleSchema() FrontmatterSchema {
	return FrontmatterSchema{
		"description": {Type: FieldString, Required: true},
		"globs":       {Type: FieldArray},
		"alwaysApply": {Type: FieldBoolean},
	}
}
