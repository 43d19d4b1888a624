package frontmatter

import (
	"strings"
	"testing"

	"github.com/youssefhossamm/cursor-kickstart/internal/models"
	"github.com/youssefhossamm/cursor-kickstart/internal/tokens"
)

func newTestValidator() *Validator {
	return NewValidator(tokens.NewEstimator(4, 1000))
}

func ruleDoc(body string) models.TemplateDocument {
	return models.TemplateDocument{
		Path:     "rules/test-rule.md",
		Name:     "Test Rule",
		Category: models.CategoryRule,
		Body:     body,
	}
}

func TestValidateWellFormedRule(t *testing.T) {
	doc := ruleDoc(`---
description: "A test rule"
globs:
  - "**/*.go"
alwaysApply: true
---

# Test Rule

Guidance here.`)

	result := newTestValidator().Validate(doc)
	if !result.Valid {
		t.Fatalf("expected valid, got issues: %v", result.Issues)
	}
	if len(result.BlockingIssues()) != 0 {
		t.Errorf("blocking issues = %v, want none", result.BlockingIssues())
	}
	if result.TokenEstimate == 0 {
		t.Error("token estimate should be non-zero")
	}
}

func TestValidateMissingRequiredField(t *testing.T) {
	doc := ruleDoc(`---
globs: []
alwaysApply: true
---
body`)

	result := newTestValidator().Validate(doc)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	blocking := result.BlockingIssues()
	if len(blocking) != 1 {
		t.Fatalf("blocking issues = %v, want exactly one", blocking)
	}
	if blocking[0].Message != "missing field: description" {
		t.Errorf("message = %q", blocking[0].Message)
	}
}

func TestValidateTypeMismatch(t *testing.T) {
	// globs given as a plain string instead of an array.
	doc := ruleDoc(`---
description: "A rule"
globs: "**/*.go"
---
body`)

	result := newTestValidator().Validate(doc)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	blocking := result.BlockingIssues()
	if len(blocking) != 1 || blocking[0].Message != "type mismatch: globs" {
		t.Errorf("blocking issues = %v, want [type mismatch: globs]", blocking)
	}
}

func TestValidateBooleanTypeMismatch(t *testing.T) {
	doc := ruleDoc(`---
description: "A rule"
alwaysApply: "yes please"
---
body`)

	result := newTestValidator().Validate(doc)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Message == "type mismatch: alwaysApply" && issue.Blocking {
			found = true
		}
	}
	if !found {
		t.Errorf("issues = %v, want type mismatch: alwaysApply", result.Issues)
	}
}

func TestValidateUnknownFieldWarns(t *testing.T) {
	doc := ruleDoc(`---
description: "A rule"
priority: high
---
body`)

	result := newTestValidator().Validate(doc)
	if !result.Valid {
		t.Fatalf("unknown field must not block validity, issues: %v", result.Issues)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("issues = %v, want exactly one warning", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Blocking || issue.Message != "unknown field: priority" {
		t.Errorf("issue = %+v", issue)
	}
}

func TestValidateNoFrontmatter(t *testing.T) {
	doc := ruleDoc("# Just markdown\n\nNo header at all.")

	result := newTestValidator().Validate(doc)
	if result.Valid {
		t.Fatal("rule without frontmatter must be invalid")
	}
	if len(result.Issues) != 1 || result.Issues[0].Message != "no frontmatter found" {
		t.Errorf("issues = %v", result.Issues)
	}
}

func TestValidateCommandSkipsSchema(t *testing.T) {
	doc := models.TemplateDocument{
		Path:     "commands/debug.md",
		Name:     "Debug Assistant",
		Category: models.CategoryCommand,
		Body:     "# Debug\n\nPlain markdown, no header.",
	}

	result := newTestValidator().Validate(doc)
	if !result.Valid {
		t.Fatalf("command must validate trivially, issues: %v", result.Issues)
	}
	if len(result.Issues) != 0 {
		t.Errorf("issues = %v, want none", result.Issues)
	}
}

func TestValidateOversized(t *testing.T) {
	v := NewValidator(tokens.NewEstimator(4, 10))
	body := "---\ndescription: \"big\"\n---\n" + strings.Repeat("word ", 100)
	result := v.Validate(ruleDoc(body))
	if !result.Oversized {
		t.Error("expected oversized flag")
	}
	if !result.Valid {
		t.Error("oversized must stay advisory, not affect validity")
	}
}

func TestValidateCollectsAllIssues(t *testing.T) {
	// Missing description, mistyped globs, unknown extra field: all
	// three reported in one pass.
	doc := ruleDoc(`---
globs: 42
extra: true
---
body`)

	result := newTestValidator().Validate(doc)
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	var messages []string
	for _, issue := range result.Issues {
		messages = append(messages, issue.Message)
	}
	want := []string{"missing field: description", "type mismatch: globs", "unknown field: extra"}
	if len(messages) != len(want) {
		t.Fatalf("messages = %v, want %v", messages, want)
	}
	for i := range want {
		if messages[i] != want[i] {
			t.Errorf("messages[%d] = %q, want %q", i, messages[i], want[i])
		}
	}
}
