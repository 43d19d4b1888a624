package kit

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/youssefhossamm/cursor-kickstart/internal/errors"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func TestGenerateTemplateFallback(t *testing.T) {
	g := NewStructureGenerator(nil)

	out, err := g.Generate(context.Background(), StructureInput{
		ProjectName: "Acme",
		Overview:    "An inventory service.",
		TechStack:   []string{"Go", "PostgreSQL"},
		Directories: []string{"cmd/acme", "internal/store"},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, want := range []string{
		"alwaysApply: true",
		"globs: []",
		"# Project Structure: Acme",
		"An inventory service.",
		"- **Go**",
		"- **PostgreSQL**",
		"Acme/",
		"internal",
		"store",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.HasPrefix(out, "---\n") {
		t.Error("output must start with a frontmatter header")
	}
}

func TestGenerateTemplateDefaults(t *testing.T) {
	g := NewStructureGenerator(nil)

	out, err := g.Generate(context.Background(), StructureInput{ProjectName: "Bare"})
	if err != nil {
		t.Fatal(err)
	}
	// No directories given: the default skeleton appears.
	for _, want := range []string{"src", "tests", "docs", ".cursor"} {
		if !strings.Contains(out, want) {
			t.Errorf("default tree missing %q", want)
		}
	}
	if !strings.Contains(out, "Describe your architecture here.") {
		t.Error("architecture placeholder missing")
	}
}

func TestGenerateRequiresProjectName(t *testing.T) {
	g := NewStructureGenerator(nil)
	_, err := g.Generate(context.Background(), StructureInput{ProjectName: "  "})
	if err == nil {
		t.Fatal("expected error for blank project name")
	}
	if apperrors.GetAppError(err).Code != apperrors.ErrCodeInvalidInput {
		t.Errorf("code = %s", apperrors.GetAppError(err).Code)
	}
}

func TestGenerateWithCollaborator(t *testing.T) {
	g := NewStructureGenerator(&stubGenerator{text: "generated document"})

	out, err := g.Generate(context.Background(), StructureInput{ProjectName: "Acme"})
	if err != nil {
		t.Fatal(err)
	}
	if out != "generated document" {
		t.Errorf("out = %q", out)
	}
}

func TestGenerateCollaboratorFailure(t *testing.T) {
	g := NewStructureGenerator(&stubGenerator{err: errors.New("quota exceeded")})

	_, err := g.Generate(context.Background(), StructureInput{ProjectName: "Acme"})
	if err == nil {
		t.Fatal("expected error from failing collaborator")
	}
	appErr := apperrors.GetAppError(err)
	if appErr.Code != apperrors.ErrCodeGenerationFailed {
		t.Errorf("code = %s", appErr.Code)
	}
	// The single call fails loudly, never silently falls back.
	if appErr.Cause == nil || !strings.Contains(appErr.Cause.Error(), "quota exceeded") {
		t.Errorf("cause lost: %v", appErr)
	}
}

func TestRenderDirectoryTreeDeduplicates(t *testing.T) {
	tree, err := renderDirectoryTree("p", []string{"a/b", "a/b", "a/c"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(tree, "b") != 1 {
		t.Errorf("duplicate path rendered twice:\n%s", tree)
	}
	if !strings.Contains(tree, "c") {
		t.Errorf("sibling missing:\n%s", tree)
	}
}
