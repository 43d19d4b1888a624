package kit

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/ddddddO/gtree"
	"github.com/lithammer/dedent"

	apperrors "github.com/youssefhossamm/cursor-kickstart/internal/errors"
)

// Generator is the opaque AI collaborator: one synchronous call, no
// retries. Implementations live elsewhere; the engine never depends on
// a specific model provider.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// StructureInput collects the project details a user supplies for
// project-structure.md generation.
type StructureInput struct {
	ProjectName       string   `json:"project_name"`
	Overview          string   `json:"overview,omitempty"`
	TechStack         []string `json:"tech_stack,omitempty"`
	Directories       []string `json:"directories,omitempty"`
	ArchitectureNotes string   `json:"architecture_notes,omitempty"`
}

// StructureGenerator produces project-structure.md documents, either
// template-based or through the AI collaborator when one is present.
type StructureGenerator struct {
	ai Generator // nil means template-based generation only
}

// NewStructureGenerator creates a generator. ai may be nil.
func NewStructureGenerator(ai Generator) *StructureGenerator {
	return &StructureGenerator{ai: ai}
}

var structureTemplate = template.Must(template.New("project-structure").Parse(`---
description: "Project structure and architecture overview for {{.ProjectName}}"
globs: []
alwaysApply: true
---

# Project Structure: {{.ProjectName}}

## Overview

{{.Overview}}

## Directory Layout

` + "```" + `
{{.DirectoryTree}}` + "```" + `

## Architecture

{{.Architecture}}

## Key Technologies

{{.Technologies}}
`))

var structurePrompt = strings.TrimSpace(dedent.Dedent(`
	You are an expert at documenting software projects. Generate a comprehensive
	project-structure.md file for a Cursor Rules configuration.

	Project Details:
	- Project Name: %s
	- Tech Stack: %s
	- Main Files/Directories: %s
	- Architecture Notes: %s

	Generate a well-structured markdown document that includes:
	1. YAML frontmatter with description, globs: [], and alwaysApply: true
	2. Clear overview of the project
	3. Directory layout in tree format
	4. Architecture explanation
	5. Key technologies section

	The output should be a complete, ready-to-use project-structure.md file.
	Output ONLY the markdown content, no explanations before or after.
`))

// Generate produces a complete project-structure.md document. With an
// AI collaborator configured it makes the single opaque call;
// otherwise it renders the built-in template.
func (g *StructureGenerator) Generate(ctx context.Context, input StructureInput) (string, error) {
	if strings.TrimSpace(input.ProjectName) == "" {
		return "", apperrors.InvalidInputError("project name is required")
	}

	if g.ai != nil {
		prompt := fmt.Sprintf(structurePrompt,
			input.ProjectName,
			strings.Join(input.TechStack, ", "),
			strings.Join(input.Directories, ", "),
			input.ArchitectureNotes,
		)
		text, err := g.ai.Generate(ctx, prompt)
		if err != nil {
			return "", apperrors.Wrap(err, apperrors.ErrCodeGenerationFailed, "project structure generation failed")
		}
		return text, nil
	}

	return g.renderTemplate(input)
}

// renderTemplate is the no-API-key fallback path.
func (g *StructureGenerator) renderTemplate(input StructureInput) (string, error) {
	tree, err := renderDirectoryTree(input.ProjectName, input.Directories)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeGenerationFailed, "directory tree rendering failed")
	}

	overview := input.Overview
	if overview == "" {
		if len(input.TechStack) > 0 {
			overview = fmt.Sprintf("A project built with %s.", strings.Join(input.TechStack, ", "))
		} else {
			overview = "A project built with various technologies."
		}
	}

	architecture := input.ArchitectureNotes
	if architecture == "" {
		architecture = "Describe your architecture here."
	}

	var technologies string
	if len(input.TechStack) > 0 {
		var lines []string
		for _, tech := range input.TechStack {
			lines = append(lines, fmt.Sprintf("- **%s**", tech))
		}
		technologies = strings.Join(lines, "\n")
	} else {
		technologies = "- Not specified"
	}

	var buf bytes.Buffer
	err = structureTemplate.Execute(&buf, map[string]string{
		"ProjectName":   input.ProjectName,
		"Overview":      overview,
		"DirectoryTree": tree,
		"Architecture":  architecture,
		"Technologies":  technologies,
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeGenerationFailed, "structure template rendering failed")
	}
	return buf.String(), nil
}

// defaultDirectories seeds the tree when the user lists none.
var defaultDirectories = []string{
	"src",
	"tests",
	"docs",
	".cursor/rules",
	".cursor/commands",
}

// renderDirectoryTree renders slash-separated paths as a box-drawing
// tree rooted at the project name.
func renderDirectoryTree(projectName string, dirs []string) (string, error) {
	if len(dirs) == 0 {
		dirs = defaultDirectories
	}

	root := gtree.NewRoot(projectName + "/")
	nodes := map[string]*gtree.Node{"": root}

	for _, dir := range dirs {
		dir = strings.Trim(strings.TrimSpace(dir), "/")
		if dir == "" {
			continue
		}
		prefix := ""
		for _, part := range strings.Split(dir, "/") {
			key := prefix + "/" + part
			if _, ok := nodes[key]; !ok {
				nodes[key] = nodes[prefix].Add(part)
			}
			prefix = key
		}
	}

	var buf bytes.Buffer
	if err := gtree.OutputProgrammably(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}
