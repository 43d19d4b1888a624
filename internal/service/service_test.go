package service

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/youssefhossamm/cursor-kickstart/internal/config"
	apperrors "github.com/youssefhossamm/cursor-kickstart/internal/errors"
	"github.com/youssefhossamm/cursor-kickstart/internal/kit"
	"github.com/youssefhossamm/cursor-kickstart/internal/models"
)

func newTestService() *Service {
	return NewService(config.Config{}, nil)
}

func TestListTemplates(t *testing.T) {
	svc := newTestService()
	docs := svc.ListTemplates()
	if len(docs) != 15 {
		t.Fatalf("templates = %d, want 15", len(docs))
	}
	if len(svc.ListByCategory(models.CategoryRule)) != 5 {
		t.Error("rule count wrong")
	}
	if len(svc.ListByCategory(models.CategoryCommand)) != 10 {
		t.Error("command count wrong")
	}
}

func TestDefaultSelection(t *testing.T) {
	svc := newTestService()
	paths := svc.DefaultSelection()
	if len(paths) == 0 {
		t.Fatal("no default selection")
	}
	for _, p := range paths {
		if _, err := svc.GetTemplate(p); err != nil {
			t.Errorf("default selection %q not in catalog: %v", p, err)
		}
	}
}

func TestValidateTemplateAllBuiltinsValid(t *testing.T) {
	// Every shipped template must pass its own validator.
	svc := newTestService()
	for _, doc := range svc.ListTemplates() {
		vr, err := svc.ValidateTemplate(doc.Path)
		if err != nil {
			t.Fatalf("%s: %v", doc.Path, err)
		}
		if !vr.Valid {
			t.Errorf("%s: built-in template invalid: %+v", doc.Path, vr.Issues)
		}
	}
}

func TestValidateContentBadRule(t *testing.T) {
	svc := newTestService()
	vr := svc.ValidateContent("rules/x.md", models.CategoryRule,
		"---\nglobs: \"*.py\"\n---\nbody")
	if vr.Valid {
		t.Fatal("expected invalid result")
	}
	var messages []string
	for _, issue := range vr.Issues {
		messages = append(messages, issue.Message)
	}
	joined := strings.Join(messages, "; ")
	if !strings.Contains(joined, "missing field: description") {
		t.Errorf("missing-field finding absent: %s", joined)
	}
	if !strings.Contains(joined, "type mismatch: globs") {
		t.Errorf("type-mismatch finding absent: %s", joined)
	}
}

func TestPackageKitHappyPath(t *testing.T) {
	svc := newTestService()

	data, result, err := svc.PackageKit(models.SelectionRequest{
		Paths: []string{"rules/cursor-rules.md", "commands/debug.md"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !result.OK {
		t.Errorf("OK = false: %+v", result.Results)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("archive entries = %d, want 2", len(zr.File))
	}
}

func TestPackageKitInvalidRuleStillPackages(t *testing.T) {
	// The engine reports validation failures but never blocks the
	// download itself.
	svc := newTestService()

	vr := svc.ValidateContent("rules/x.md", models.CategoryRule, "no header at all")
	if vr.Valid {
		t.Fatal("sanity: header-less rule should be invalid")
	}

	data, result, err := svc.PackageKit(models.SelectionRequest{
		Paths: svc.DefaultSelection(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if data == nil || !result.OK {
		t.Error("default selection should package cleanly")
	}
}

func TestPackageKitUnknownTemplate(t *testing.T) {
	svc := newTestService()

	data, result, err := svc.PackageKit(models.SelectionRequest{
		Paths: []string{"rules/nope.md"},
	})
	if err == nil {
		t.Fatal("expected unknown template error")
	}
	if data != nil || result != nil {
		t.Error("nothing may be returned on unknown template")
	}
	if apperrors.GetAppError(err).Code != apperrors.ErrCodeUnknownTemplate {
		t.Errorf("code = %s", apperrors.GetAppError(err).Code)
	}
}

func TestPackageKitDeterministic(t *testing.T) {
	svc := newTestService()
	req := models.SelectionRequest{
		Paths: []string{"commands/debug.md", "rules/cursor-rules.md"},
		Vars:  map[string]string{"project_name": "Acme"},
	}

	first, _, err := svc.PackageKit(req)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := svc.PackageKit(req)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical requests produced different archives")
	}
}

func TestGenerateStructureTemplatePath(t *testing.T) {
	svc := newTestService()

	content, vr, err := svc.GenerateStructure(context.Background(), kit.StructureInput{
		ProjectName: "Acme",
		TechStack:   []string{"Go"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "# Project Structure: Acme") {
		t.Error("generated document missing heading")
	}
	// The generated rule must satisfy the engine's own schema.
	if !vr.Valid {
		t.Errorf("generated structure fails validation: %+v", vr.Issues)
	}
}

func TestSearchTemplates(t *testing.T) {
	svc := newTestService()
	hits := svc.SearchTemplates("debug")
	if len(hits) == 0 || hits[0].Path != "commands/debug.md" {
		t.Errorf("search results = %+v", hits)
	}
}

func TestReferenceData(t *testing.T) {
	svc := newTestService()
	if len(svc.FrontmatterFields()) != 3 {
		t.Error("field docs count wrong")
	}
	if len(svc.Comparison()) != 7 {
		t.Error("comparison rows count wrong")
	}
	if len(svc.QuickTips("rules")) == 0 {
		t.Error("no rule tips")
	}
}
