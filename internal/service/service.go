// Package service wires the catalog, validator, builder, packager and
// structure generator behind one facade used by every interface layer.
package service

import (
	"context"

	"github.com/youssefhossamm/cursor-kickstart/internal/archive"
	"github.com/youssefhossamm/cursor-kickstart/internal/catalog"
	"github.com/youssefhossamm/cursor-kickstart/internal/config"
	"github.com/youssefhossamm/cursor-kickstart/internal/frontmatter"
	"github.com/youssefhossamm/cursor-kickstart/internal/kit"
	"github.com/youssefhossamm/cursor-kickstart/internal/models"
	"github.com/youssefhossamm/cursor-kickstart/internal/tokens"
)

// Service provides the engine's business logic.
type Service struct {
	catalog   *catalog.Catalog
	estimator *tokens.Estimator
	validator *frontmatter.Validator
	builder   *kit.Builder
	packager  *archive.Packager
	structure *kit.StructureGenerator
}

// NewService assembles a service over the built-in catalog. ai may be
// nil; structure generation then uses the built-in template.
func NewService(cfg config.Config, ai kit.Generator) *Service {
	cat := catalog.Default()
	est := tokens.NewEstimator(cfg.CharsPerToken, cfg.TokenWarn)
	val := frontmatter.NewValidator(est)
	return &Service{
		catalog:   cat,
		estimator: est,
		validator: val,
		builder:   kit.NewBuilder(cat, val),
		packager:  archive.NewPackager(),
		structure: kit.NewStructureGenerator(ai),
	}
}

// ListTemplates returns the full catalog in its stable order.
func (s *Service) ListTemplates() []models.TemplateDocument {
	return s.catalog.ListAll()
}

// ListByCategory returns the catalog entries of one category.
func (s *Service) ListByCategory(cat models.Category) []models.TemplateDocument {
	return s.catalog.ByCategory(cat)
}

// GetTemplate looks up a single template by path.
func (s *Service) GetTemplate(path string) (models.TemplateDocument, error) {
	return s.catalog.Get(path)
}

// SearchTemplates fuzzy-matches templates by name and description.
func (s *Service) SearchTemplates(query string) []models.TemplateDocument {
	return s.catalog.Search(query)
}

// DefaultSelection returns the paths preselected for a fresh kit.
func (s *Service) DefaultSelection() []string {
	var paths []string
	for _, doc := range s.catalog.ListAll() {
		if doc.DefaultSelected {
			paths = append(paths, doc.Path)
		}
	}
	return paths
}

// ValidateTemplate validates one catalog template by path.
func (s *Service) ValidateTemplate(path string) (models.ValidationResult, error) {
	doc, err := s.catalog.Get(path)
	if err != nil {
		return models.ValidationResult{}, err
	}
	return s.validator.Validate(doc), nil
}

// ValidateContent validates arbitrary document content against the
// schema for the given category.
func (s *Service) ValidateContent(path string, cat models.Category, content string) models.ValidationResult {
	return s.validator.Validate(models.TemplateDocument{
		Path:     path,
		Category: cat,
		Body:     content,
	})
}

// BuildKit resolves a selection into a file set plus per-template
// validation results.
func (s *Service) BuildKit(req models.SelectionRequest) (*models.KitResult, error) {
	return s.builder.Build(req)
}

// PackageKit resolves a selection and serializes it into a zip
// archive. Validation failures do not block packaging; the result is
// returned alongside the bytes so callers can report them.
func (s *Service) PackageKit(req models.SelectionRequest) ([]byte, *models.KitResult, error) {
	result, err := s.builder.Build(req)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.packager.Package(result.Set)
	if err != nil {
		return nil, nil, err
	}
	return data, result, nil
}

// GenerateStructure produces a project-structure.md document and its
// validation result.
func (s *Service) GenerateStructure(ctx context.Context, input kit.StructureInput) (string, models.ValidationResult, error) {
	content, err := s.structure.Generate(ctx, input)
	if err != nil {
		return "", models.ValidationResult{}, err
	}
	vr := s.ValidateContent("rules/project-structure.md", models.CategoryRule, content)
	return content, vr, nil
}

// FrontmatterFields documents the rule header schema for display.
func (s *Service) FrontmatterFields() []catalog.FieldDoc {
	return catalog.FrontmatterFieldDocs()
}

// Comparison returns the rules-vs-commands reference table.
func (s *Service) Comparison() []catalog.ComparisonRow {
	return catalog.Comparison()
}

// QuickTips returns usage tips for "rules", "commands", or anything
// else for the general tips.
func (s *Service) QuickTips(category string) []string {
	return catalog.QuickTips(category)
}

// Estimator exposes the configured token estimator.
func (s *Service) Estimator() *tokens.Estimator {
	return s.estimator
}
