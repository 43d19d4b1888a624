// Package kit resolves a user's template selection into a concrete
// file set ready for packaging, and generates project-structure rule
// documents.
package kit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/youssefhossamm/cursor-kickstart/internal/catalog"
	apperrors "github.com/youssefhossamm/cursor-kickstart/internal/errors"
	"github.com/youssefhossamm/cursor-kickstart/internal/frontmatter"
	"github.com/youssefhossamm/cursor-kickstart/internal/models"
)

// DefaultKitName is the archive's top-level directory when the
// request names none.
const DefaultKitName = "cursor-starter-kit"

// placeholderPattern matches {{name}} placeholders in document bodies.
var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_.-]+)\}\}`)

// Substitute replaces {{name}} placeholders with values from vars.
// Placeholders without a matching variable are left verbatim: users
// may intentionally keep some for later manual editing, so loose
// substitution is the contract here, not an error.
func Substitute(body string, vars map[string]string) string {
	if len(vars) == 0 {
		return body
	}
	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}

// Builder resolves selection requests against the catalog.
type Builder struct {
	catalog   *catalog.Catalog
	validator *frontmatter.Validator
}

// NewBuilder creates a builder over a catalog and validator.
func NewBuilder(cat *catalog.Catalog, validator *frontmatter.Validator) *Builder {
	return &Builder{catalog: cat, validator: validator}
}

// Build resolves a selection request into a KitResult.
//
// An identity not present in the catalog is the only error: it aborts
// the build and no file set is returned. Validation failures never
// abort: every selected document is resolved, every result is
// reported, and the overall OK flag tells the caller whether any rule
// failed. The builder never drops an invalid document; whether to
// block the download is the caller's decision.
func (b *Builder) Build(req models.SelectionRequest) (*models.KitResult, error) {
	if len(req.Paths) == 0 {
		return nil, apperrors.InvalidInputError("no templates selected")
	}

	kitName := req.KitName
	if kitName == "" {
		kitName = DefaultKitName
	}
	if err := validKitName(kitName); err != nil {
		return nil, apperrors.InvalidInputError(err.Error())
	}

	// Resolve every identity first; duplicates collapse to the first
	// occurrence so file set paths stay unique.
	seen := make(map[string]bool, len(req.Paths))
	var docs []models.TemplateDocument
	for _, path := range req.Paths {
		if seen[path] {
			continue
		}
		seen[path] = true
		doc, err := b.catalog.Get(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	result := &models.KitResult{
		Set: &models.ResolvedFileSet{},
		OK:  true,
	}

	for _, doc := range docs {
		substituted := doc
		substituted.Body = Substitute(doc.Body, req.Vars)

		vr := b.validator.Validate(substituted)
		result.Results = append(result.Results, vr)
		if !vr.Valid {
			result.OK = false
		}

		result.Set.Files = append(result.Set.Files, models.ResolvedFile{
			Path:    kitName + "/.cursor/" + doc.Path,
			Content: []byte(substituted.Body),
		})
	}

	if req.IncludeScaffold {
		result.Set.Files = append(result.Set.Files,
			models.ResolvedFile{
				Path:    kitName + "/AGENTS.md",
				Content: []byte(Substitute(catalog.ScaffoldAgents, req.Vars)),
			},
			models.ResolvedFile{
				Path:    kitName + "/README.md",
				Content: []byte(Substitute(catalog.ScaffoldReadme, req.Vars)),
			},
		)
	}

	return result, nil
}

// validKitName keeps the kit directory a single path element.
func validKitName(name string) error {
	if strings.ContainsAny(name, "/\\") || name == ".." || name == "." {
		return fmt.Errorf("invalid kit name: %s", name)
	}
	return nil
}
