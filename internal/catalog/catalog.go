// Package catalog holds the immutable in-memory registry of starter
// templates. All content is compiled in; the catalog is built once at
// startup and only read afterwards, so concurrent requests share it
// without coordination.
package catalog

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/youssefhossamm/cursor-kickstart/internal/errors"
	"github.com/youssefhossamm/cursor-kickstart/internal/models"
)

// Catalog is a read-only registry of template documents keyed by path.
type Catalog struct {
	byPath  map[string]models.TemplateDocument
	ordered []models.TemplateDocument
}

// New builds a catalog from a document slice. Paths must be unique.
func New(docs []models.TemplateDocument) (*Catalog, error) {
	byPath := make(map[string]models.TemplateDocument, len(docs))
	ordered := make([]models.TemplateDocument, 0, len(docs))

	for _, doc := range docs {
		if doc.Path == "" {
			return nil, errors.InvalidInputError("document with empty path")
		}
		if _, exists := byPath[doc.Path]; exists {
			return nil, errors.InvalidInputError(fmt.Sprintf("duplicate document path: %s", doc.Path))
		}
		byPath[doc.Path] = doc
		ordered = append(ordered, doc)
	}

	// Stable listing order: category first, then name.
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Category != ordered[j].Category {
			return ordered[i].Category < ordered[j].Category
		}
		return ordered[i].Name < ordered[j].Name
	})

	return &Catalog{byPath: byPath, ordered: ordered}, nil
}

// Default returns the built-in starter-kit catalog.
func Default() *Catalog {
	c, err := New(starterDocuments())
	if err != nil {
		// The built-in corpus is static; a duplicate path here is a
		// programming error.
		panic(err)
	}
	return c
}

// ListAll returns every document in stable order (category, name).
func (c *Catalog) ListAll() []models.TemplateDocument {
	out := make([]models.TemplateDocument, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Get returns the document registered at path.
func (c *Catalog) Get(path string) (models.TemplateDocument, error) {
	doc, ok := c.byPath[path]
	if !ok {
		return models.TemplateDocument{}, errors.UnknownTemplateError(path)
	}
	return doc, nil
}

// ByCategory returns documents of one category in stable order.
func (c *Catalog) ByCategory(cat models.Category) []models.TemplateDocument {
	var out []models.TemplateDocument
	for _, doc := range c.ordered {
		if doc.Category == cat {
			out = append(out, doc)
		}
	}
	return out
}

// Search fuzzy-matches query against document names and descriptions,
// best matches first. An empty query returns the full listing.
func (c *Catalog) Search(query string) []models.TemplateDocument {
	if query == "" {
		return c.ListAll()
	}

	haystack := make([]string, len(c.ordered))
	for i, doc := range c.ordered {
		haystack[i] = doc.Name + " " + doc.Description
	}

	matches := fuzzy.Find(query, haystack)
	out := make([]models.TemplateDocument, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.ordered[m.Index])
	}
	return out
}

// Len returns the number of documents in the catalog.
func (c *Catalog) Len() int {
	return len(c.ordered)
}
