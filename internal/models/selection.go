package models

// SelectionRequest is one user interaction's worth of input to the kit
// builder: which catalog documents to include and which placeholder
// variables to substitute into their bodies. Consumed once, never
// persisted.
type SelectionRequest struct {
	// Paths are catalog identities, e.g. "rules/cursor-rules.md".
	Paths []string `json:"paths"`

	// Vars are substituted for {{name}} placeholders in document
	// bodies. Unresolved placeholders are left verbatim.
	Vars map[string]string `json:"vars,omitempty"`

	// KitName is the top-level directory inside the archive.
	// Defaults to "cursor-starter-kit" when empty.
	KitName string `json:"kit_name,omitempty"`

	// IncludeScaffold adds the fixed AGENTS.md and README.md
	// scaffold files to the kit.
	IncludeScaffold bool `json:"include_scaffold,omitempty"`
}

// Issue is a single validation finding on a document. Blocking issues
// make the document invalid; warnings are advisory.
type Issue struct {
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
	Blocking bool   `json:"blocking"`
}

// ValidationResult is the per-document outcome of frontmatter
// validation. Read-only once produced.
type ValidationResult struct {
	Path   string  `json:"path"`
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`

	// TokenEstimate is the heuristic token count of the body.
	TokenEstimate int `json:"token_estimate"`

	// Oversized is set when the estimate exceeds the configured
	// warning threshold. Advisory only; never blocks packaging.
	Oversized bool `json:"oversized,omitempty"`
}

// BlockingIssues returns only the issues that affect validity.
func (r ValidationResult) BlockingIssues() []Issue {
	var blocking []Issue
	for _, issue := range r.Issues {
		if issue.Blocking {
			blocking = append(blocking, issue)
		}
	}
	return blocking
}

// ResolvedFile is one archive entry: a relative path and its final
// byte content after substitution.
type ResolvedFile struct {
	Path    string `json:"path"`
	Content []byte `json:"-"`
}

// ResolvedFileSet is the ordered sequence of files handed to the
// archive packager. Paths are unique within a set.
type ResolvedFileSet struct {
	Files []ResolvedFile `json:"files"`
}

// Paths returns the entry paths in their current order.
func (s *ResolvedFileSet) Paths() []string {
	paths := make([]string, len(s.Files))
	for i, f := range s.Files {
		paths[i] = f.Path
	}
	return paths
}

// Lookup returns the content for a path, or false if absent.
func (s *ResolvedFileSet) Lookup(path string) ([]byte, bool) {
	for _, f := range s.Files {
		if f.Path == path {
			return f.Content, true
		}
	}
	return nil, false
}

// KitResult is the builder's complete output for one request: the
// resolved files, every validation result across all selected
// documents, and the overall success flag. The builder never drops an
// invalid document; the caller decides whether to block the download.
type KitResult struct {
	Set     *ResolvedFileSet   `json:"set"`
	Results []ValidationResult `json:"results"`
	OK      bool               `json:"ok"`
}
