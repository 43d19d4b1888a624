package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	apperrors "github.com/youssefhossamm/cursor-kickstart/internal/errors"
	"github.com/youssefhossamm/cursor-kickstart/internal/models"
)

func sampleSet() *models.ResolvedFileSet {
	return &models.ResolvedFileSet{
		Files: []models.ResolvedFile{
			{Path: "kit/.cursor/rules/cursor-rules.md", Content: []byte("rule body")},
			{Path: "kit/.cursor/commands/debug.md", Content: []byte("command body")},
			{Path: "kit/README.md", Content: []byte("readme")},
		},
	}
}

func readAllEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	entries := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		entries[f.Name] = string(content)
	}
	return entries
}

func TestPackageRoundTrip(t *testing.T) {
	data, err := NewPackager().Package(sampleSet())
	if err != nil {
		t.Fatalf("Package failed: %v", err)
	}

	entries := readAllEntries(t, data)
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries["kit/.cursor/rules/cursor-rules.md"] != "rule body" {
		t.Errorf("rule content = %q", entries["kit/.cursor/rules/cursor-rules.md"])
	}
	if entries["kit/README.md"] != "readme" {
		t.Errorf("readme content = %q", entries["kit/README.md"])
	}
}

func TestPackageDeterministic(t *testing.T) {
	p := NewPackager()

	first, err := p.Package(sampleSet())
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Package(sampleSet())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated packaging produced different bytes")
	}

	// Entry order in the input must not matter.
	shuffled := sampleSet()
	shuffled.Files[0], shuffled.Files[2] = shuffled.Files[2], shuffled.Files[0]
	third, err := p.Package(shuffled)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, third) {
		t.Error("input order changed archive bytes")
	}
}

func TestPackageLexicographicEntryOrder(t *testing.T) {
	data, err := NewPackager().Package(sampleSet())
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("entries not in lexicographic order: %q before %q", names[i-1], names[i])
		}
	}
}

func TestPackageRejectsBadPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"absolute", "/etc/passwd"},
		{"traversal", "kit/../../escape.md"},
		{"backslash", `kit\windows.md`},
		{"too long", "kit/" + strings.Repeat("a", maxEntryPathLen)},
	}

	p := NewPackager()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := &models.ResolvedFileSet{Files: []models.ResolvedFile{{Path: tt.path}}}
			_, err := p.Package(set)
			if err == nil {
				t.Fatalf("expected error for path %q", tt.path)
			}
			if apperrors.GetAppError(err).Code != apperrors.ErrCodeArchiveFailure {
				t.Errorf("code = %s, want %s", apperrors.GetAppError(err).Code, apperrors.ErrCodeArchiveFailure)
			}
		})
	}
}

func TestPackageRejectsDuplicatePaths(t *testing.T) {
	set := &models.ResolvedFileSet{
		Files: []models.ResolvedFile{
			{Path: "kit/a.md", Content: []byte("one")},
			{Path: "kit/a.md", Content: []byte("two")},
		},
	}
	if _, err := NewPackager().Package(set); err == nil {
		t.Fatal("expected duplicate path error")
	}
}

func TestPackageEmptySet(t *testing.T) {
	data, err := NewPackager().Package(&models.ResolvedFileSet{})
	if err != nil {
		t.Fatalf("empty set should package: %v", err)
	}
	if len(readAllEntries(t, data)) != 0 {
		t.Error("empty set produced entries")
	}
}
