// Package archive serializes resolved file sets into zip archives.
//
// Packaging is deterministic: entries are written in lexicographic
// path order with a fixed modification time and fixed compression
// settings, so packaging the same set twice yields byte-identical
// output. That property makes downloads reproducible and cacheable.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"

	apperrors "github.com/youssefhossamm/cursor-kickstart/internal/errors"
	"github.com/youssefhossamm/cursor-kickstart/internal/models"
)

// archiveEpoch is the fixed timestamp stamped on every entry. Zip
// stores MS-DOS times with a 1980 floor, so the constant must not
// predate that.
var archiveEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// maxEntryPathLen is the zip format's file name length limit.
const maxEntryPathLen = 65535

// Packager turns a ResolvedFileSet into a single zip byte stream.
type Packager struct{}

// NewPackager creates a packager.
func NewPackager() *Packager {
	return &Packager{}
}

// Package serializes the set. The only failure mode is an
// ArchiveFailure; it aborts the call and is never retried here.
func (p *Packager) Package(set *models.ResolvedFileSet) ([]byte, error) {
	if set == nil {
		return nil, apperrors.InvalidInputError("nil file set")
	}

	files := make([]models.ResolvedFile, len(set.Files))
	copy(files, set.Files)
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if err := validEntryPath(f.Path); err != nil {
			return nil, apperrors.ArchiveError("create entry", err)
		}
		if seen[f.Path] {
			return nil, apperrors.ArchiveError("create entry",
				fmt.Errorf("duplicate entry path: %s", f.Path))
		}
		seen[f.Path] = true

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Path,
			Method:   zip.Deflate,
			Modified: archiveEpoch,
		})
		if err != nil {
			return nil, apperrors.ArchiveError("create entry", err)
		}
		if _, err := w.Write(f.Content); err != nil {
			return nil, apperrors.ArchiveError("write entry", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, apperrors.ArchiveError("finalize archive", err)
	}
	return buf.Bytes(), nil
}

// validEntryPath enforces the constraints the zip format and sane
// extraction place on entry names: relative, slash-separated, no
// parent traversal, within the name length limit.
func validEntryPath(path string) error {
	switch {
	case path == "":
		return fmt.Errorf("empty entry path")
	case len(path) > maxEntryPathLen:
		return fmt.Errorf("entry path exceeds zip limit: %d bytes", len(path))
	case strings.HasPrefix(path, "/"):
		return fmt.Errorf("absolute entry path: %s", path)
	case strings.Contains(path, "\\"):
		return fmt.Errorf("backslash in entry path: %s", path)
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return fmt.Errorf("parent traversal in entry path: %s", path)
		}
	}
	return nil
}
