// Package archive unpacks zip-based Java archives into timestamped
// destination directories.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zip"

	"github.com/doeshing/jer-go/internal/domain"
	"github.com/doeshing/jer-go/internal/pkg/cleanup"
	"github.com/doeshing/jer-go/internal/pkg/streamio"
	"github.com/doeshing/jer-go/internal/ports"
)

// Extractor implements ports.ArchiveExtractor.
type Extractor struct {
	log       ports.Logger
	tempDir   func() string
	removeAll func(string) error
}

// NewExtractor builds an extractor that defaults destinations to os.TempDir.
func NewExtractor(log ports.Logger) *Extractor {
	return &Extractor{log: log, tempDir: os.TempDir, removeAll: os.RemoveAll}
}

// Extract unpacks req.ArchivePath. When the destination already exists and
// req.Overwrite is false the existing directory is returned untouched.
func (e *Extractor) Extract(req domain.ExtractionRequest) (domain.ExtractionResult, error) {
	if strings.TrimSpace(req.ArchivePath) == "" {
		return domain.ExtractionResult{}, &domain.InvalidInputError{Field: "archive path"}
	}

	info, err := statReadable(req.ArchivePath)
	if err != nil {
		return domain.ExtractionResult{}, &domain.AccessError{Path: req.ArchivePath, Err: err}
	}

	reader, err := zip.OpenReader(req.ArchivePath)
	if err != nil {
		return domain.ExtractionResult{}, &domain.AccessError{Path: req.ArchivePath, Err: err}
	}
	defer reader.Close()

	root := req.DestinationRoot
	if root == "" {
		root = e.tempDir()
	}
	dest, err := filepath.Abs(filepath.FromSlash(DestinationPath(root, req.ArchivePath, info.ModTime())))
	if err != nil {
		return domain.ExtractionResult{}, &domain.ExtractionError{Directory: dest, Err: err}
	}
	e.log.Debug("resolved destination", map[string]interface{}{"archive": req.ArchivePath, "destination": dest})

	_, statErr := os.Stat(dest)
	existed := statErr == nil
	if existed && !req.Overwrite {
		e.log.Info("destination already exists, skipping extraction", map[string]interface{}{"destination": dest})
		return domain.ExtractionResult{Directory: dest, Skipped: true}, nil
	}

	if err := os.MkdirAll(dest, domain.DirectoryPermissions); err != nil {
		return domain.ExtractionResult{}, &domain.ExtractionError{Directory: dest, Err: err}
	}
	result := domain.ExtractionResult{Directory: dest, Created: !existed}

	for _, f := range reader.File {
		if !matchesFilter(req.ResourceFilter, f.Name) {
			continue
		}
		written, err := extractEntry(dest, f)
		if err != nil {
			e.log.Debug("could not extract entry", map[string]interface{}{"entry": f.Name, "error": err.Error()})
			return domain.ExtractionResult{}, e.fail(dest, result.Created, err)
		}
		result.Entries++
		result.Bytes += written
	}

	e.log.Info("extracted archive", map[string]interface{}{
		"destination": dest,
		"entries":     result.Entries,
		"size":        humanize.Bytes(uint64(result.Bytes)),
	})
	return result, nil
}

// DestinationPath computes "<root>/<archive base>-<mtime>" where the archive
// base has its last extension removed and mtime is formatted in UTC.
func DestinationPath(root, archivePath string, modTime time.Time) string {
	name := filepath.Base(archivePath)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	root = strings.ReplaceAll(root, `\`, "/")
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return root + name + "-" + modTime.UTC().Format(domain.DestinationTimestampLayout)
}

func (e *Extractor) fail(dest string, created bool, cause error) error {
	extractErr := &domain.ExtractionError{Directory: dest, Err: cause}
	if !created {
		return extractErr
	}
	if err := e.removeAll(dest); err != nil {
		cleanup.Defer(dest)
		extractErr.CleanupWarning = err
		e.log.Warn("could not remove partial extraction, deferring to exit", map[string]interface{}{
			"destination": dest,
			"error":       err.Error(),
		})
	}
	return extractErr
}

func statReadable(path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if err := checkAccess(path); err != nil {
		return nil, err
	}
	return info, nil
}

func matchesFilter(filter, name string) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	return strings.HasPrefix(name, filter)
}

func extractEntry(dest string, f *zip.File) (int64, error) {
	target, err := entryPath(dest, f.Name)
	if err != nil {
		return 0, err
	}

	if f.FileInfo().IsDir() {
		// parents are expected to exist already; failures are not surfaced
		_ = os.Mkdir(target, domain.DirectoryPermissions)
		return 0, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), domain.DirectoryPermissions); err != nil {
		return 0, fmt.Errorf("create parent of %s: %w", f.Name, err)
	}

	src, err := f.Open()
	if err != nil {
		return 0, fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer src.Close()

	//nolint:gosec // G304: target is validated to stay inside dest
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePermissions)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", f.Name, err)
	}
	written, err := streamio.Copy(out, src)
	if err != nil {
		_ = out.Close()
		return written, fmt.Errorf("write %s: %w", f.Name, err)
	}
	if err := out.Close(); err != nil {
		return written, fmt.Errorf("close %s: %w", f.Name, err)
	}
	return written, nil
}

func entryPath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	rel, err := filepath.Rel(dest, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %q escapes destination", name)
	}
	return target, nil
}

var _ ports.ArchiveExtractor = (*Extractor)(nil)
