// Package ingest loads raw JSON payloads from files and archives into
// (value, file name) pairs for the pipeline. Malformed JSON never reaches the
// core; it surfaces as a batch error string.
package ingest

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/catalog-normalizer/constants"
	"github.com/joseph-ayodele/catalog-normalizer/internal/record"
)

// Loader reads JSON documents and archives from the local filesystem.
type Loader struct {
	logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadDirectory walks root and loads every JSON file and archive member it
// finds. File-level failures come back as error strings suitable for the
// batch report; only the walk itself can fail hard.
func (l *Loader) LoadDirectory(root string) ([]record.Input, []string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, nil, fmt.Errorf("root path is required")
	}

	var inputs []record.Input
	var fileErrs []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			fileErrs = append(fileErrs, fmt.Sprintf("Error reading %s: %v", path, walkErr))
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.JSONExtensions[ext]; ok {
			in, errStr := l.LoadFile(path)
			if errStr != "" {
				fileErrs = append(fileErrs, errStr)
				return nil
			}
			inputs = append(inputs, in)
			return nil
		}
		if _, ok := constants.ArchiveExtensions[ext]; ok {
			archiveInputs, archiveErrs := l.LoadArchive(path)
			inputs = append(inputs, archiveInputs...)
			fileErrs = append(fileErrs, archiveErrs...)
		}
		return nil
	})
	if err != nil {
		return inputs, fileErrs, fmt.Errorf("walk: %w", err)
	}

	l.logger.Info("ingest.directory.ok",
		"root", root,
		"payloads", len(inputs),
		"file_errors", len(fileErrs),
	)
	return inputs, fileErrs, nil
}

// LoadFile loads a single JSON document. The second return value is a
// report-ready error string, empty on success.
func (l *Loader) LoadFile(path string) (record.Input, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return record.Input{}, fmt.Sprintf("Error reading %s: %v", path, err)
	}
	return ParseJSON(data, filepath.Base(path))
}

// ParseJSON decodes one JSON payload, reporting the fixed invalid-JSON error
// string on failure.
func ParseJSON(data []byte, name string) (record.Input, string) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return record.Input{}, fmt.Sprintf("Invalid JSON in file: %s", name)
	}
	return record.Input{Value: v, FileName: name}, ""
}

// LoadArchive loads the .json members of a ZIP or TAR(.GZ) archive.
func (l *Loader) LoadArchive(path string) ([]record.Input, []string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []string{fmt.Sprintf("Error reading archive %s: %v", path, err)}
	}

	name := filepath.Base(path)
	if strings.HasSuffix(name, ".zip") {
		return l.loadZip(data, name)
	}
	return l.loadTar(data, name, strings.HasSuffix(name, ".gz"))
}

func (l *Loader) loadZip(data []byte, archiveName string) ([]record.Input, []string) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, []string{fmt.Sprintf("Error reading ZIP archive: %s: %v", archiveName, err)}
	}

	var inputs []record.Input
	var fileErrs []string
	for _, f := range zr.File {
		if !wantedMember(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			fileErrs = append(fileErrs, fmt.Sprintf("Error reading %s in %s: %v", f.Name, archiveName, err))
			continue
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			fileErrs = append(fileErrs, fmt.Sprintf("Error reading %s in %s: %v", f.Name, archiveName, err))
			continue
		}
		in, errStr := ParseJSON(content, f.Name)
		if errStr != "" {
			fileErrs = append(fileErrs, errStr)
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, fileErrs
}

func (l *Loader) loadTar(data []byte, archiveName string, gzipped bool) ([]record.Input, []string) {
	var src io.Reader = bytes.NewReader(data)
	if gzipped {
		gz, err := gzip.NewReader(src)
		if err != nil {
			return nil, []string{fmt.Sprintf("Error reading TAR archive: %s: %v", archiveName, err)}
		}
		defer func() {
			if err := gz.Close(); err != nil {
				l.logger.Warn("ingest.tar.gzip_close_error", "archive", archiveName, "error", err)
			}
		}()
		src = gz
	}

	tr := tar.NewReader(src)
	var inputs []record.Input
	var fileErrs []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fileErrs = append(fileErrs, fmt.Sprintf("Error reading TAR archive: %s: %v", archiveName, err))
			break
		}
		if hdr.Typeflag != tar.TypeReg || !wantedMember(hdr.Name) {
			continue
		}
		content, err := io.ReadAll(tr)
		if err != nil {
			fileErrs = append(fileErrs, fmt.Sprintf("Error reading %s in %s: %v", hdr.Name, archiveName, err))
			continue
		}
		in, errStr := ParseJSON(content, hdr.Name)
		if errStr != "" {
			fileErrs = append(fileErrs, errStr)
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, fileErrs
}

// wantedMember keeps .json archive members, skipping macOS resource forks.
func wantedMember(name string) bool {
	return strings.HasSuffix(name, ".json") && !strings.Contains(name, "__MACOSX")
}
