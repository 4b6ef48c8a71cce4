package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/RinzlerTron/Lylyt/pkg/domain/interfaces"
	"github.com/RinzlerTron/Lylyt/pkg/domain/model"
	"github.com/RinzlerTron/Lylyt/pkg/domain/types"
)

type zipExtractor struct{}

// New creates a ZIP archive extractor
func New() interfaces.Extractor {
	return &zipExtractor{}
}

// Extract unpacks all members of the ZIP archive at archivePath into destDir,
// creating it if needed. A corrupted archive or a member escaping destDir
// returns an error; destDir may then contain a partial extraction.
func (x *zipExtractor) Extract(ctx context.Context, archivePath, destDir string) (*model.ExtractResult, error) {
	logger := ctxlog.From(ctx)

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, goerr.Wrap(err, "opening archive", goerr.V("path", archivePath))
	}
	defer reader.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "creating extraction directory", goerr.V("dir", destDir))
	}

	var extractedFiles []string
	var totalSize int64

	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "extraction cancelled", goerr.V("dir", destDir))
		}

		if err := extractFile(file, destDir); err != nil {
			return nil, goerr.Wrap(err, "extracting archive member",
				goerr.V("member", file.Name),
				goerr.V("dir", destDir),
			)
		}

		extractedFiles = append(extractedFiles, file.Name)
		totalSize += int64(file.UncompressedSize64)
	}

	logger.Debug("Extracted archive",
		"path", archivePath,
		"dir", destDir,
		"file_count", len(extractedFiles),
		"total_size_bytes", totalSize,
	)

	return &model.ExtractResult{
		Dir:   destDir,
		Files: extractedFiles,
		Size:  totalSize,
	}, nil
}

// extractFile extracts a single member into destDir
func extractFile(file *zip.File, destDir string) error {
	// Security check: prevent path traversal attacks
	destPath := filepath.Join(destDir, file.Name)
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return goerr.Wrap(types.ErrUnsafeArchivePath, "checking member path",
			goerr.V("member", file.Name),
			goerr.V("resolved", destPath),
		)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(destPath, file.FileInfo().Mode())
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "opening member")
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return goerr.Wrap(err, "creating parent directories")
	}

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.FileInfo().Mode())
	if err != nil {
		return goerr.Wrap(err, "creating destination file")
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, rc); err != nil {
		return goerr.Wrap(err, "copying member content")
	}

	return nil
}
