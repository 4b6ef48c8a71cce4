package interfaces

import (
	"context"

	"github.com/RinzlerTron/Lylyt/pkg/domain/model"
)

// Fetcher defines operations for downloading a remote model archive
type Fetcher interface {
	// Fetch streams the archive at url into the file at dest
	Fetch(ctx context.Context, url, dest string) (*model.FetchResult, error)
}

// Extractor defines operations for unpacking a local archive
type Extractor interface {
	// Extract unpacks all archive members into destDir, creating it if needed
	Extract(ctx context.Context, archivePath, destDir string) (*model.ExtractResult, error)
}
