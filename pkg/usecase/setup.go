package usecase

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/RinzlerTron/Lylyt/pkg/domain/interfaces"
	"github.com/RinzlerTron/Lylyt/pkg/domain/model"
	"github.com/RinzlerTron/Lylyt/pkg/infra/manifest"
)

const (
	// ArchiveName is the temporary archive file created in the work directory
	ArchiveName = "vosk-model.zip"

	// StagingDirName is the temporary extraction directory in the work directory
	StagingDirName = "vosk_model"

	// InstalledDirName is the model directory name inside the asset directory
	InstalledDirName = "model"
)

type setupUseCase struct {
	fetcher   interfaces.Fetcher
	extractor interfaces.Extractor

	workDir     string
	assetsDir   string
	keepArchive bool
}

// Option is a functional option for setup pipeline configuration
type Option func(*setupUseCase)

// WithWorkDir sets the directory holding temporary artifacts (default: ".")
func WithWorkDir(dir string) Option {
	return func(uc *setupUseCase) {
		uc.workDir = dir
	}
}

// WithAssetsDir sets the asset directory receiving the model
func WithAssetsDir(dir string) Option {
	return func(uc *setupUseCase) {
		uc.assetsDir = dir
	}
}

// WithKeepArchive keeps the downloaded archive after a successful install
func WithKeepArchive(keep bool) Option {
	return func(uc *setupUseCase) {
		uc.keepArchive = keep
	}
}

// NewSetup creates a new instance of SetupUseCase
func NewSetup(fetcher interfaces.Fetcher, extractor interfaces.Extractor, opts ...Option) interfaces.SetupUseCase {
	uc := &setupUseCase{
		fetcher:   fetcher,
		extractor: extractor,
		workDir:   ".",
		assetsDir: filepath.Join("..", "android", "app", "src", "main", "assets", "vosk"),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Install runs fetch, extract, install and cleanup in order. Temporary
// artifacts are removed on every exit path, including failures; the asset
// directory is only touched after a successful extraction.
func (uc *setupUseCase) Install(ctx context.Context, spec *model.ModelSpec) (*model.InstallResult, error) {
	logger := ctxlog.From(ctx)

	archivePath := filepath.Join(uc.workDir, ArchiveName)
	stagingDir := filepath.Join(uc.workDir, StagingDirName)

	defer func() {
		if err := os.RemoveAll(stagingDir); err != nil {
			logger.Warn("Failed to remove extraction directory", "dir", stagingDir, "error", err)
		}
		if uc.keepArchive {
			return
		}
		if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove archive", "path", archivePath, "error", err)
		}
	}()

	logger.Info("Downloading model archive",
		"model", spec.ID,
		"url", spec.URL,
	)

	fetched, err := uc.fetcher.Fetch(ctx, spec.URL, archivePath)
	if err != nil {
		return nil, goerr.Wrap(err, "fetching model archive", goerr.V("model", spec.ID))
	}

	logger.Info("Extracting model archive",
		"path", fetched.Path,
		"dir", stagingDir,
	)

	extracted, err := uc.extractor.Extract(ctx, fetched.Path, stagingDir)
	if err != nil {
		return nil, goerr.Wrap(err, "extracting model archive", goerr.V("model", spec.ID))
	}

	modelDir, err := findModelDir(stagingDir)
	if err != nil {
		return nil, err
	}

	dest := filepath.Join(uc.assetsDir, InstalledDirName)
	if err := installModelDir(filepath.Join(stagingDir, modelDir), dest); err != nil {
		return nil, goerr.Wrap(err, "installing model directory", goerr.V("model", spec.ID))
	}

	m := model.Manifest{
		ModelID:     spec.ID,
		SourceURL:   spec.URL,
		SizeBytes:   extracted.Size,
		Revision:    uuid.NewString(),
		InstalledAt: time.Now().UTC(),
	}
	if err := manifest.Write(uc.assetsDir, &m); err != nil {
		return nil, goerr.Wrap(err, "recording install manifest", goerr.V("model", spec.ID))
	}

	logger.Info("Model installed",
		"model", spec.ID,
		"dest", dest,
		"size_bytes", extracted.Size,
		"file_count", len(extracted.Files),
		"revision", m.Revision,
	)

	return &model.InstallResult{
		Dest:     dest,
		ModelDir: modelDir,
		Manifest: m,
	}, nil
}
