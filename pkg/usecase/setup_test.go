package usecase_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/RinzlerTron/Lylyt/pkg/domain/interfaces"
	"github.com/RinzlerTron/Lylyt/pkg/domain/model"
	"github.com/RinzlerTron/Lylyt/pkg/domain/types"
	"github.com/RinzlerTron/Lylyt/pkg/infra/archive"
	"github.com/RinzlerTron/Lylyt/pkg/infra/fetch"
	"github.com/RinzlerTron/Lylyt/pkg/infra/manifest"
	"github.com/RinzlerTron/Lylyt/pkg/usecase"
)

var modelFixture = map[string]string{
	"vosk-model-small-en-us-0.15/README":         "Vosk small English model",
	"vosk-model-small-en-us-0.15/am/final.mdl":   "acoustic-model-data",
	"vosk-model-small-en-us-0.15/conf/mfcc.conf": "--sample-frequency=16000",
	"vosk-model-small-en-us-0.15/graph/Gr.fst":   "graph-data",
}

func TestSetup_Install(t *testing.T) {
	ctx := context.Background()

	server := newModelServer(t, buildZip(t, modelFixture))
	defer server.Close()

	workDir := t.TempDir()
	assetsDir := filepath.Join(t.TempDir(), "android", "app", "src", "main", "assets", "vosk")

	uc := newSetup(workDir, assetsDir)
	spec := testSpec(server.URL)

	result, err := uc.Install(ctx, spec)
	gt.NoError(t, err)
	gt.Value(t, result.ModelDir).Equal("vosk-model-small-en-us-0.15")
	gt.Value(t, result.Dest).Equal(filepath.Join(assetsDir, "model"))

	// All files from the archive's model subdirectory are installed
	for name, content := range modelFixture {
		rel, err := filepath.Rel("vosk-model-small-en-us-0.15", name)
		gt.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(result.Dest, rel))
		gt.NoError(t, err)
		gt.Value(t, string(data)).Equal(content)
	}

	// Manifest records the install
	m, err := manifest.Read(assetsDir)
	gt.NoError(t, err)
	gt.Value(t, m).NotNil()
	gt.Value(t, m.ModelID).Equal(spec.ID)
	gt.Value(t, m.SourceURL).Equal(spec.URL)
	gt.Value(t, m.Revision).NotEqual("")
	gt.Number(t, m.SizeBytes).Greater(int64(0))

	// Temporary artifacts are removed
	assertNotExist(t, filepath.Join(workDir, usecase.ArchiveName))
	assertNotExist(t, filepath.Join(workDir, usecase.StagingDirName))
}

func TestSetup_Install_ReplacesPreviousInstall(t *testing.T) {
	ctx := context.Background()

	server := newModelServer(t, buildZip(t, modelFixture))
	defer server.Close()

	workDir := t.TempDir()
	assetsDir := t.TempDir()
	dest := filepath.Join(assetsDir, "model")

	// Simulate a stale previous install with a file the new model doesn't have
	gt.NoError(t, os.MkdirAll(filepath.Join(dest, "old"), 0755))
	gt.NoError(t, os.WriteFile(filepath.Join(dest, "old", "stale.bin"), []byte("old"), 0644))

	uc := newSetup(workDir, assetsDir)

	result, err := uc.Install(ctx, testSpec(server.URL))
	gt.NoError(t, err)

	// Full overwrite, no merge: stale content is gone
	assertNotExist(t, filepath.Join(dest, "old"))
	_, err = os.Stat(filepath.Join(result.Dest, "README"))
	gt.NoError(t, err)
}

func TestSetup_Install_Idempotent(t *testing.T) {
	ctx := context.Background()

	server := newModelServer(t, buildZip(t, modelFixture))
	defer server.Close()

	workDir := t.TempDir()
	assetsDir := t.TempDir()
	uc := newSetup(workDir, assetsDir)
	spec := testSpec(server.URL)

	first, err := uc.Install(ctx, spec)
	gt.NoError(t, err)

	second, err := uc.Install(ctx, spec)
	gt.NoError(t, err)

	gt.Value(t, second.Dest).Equal(first.Dest)
	gt.Value(t, second.ModelDir).Equal(first.ModelDir)
	gt.Value(t, second.Manifest.SizeBytes).Equal(first.Manifest.SizeBytes)

	// End state equals a single run
	entries, err := os.ReadDir(second.Dest)
	gt.NoError(t, err)
	gt.Number(t, len(entries)).Equal(4) // README, am, conf, graph
}

func TestSetup_Install_FetchFailure(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	workDir := t.TempDir()
	assetsDir := t.TempDir()
	uc := newSetup(workDir, assetsDir)

	result, err := uc.Install(ctx, testSpec(server.URL))
	gt.Error(t, err)
	gt.Value(t, result).Nil()
	gt.Value(t, errors.Is(err, types.ErrUnexpectedStatus)).Equal(true)

	// Destination is never touched on a failed fetch
	assertNotExist(t, filepath.Join(assetsDir, "model"))
	assertNotExist(t, filepath.Join(assetsDir, manifest.FileName))

	// Cleanup still ran
	assertNotExist(t, filepath.Join(workDir, usecase.ArchiveName))
	assertNotExist(t, filepath.Join(workDir, usecase.StagingDirName))
}

func TestSetup_Install_CorruptArchive(t *testing.T) {
	ctx := context.Background()

	server := newModelServer(t, []byte("this is not a zip archive"))
	defer server.Close()

	workDir := t.TempDir()
	assetsDir := t.TempDir()
	uc := newSetup(workDir, assetsDir)

	result, err := uc.Install(ctx, testSpec(server.URL))
	gt.Error(t, err)
	gt.Value(t, result).Nil()

	assertNotExist(t, filepath.Join(assetsDir, "model"))
	assertNotExist(t, filepath.Join(workDir, usecase.ArchiveName))
	assertNotExist(t, filepath.Join(workDir, usecase.StagingDirName))
}

func TestSetup_Install_NoModelDir(t *testing.T) {
	ctx := context.Background()

	server := newModelServer(t, buildZip(t, map[string]string{
		"something-else/README": "not a vosk model",
	}))
	defer server.Close()

	workDir := t.TempDir()
	assetsDir := t.TempDir()
	uc := newSetup(workDir, assetsDir)

	result, err := uc.Install(ctx, testSpec(server.URL))
	gt.Error(t, err)
	gt.Value(t, result).Nil()
	gt.Value(t, errors.Is(err, types.ErrNoModelDir)).Equal(true)

	assertNotExist(t, filepath.Join(assetsDir, "model"))
}

func TestSetup_Install_MultipleModelDirs(t *testing.T) {
	ctx := context.Background()

	server := newModelServer(t, buildZip(t, map[string]string{
		"vosk-model-small-zz-9.99/README": "later",
		"vosk-model-small-aa-0.01/README": "earlier",
	}))
	defer server.Close()

	workDir := t.TempDir()
	assetsDir := t.TempDir()
	uc := newSetup(workDir, assetsDir)

	// Lexicographically first directory wins
	result, err := uc.Install(ctx, testSpec(server.URL))
	gt.NoError(t, err)
	gt.Value(t, result.ModelDir).Equal("vosk-model-small-aa-0.01")

	data, err := os.ReadFile(filepath.Join(result.Dest, "README"))
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal("earlier")
}

func TestSetup_Install_KeepArchive(t *testing.T) {
	ctx := context.Background()

	server := newModelServer(t, buildZip(t, modelFixture))
	defer server.Close()

	workDir := t.TempDir()
	assetsDir := t.TempDir()

	fetcher := fetch.New(fetch.WithProgressOutput(io.Discard))
	uc := usecase.NewSetup(fetcher, archive.New(),
		usecase.WithWorkDir(workDir),
		usecase.WithAssetsDir(assetsDir),
		usecase.WithKeepArchive(true),
	)

	_, err := uc.Install(ctx, testSpec(server.URL))
	gt.NoError(t, err)

	_, err = os.Stat(filepath.Join(workDir, usecase.ArchiveName))
	gt.NoError(t, err)
	assertNotExist(t, filepath.Join(workDir, usecase.StagingDirName))
}

// newSetup wires the real fetcher and extractor with test paths
func newSetup(workDir, assetsDir string) interfaces.SetupUseCase {
	fetcher := fetch.New(fetch.WithProgressOutput(io.Discard))
	return usecase.NewSetup(fetcher, archive.New(),
		usecase.WithWorkDir(workDir),
		usecase.WithAssetsDir(assetsDir),
	)
}

func testSpec(url string) *model.ModelSpec {
	return &model.ModelSpec{
		ID:   "small-en-us-0.15",
		Name: "Small English (US)",
		URL:  url,
	}
}

func newModelServer(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write(body)
	}))
}

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	for name, content := range files {
		writer, err := zipWriter.Create(name)
		gt.NoError(t, err)

		_, err = writer.Write([]byte(content))
		gt.NoError(t, err)
	}
	gt.NoError(t, zipWriter.Close())

	return buf.Bytes()
}

func assertNotExist(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	gt.Value(t, os.IsNotExist(err)).Equal(true)
}
