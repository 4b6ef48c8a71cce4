package usecase

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/RinzlerTron/Lylyt/pkg/domain/types"
)

// modelDirPrefix identifies the model directory inside the extracted archive.
// Vosk archives unpack to a single "vosk-model-*" directory.
const modelDirPrefix = "vosk-model"

// findModelDir returns the name of the top-level model directory in the
// staging directory. When multiple directories match the prefix, the
// lexicographically first wins; os.ReadDir returns entries sorted by name,
// which keeps the selection deterministic.
func findModelDir(stagingDir string) (string, error) {
	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		return "", goerr.Wrap(err, "reading extraction directory", goerr.V("dir", stagingDir))
	}

	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), modelDirPrefix) {
			return entry.Name(), nil
		}
	}

	return "", goerr.Wrap(types.ErrNoModelDir, "locating model directory",
		goerr.V("dir", stagingDir),
		goerr.V("prefix", modelDirPrefix),
	)
}

// installModelDir replaces dest with a copy of the tree at src. Any existing
// destination is deleted entirely first (full overwrite, no merge).
func installModelDir(src, dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return goerr.Wrap(err, "removing previous model directory", goerr.V("dest", dest))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return goerr.Wrap(err, "creating asset directory", goerr.V("dir", filepath.Dir(dest)))
	}

	if err := os.CopyFS(dest, os.DirFS(src)); err != nil {
		return goerr.Wrap(err, "copying model directory",
			goerr.V("src", src),
			goerr.V("dest", dest),
		)
	}

	return nil
}
