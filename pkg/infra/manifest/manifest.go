package manifest

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/RinzlerTron/Lylyt/pkg/domain/model"
)

// FileName is the manifest file written next to the installed model directory
const FileName = "manifest.toml"

// Write stores the manifest in dir, replacing any previous one
func Write(dir string, m *model.Manifest) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return goerr.Wrap(err, "encoding manifest")
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "writing manifest", goerr.V("path", path))
	}

	return nil
}

// Read loads the manifest from dir. Returns (nil, nil) when no manifest
// exists, so callers can treat "nothing installed" as a normal state.
func Read(dir string) (*model.Manifest, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "reading manifest", goerr.V("path", path))
	}

	var m model.Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, goerr.Wrap(err, "parsing manifest", goerr.V("path", path))
	}

	return &m, nil
}
