package config

import (
	"path/filepath"

	"github.com/urfave/cli/v3"
)

// Paths holds filesystem path configuration
type Paths struct {
	AssetsDir string
	WorkDir   string
}

// Flags returns CLI flags for path configuration
func (c *Paths) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "assets-dir",
			Usage:       "Android asset directory receiving the model",
			Value:       filepath.Join("..", "android", "app", "src", "main", "assets", "vosk"),
			Destination: &c.AssetsDir,
			Sources:     cli.EnvVars("LYLYT_ASSETS_DIR"),
		},
		&cli.StringFlag{
			Name:        "work-dir",
			Usage:       "Directory holding the downloaded archive and extraction directory",
			Value:       ".",
			Destination: &c.WorkDir,
			Sources:     cli.EnvVars("LYLYT_WORK_DIR"),
		},
	}
}
