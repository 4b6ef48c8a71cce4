package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/RinzlerTron/Lylyt/pkg/cli/config"
	"github.com/RinzlerTron/Lylyt/pkg/usecase"
)

func cmdClean() *cli.Command {
	var pathsCfg config.Paths

	return &cli.Command{
		Name:  "clean",
		Usage: "Remove temporary artifacts left behind by an aborted setup",
		Flags: pathsCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			archivePath := filepath.Join(pathsCfg.WorkDir, usecase.ArchiveName)
			stagingDir := filepath.Join(pathsCfg.WorkDir, usecase.StagingDirName)

			if err := os.Remove(archivePath); err == nil {
				logger.Info("Removed archive", "path", archivePath)
			} else if !os.IsNotExist(err) {
				return goerr.Wrap(err, "removing archive", goerr.V("path", archivePath))
			}

			if _, err := os.Stat(stagingDir); err == nil {
				if err := os.RemoveAll(stagingDir); err != nil {
					return goerr.Wrap(err, "removing extraction directory", goerr.V("dir", stagingDir))
				}
				logger.Info("Removed extraction directory", "dir", stagingDir)
			}

			return nil
		},
	}
}
