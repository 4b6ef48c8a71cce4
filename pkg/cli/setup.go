package cli

import (
	"context"
	"log/slog"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/RinzlerTron/Lylyt/pkg/cli/config"
	"github.com/RinzlerTron/Lylyt/pkg/infra/archive"
	"github.com/RinzlerTron/Lylyt/pkg/infra/fetch"
	"github.com/RinzlerTron/Lylyt/pkg/usecase"
	"github.com/RinzlerTron/Lylyt/pkg/utils/progress"
)

func cmdSetup() *cli.Command {
	var (
		modelCfg config.Model
		pathsCfg config.Paths
		fetchCfg config.Fetch
	)

	flags := append(modelCfg.Flags(), pathsCfg.Flags()...)
	flags = append(flags, fetchCfg.Flags()...)

	return &cli.Command{
		Name:    "setup",
		Aliases: []string{"s"},
		Usage:   "Download a Vosk model and install it into the app assets",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			spec, err := modelCfg.Resolve()
			if err != nil {
				return goerr.Wrap(err, "resolving model")
			}

			logger.Info("Setting up Vosk model",
				slog.String("model", spec.ID),
				slog.String("url", spec.URL),
				slog.String("assets_dir", pathsCfg.AssetsDir),
			)

			fetcher := fetch.New(fetch.WithTimeout(fetchCfg.Timeout))
			uc := usecase.NewSetup(fetcher, archive.New(),
				usecase.WithWorkDir(pathsCfg.WorkDir),
				usecase.WithAssetsDir(pathsCfg.AssetsDir),
				usecase.WithKeepArchive(fetchCfg.KeepArchive),
			)

			result, err := uc.Install(ctx, spec)
			if err != nil {
				return goerr.Wrap(err, "failed to install model")
			}

			color.New(color.FgGreen).Printf("Model %s (%s) installed to %s\n",
				result.Manifest.ModelID,
				progress.FormatBytes(result.Manifest.SizeBytes),
				result.Dest,
			)
			return nil
		},
	}
}
