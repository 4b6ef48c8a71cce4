package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/RinzlerTron/Lylyt/pkg/cli/config"
	"github.com/RinzlerTron/Lylyt/pkg/infra/manifest"
)

func cmdModels() *cli.Command {
	var (
		modelCfg config.Model
		pathsCfg config.Paths
	)

	flags := append(modelCfg.Flags(), pathsCfg.Flags()...)

	return &cli.Command{
		Name:    "models",
		Aliases: []string{"m"},
		Usage:   "List available Vosk models",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := modelCfg.Catalog()
			if err != nil {
				return goerr.Wrap(err, "loading catalog")
			}

			installed, err := manifest.Read(pathsCfg.AssetsDir)
			if err != nil {
				return goerr.Wrap(err, "reading install manifest")
			}

			bold := color.New(color.Bold)
			green := color.New(color.FgGreen)

			for _, spec := range catalog {
				marker := "  "
				if installed != nil && installed.ModelID == spec.ID {
					marker = green.Sprint("* ")
				}
				bold.Printf("%s%-22s", marker, spec.ID)
				fmt.Printf(" %-30s %-10s %s\n", spec.Name, spec.SizeLabel, spec.Description)
			}

			if installed != nil {
				fmt.Printf("\nInstalled: %s (revision %s, %s)\n",
					installed.ModelID,
					installed.Revision,
					installed.InstalledAt.Format("2006-01-02 15:04:05 MST"),
				)
			}

			return nil
		},
	}
}
