package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/RinzlerTron/Lylyt/pkg/domain/model"
)

// Model holds model selection configuration
type Model struct {
	ID          string
	URL         string
	CatalogPath string
}

// Flags returns CLI flags for model selection
func (c *Model) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "model",
			Usage:       "Model ID from the catalog",
			Value:       model.DefaultModelID,
			Destination: &c.ID,
			Sources:     cli.EnvVars("LYLYT_MODEL"),
		},
		&cli.StringFlag{
			Name:        "model-url",
			Usage:       "Download URL overriding the catalog entry",
			Destination: &c.URL,
			Sources:     cli.EnvVars("LYLYT_MODEL_URL"),
		},
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "TOML file with additional model definitions",
			Destination: &c.CatalogPath,
			Sources:     cli.EnvVars("LYLYT_MODEL_CATALOG"),
		},
	}
}

// Catalog returns the built-in catalog merged with the user catalog file,
// if one is configured.
func (c *Model) Catalog() (model.Catalog, error) {
	catalog := model.BuiltinCatalog()

	if c.CatalogPath != "" {
		extra, err := model.LoadCatalog(c.CatalogPath)
		if err != nil {
			return nil, goerr.Wrap(err, "loading user catalog")
		}
		catalog = catalog.Merge(extra...)
	}

	return catalog, nil
}

// Resolve returns the model spec selected by the configuration. A URL
// override replaces the catalog entry's URL.
func (c *Model) Resolve() (*model.ModelSpec, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, err
	}

	spec, err := catalog.Find(c.ID)
	if err != nil {
		return nil, err
	}

	if c.URL != "" {
		spec.URL = c.URL
	}

	return spec, nil
}
