package model

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/RinzlerTron/Lylyt/pkg/domain/types"
)

// DefaultModelID is the model installed when no ID is given. The small
// English model (~40MB) is the best fit for mobile devices.
const DefaultModelID = "small-en-us-0.15"

// ModelSpec describes a downloadable Vosk model
type ModelSpec struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	URL         string `toml:"url"`
	SizeLabel   string `toml:"size_label"`
	Description string `toml:"description,omitempty"`
}

// Catalog is an ordered set of model specs. Order is preserved for listing;
// lookups are by ID.
type Catalog []ModelSpec

var builtinCatalog = Catalog{
	{
		ID:          "small-en-us-0.15",
		Name:        "Small English (US)",
		URL:         "https://alphacephei.com/vosk/models/vosk-model-small-en-us-0.15.zip",
		SizeLabel:   "~40 MB",
		Description: "Lightweight US English model for mobile devices.",
	},
	{
		ID:          "en-us-0.22",
		Name:        "English (US)",
		URL:         "https://alphacephei.com/vosk/models/vosk-model-en-us-0.22.zip",
		SizeLabel:   "~1.8 GB",
		Description: "Accurate generic US English model for servers.",
	},
	{
		ID:          "en-us-0.22-lgraph",
		Name:        "English (US, dynamic graph)",
		URL:         "https://alphacephei.com/vosk/models/vosk-model-en-us-0.22-lgraph.zip",
		SizeLabel:   "~128 MB",
		Description: "US English with dynamic vocabulary reconfiguration.",
	},
	{
		ID:          "small-en-in-0.4",
		Name:        "Small English (Indian)",
		URL:         "https://alphacephei.com/vosk/models/vosk-model-small-en-in-0.4.zip",
		SizeLabel:   "~36 MB",
		Description: "Lightweight Indian English model.",
	},
	{
		ID:          "small-cn-0.22",
		Name:        "Small Chinese",
		URL:         "https://alphacephei.com/vosk/models/vosk-model-small-cn-0.22.zip",
		SizeLabel:   "~42 MB",
		Description: "Lightweight Mandarin model.",
	},
	{
		ID:          "small-ru-0.22",
		Name:        "Small Russian",
		URL:         "https://alphacephei.com/vosk/models/vosk-model-small-ru-0.22.zip",
		SizeLabel:   "~45 MB",
		Description: "Lightweight Russian model.",
	},
	{
		ID:          "small-fr-0.22",
		Name:        "Small French",
		URL:         "https://alphacephei.com/vosk/models/vosk-model-small-fr-0.22.zip",
		SizeLabel:   "~41 MB",
		Description: "Lightweight French model.",
	},
	{
		ID:          "small-de-0.15",
		Name:        "Small German",
		URL:         "https://alphacephei.com/vosk/models/vosk-model-small-de-0.15.zip",
		SizeLabel:   "~45 MB",
		Description: "Lightweight German model.",
	},
	{
		ID:          "small-es-0.42",
		Name:        "Small Spanish",
		URL:         "https://alphacephei.com/vosk/models/vosk-model-small-es-0.42.zip",
		SizeLabel:   "~39 MB",
		Description: "Lightweight Spanish model.",
	},
	{
		ID:          "small-hi-0.22",
		Name:        "Small Hindi",
		URL:         "https://alphacephei.com/vosk/models/vosk-model-small-hi-0.22.zip",
		SizeLabel:   "~42 MB",
		Description: "Lightweight Hindi model.",
	},
}

// BuiltinCatalog returns a copy of the built-in model presets
func BuiltinCatalog() Catalog {
	models := make(Catalog, len(builtinCatalog))
	copy(models, builtinCatalog)
	return models
}

// Find returns the spec with the given ID
func (c Catalog) Find(id string) (*ModelSpec, error) {
	for i := range c {
		if c[i].ID == id {
			spec := c[i]
			return &spec, nil
		}
	}
	return nil, goerr.Wrap(types.ErrModelNotFound, "looking up model", goerr.V("id", id))
}

// Merge returns a catalog with the given specs added. A spec whose ID matches
// an existing entry replaces it in place; new IDs are appended.
func (c Catalog) Merge(more ...ModelSpec) Catalog {
	merged := make(Catalog, len(c))
	copy(merged, c)

	for _, spec := range more {
		replaced := false
		for i := range merged {
			if merged[i].ID == spec.ID {
				merged[i] = spec
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, spec)
		}
	}
	return merged
}

type catalogFile struct {
	Models []ModelSpec `toml:"models"`
}

// LoadCatalog reads additional model specs from a TOML file
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "reading catalog file", goerr.V("path", path))
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "parsing catalog file", goerr.V("path", path))
	}

	for _, spec := range file.Models {
		if spec.ID == "" || spec.URL == "" {
			return nil, goerr.New("catalog entry requires id and url",
				goerr.V("path", path), goerr.V("entry", spec))
		}
	}

	return Catalog(file.Models), nil
}
