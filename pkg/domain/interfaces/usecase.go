package interfaces

import (
	"context"

	"github.com/RinzlerTron/Lylyt/pkg/domain/model"
)

// SetupUseCase defines the interface for the model setup pipeline
type SetupUseCase interface {
	// Install downloads the given model, extracts it and places it into the
	// asset directory, replacing any previous install
	Install(ctx context.Context, spec *model.ModelSpec) (*model.InstallResult, error)
}
