package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrUnexpectedStatus is returned when the model server responds with a non-2xx status
	ErrUnexpectedStatus = goerr.New("unexpected HTTP status")

	// ErrModelNotFound is returned when a model ID is not present in the catalog
	ErrModelNotFound = goerr.New("model not found in catalog")

	// ErrNoModelDir is returned when the extracted archive contains no model directory
	ErrNoModelDir = goerr.New("no model directory found in extracted archive")

	// ErrUnsafeArchivePath is returned when an archive member would escape the extraction directory
	ErrUnsafeArchivePath = goerr.New("archive member escapes extraction directory")
)
