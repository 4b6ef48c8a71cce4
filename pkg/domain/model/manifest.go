package model

import "time"

// Manifest records what is currently installed in the asset directory. It is
// written next to the model directory on every successful install and fully
// replaced on the next one.
type Manifest struct {
	ModelID     string    `toml:"model_id"`
	SourceURL   string    `toml:"source_url"`
	SizeBytes   int64     `toml:"size_bytes"`
	Revision    string    `toml:"revision"`
	InstalledAt time.Time `toml:"installed_at"`
}
