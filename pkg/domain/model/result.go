package model

// FetchResult represents the result of a model archive download
type FetchResult struct {
	Path string // Path to the downloaded archive
	Size int64  // Bytes written to disk
}

// ExtractResult represents the result of an archive extraction
type ExtractResult struct {
	Dir   string   // Directory the archive was extracted into
	Files []string // List of extracted files
	Size  int64    // Total uncompressed size in bytes
}

// InstallResult represents the result of a completed model install
type InstallResult struct {
	Dest     string   // Final model directory in the asset tree
	ModelDir string   // Name of the top-level directory selected from the archive
	Manifest Manifest // Manifest written next to the installed model
}
