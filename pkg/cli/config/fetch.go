package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

// Fetch holds download configuration
type Fetch struct {
	Timeout     time.Duration
	KeepArchive bool
}

// Flags returns CLI flags for download configuration
func (c *Fetch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Overall download timeout (0 disables)",
			Value:       0,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("LYLYT_TIMEOUT"),
		},
		&cli.BoolFlag{
			Name:        "keep-archive",
			Usage:       "Keep the downloaded archive after a successful install",
			Value:       false,
			Destination: &c.KeepArchive,
			Sources:     cli.EnvVars("LYLYT_KEEP_ARCHIVE"),
		},
	}
}
