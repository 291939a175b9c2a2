package config

import (
	"github.com/urfave/cli/v3"

	"github.com/mkymst/tagrel/pkg/usecase"
)

// Project holds project layout configuration
type Project struct {
	Dir          string
	MetadataFile string
	DistDir      string
}

// Flags returns CLI flags for project configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Usage:       "Project directory",
			Value:       ".",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("TAGREL_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "metadata",
			Usage:       "Build-metadata file, relative to the project directory",
			Value:       usecase.DefaultMetadataFile,
			Destination: &c.MetadataFile,
			Sources:     cli.EnvVars("TAGREL_METADATA"),
		},
		&cli.StringFlag{
			Name:        "dist-dir",
			Usage:       "Output directory for built distributions",
			Value:       "dist",
			Destination: &c.DistDir,
			Sources:     cli.EnvVars("TAGREL_DIST_DIR"),
		},
	}
}
