package config

import "github.com/urfave/cli/v3"

// Index holds package index configuration
type Index struct {
	URL   string
	Token string
}

// Flags returns CLI flags for index configuration
func (c *Index) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "index-url",
			Usage:       "Package index upload URL",
			Required:    true,
			Destination: &c.URL,
			Sources:     cli.EnvVars("TAGREL_INDEX_URL"),
		},
		&cli.StringFlag{
			Name:        "index-token",
			Usage:       "Package index API token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("TAGREL_INDEX_TOKEN"),
		},
	}
}
