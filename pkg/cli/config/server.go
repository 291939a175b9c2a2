package config

import "github.com/urfave/cli/v3"

// Server holds local index server configuration
type Server struct {
	Addr        string
	DataDir     string
	UploadToken string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("TAGREL_ADDR"),
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory for stored distributions",
			Value:       "tagrel-index",
			Destination: &c.DataDir,
			Sources:     cli.EnvVars("TAGREL_DATA_DIR"),
		},
		&cli.StringFlag{
			Name:        "upload-token",
			Usage:       "Token required for uploads (empty disables auth)",
			Destination: &c.UploadToken,
			Sources:     cli.EnvVars("TAGREL_UPLOAD_TOKEN"),
		},
	}
}
