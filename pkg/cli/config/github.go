package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub configuration
type GitHub struct {
	Repo  string
	Token string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Target repository as owner/name",
			Required:    true,
			Destination: &c.Repo,
			Sources:     cli.EnvVars("TAGREL_GITHUB_REPO", "GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("TAGREL_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
	}
}

// OwnerRepo splits the owner/name repository reference
func (c *GitHub) OwnerRepo() (string, string, error) {
	owner, repo, ok := strings.Cut(c.Repo, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", goerr.New("repository must be owner/name", goerr.V("repo", c.Repo))
	}
	return owner, repo, nil
}
