package config

import "github.com/urfave/cli/v3"

// Notify holds release notification configuration
type Notify struct {
	SlackWebhookURL string
}

// Flags returns CLI flags for notification configuration
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook for release announcements",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("TAGREL_SLACK_WEBHOOK_URL"),
		},
	}
}
