package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
)

type slackNotifier struct {
	webhookURL string
}

// NewSlack creates a notifier posting to a Slack incoming webhook
func NewSlack(webhookURL string) interfaces.Notifier {
	return &slackNotifier{webhookURL: webhookURL}
}

// NotifyRelease sends a notification about the created release
func (n *slackNotifier) NotifyRelease(ctx context.Context, info *model.ReleaseInfo, result *model.ReleaseResult) error {
	text := fmt.Sprintf("Released %s/%s %s", info.Owner, info.Repo, info.TagName)
	if result.HTMLURL != "" {
		text += "\n" + result.HTMLURL
	}
	for _, asset := range result.Assets {
		text += "\n• " + asset
	}

	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack notification",
			goerr.V("owner", info.Owner),
			goerr.V("repo", info.Repo),
			goerr.V("tag", info.TagName),
		)
	}

	return nil
}
