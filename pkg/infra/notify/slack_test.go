package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/infra/notify"
)

func TestSlackNotifier_NotifyRelease(t *testing.T) {
	ctx := context.Background()

	var payload struct {
		Text string `json:"text"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := notify.NewSlack(server.URL)

	info := &model.ReleaseInfo{Owner: "acme", Repo: "widgets", TagName: "v1.2.3"}
	result := &model.ReleaseResult{
		ID:      100,
		HTMLURL: "https://github.test/releases/100",
		Assets:  []string{"widgets-1.2.3.tar.gz"},
	}

	gt.NoError(t, notifier.NotifyRelease(ctx, info, result))

	gt.String(t, payload.Text).Contains("acme/widgets")
	gt.String(t, payload.Text).Contains("v1.2.3")
	gt.String(t, payload.Text).Contains("https://github.test/releases/100")
	gt.String(t, payload.Text).Contains("widgets-1.2.3.tar.gz")
}

func TestSlackNotifier_WebhookError(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no_service", http.StatusNotFound)
	}))
	defer server.Close()

	notifier := notify.NewSlack(server.URL)

	err := notifier.NotifyRelease(ctx,
		&model.ReleaseInfo{Owner: "acme", Repo: "widgets", TagName: "v1.2.3"},
		&model.ReleaseResult{ID: 1},
	)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to post Slack notification")
}
