package interfaces

import (
	"context"

	"github.com/mkymst/tagrel/pkg/domain/model"
)

// Notifier announces a completed release
type Notifier interface {
	// NotifyRelease sends a notification about the created release
	NotifyRelease(ctx context.Context, info *model.ReleaseInfo, result *model.ReleaseResult) error
}
