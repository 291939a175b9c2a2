package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/mkymst/tagrel/pkg/cli/config"
)

func TestGitHub_OwnerRepo(t *testing.T) {
	tests := []struct {
		name      string
		repo      string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "Valid owner/name",
			repo:      "acme/widgets",
			wantOwner: "acme",
			wantRepo:  "widgets",
		},
		{
			name:    "Missing slash",
			repo:    "acme",
			wantErr: true,
		},
		{
			name:    "Empty owner",
			repo:    "/widgets",
			wantErr: true,
		},
		{
			name:    "Empty name",
			repo:    "acme/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.GitHub{Repo: tt.repo}

			owner, repo, err := cfg.OwnerRepo()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, owner).Equal(tt.wantOwner)
			gt.Value(t, repo).Equal(tt.wantRepo)
		})
	}
}
