package index_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/infra/index"
)

func testArtifact(t *testing.T) *model.Artifact {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo_pkg-1.0.tar.gz")
	gt.NoError(t, os.WriteFile(path, []byte("archive-bytes"), 0644))
	return &model.Artifact{
		Path: path,
		Name: "demo_pkg-1.0.tar.gz",
		Kind: model.ArtifactSdist,
		Size: 13,
	}
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	var gotAction, gotName, gotVersion, gotFile, gotContent string
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()

		gt.NoError(t, r.ParseMultipartForm(1<<20))
		gotAction = r.FormValue(":action")
		gotName = r.FormValue("name")
		gotVersion = r.FormValue("version")

		file, header, err := r.FormFile("content")
		gt.NoError(t, err)
		defer file.Close()
		gotFile = header.Filename
		content, err := io.ReadAll(file)
		gt.NoError(t, err)
		gotContent = string(content)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := index.NewClient(server.URL, "sekrit")
	project := &model.Project{Name: "demo-pkg", Version: "1.0"}

	gt.NoError(t, client.Upload(ctx, project, testArtifact(t)))

	gt.Value(t, gotAction).Equal("file_upload")
	gt.Value(t, gotName).Equal("demo-pkg")
	gt.Value(t, gotVersion).Equal("1.0")
	gt.Value(t, gotFile).Equal("demo_pkg-1.0.tar.gz")
	gt.Value(t, gotContent).Equal("archive-bytes")
	gt.Value(t, gotUser).Equal("__token__")
	gt.Value(t, gotPass).Equal("sekrit")
}

func TestClient_Upload_Rejected(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusForbidden)
	}))
	defer server.Close()

	client := index.NewClient(server.URL, "wrong")
	project := &model.Project{Name: "demo-pkg", Version: "1.0"}

	err := client.Upload(ctx, project, testArtifact(t))
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("index rejected upload")
}

func TestClient_Upload_MissingFile(t *testing.T) {
	ctx := context.Background()

	client := index.NewClient("http://localhost:1", "")
	artifact := &model.Artifact{Path: filepath.Join(t.TempDir(), "missing.tar.gz"), Name: "missing.tar.gz"}

	err := client.Upload(ctx, &model.Project{Name: "x", Version: "1"}, artifact)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to open artifact")
}
