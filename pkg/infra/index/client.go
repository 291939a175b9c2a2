package index

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/domain/types"
)

// tokenUser is the username the index expects for token authentication,
// mirroring the convention of PyPI-style indexes.
const tokenUser = "__token__"

type client struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewClient creates an upload client for the package index at url
func NewClient(url, token string) interfaces.IndexClient {
	return &client{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Upload sends one artifact to the index as a multipart form, with the
// field layout used by standard publishing tools.
func (c *client) Upload(ctx context.Context, project *model.Project, artifact *model.Artifact) error {
	f, err := os.Open(artifact.Path)
	if err != nil {
		return goerr.Wrap(err, "failed to open artifact", goerr.V("path", artifact.Path))
	}
	defer f.Close()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	fields := map[string]string{
		":action":          "file_upload",
		"protocol_version": "1",
		"name":             project.Name,
		"version":          project.Version,
	}
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			return goerr.Wrap(err, "failed to write form field", goerr.V("field", key))
		}
	}

	part, err := form.CreateFormFile("content", artifact.Name)
	if err != nil {
		return goerr.Wrap(err, "failed to create form file", goerr.V("file", artifact.Name))
	}
	if _, err := io.Copy(part, f); err != nil {
		return goerr.Wrap(err, "failed to copy artifact into form", goerr.V("file", artifact.Name))
	}
	if err := form.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return goerr.Wrap(err, "failed to create upload request", goerr.V("url", c.url))
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("User-Agent", types.AppName+"/"+types.Version)
	if c.token != "" {
		req.SetBasicAuth(tokenUser, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to upload artifact",
			goerr.V("url", c.url),
			goerr.V("file", artifact.Name),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return goerr.New("index rejected upload",
			goerr.V("status", resp.StatusCode),
			goerr.V("file", artifact.Name),
			goerr.V("response", string(msg)),
		)
	}

	return nil
}
