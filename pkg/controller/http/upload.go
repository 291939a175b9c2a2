package http

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/utils/async"
)

// maxUploadSize caps the parsed multipart form at 128 MiB
const maxUploadSize = 128 << 20

// UploadHandler accepts twine-style distribution uploads
type UploadHandler struct {
	token string
	store interfaces.ArtifactStore
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(token string, store interfaces.ArtifactStore) *UploadHandler {
	return &UploadHandler{
		token: token,
		store: store,
	}
}

// Handle processes upload requests
func (h *UploadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	if !h.authorize(r) {
		logger.Warn("Rejected upload with invalid credentials")
		writeError(w, goerr.New("invalid credentials"), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		logger.Error("Failed to parse upload form", "error", err)
		writeError(w, goerr.Wrap(err, "invalid multipart form"), http.StatusBadRequest)
		return
	}

	project := r.FormValue("name")
	version := r.FormValue("version")
	if project == "" {
		writeError(w, goerr.New("missing name field"), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("content")
	if err != nil {
		writeError(w, goerr.Wrap(err, "missing content file"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	size, err := h.store.Save(ctx, project, header.Filename, file)
	if err != nil {
		logger.Error("Failed to store uploaded file",
			"error", err,
			"project", project,
			"file", header.Filename,
		)
		writeError(w, goerr.Wrap(err, "failed to store file"), http.StatusInternalServerError)
		return
	}

	receipt := &model.UploadReceipt{
		ID:      uuid.NewString(),
		Project: project,
		File:    header.Filename,
		Size:    size,
	}

	logger.Info("Stored uploaded distribution",
		"receipt_id", receipt.ID,
		"project", project,
		"version", version,
		"file", header.Filename,
		"size_bytes", size,
	)

	// Inventory logging happens off the request path
	async.Dispatch(ctx, func(ctx context.Context) error {
		files, err := h.store.ListProject(ctx, project)
		if err != nil {
			return goerr.Wrap(err, "failed to list project after upload", goerr.V("project", project))
		}
		ctxlog.From(ctx).Debug("Project inventory updated",
			"project", project,
			"file_count", len(files),
		)
		return nil
	})

	writeJSON(w, http.StatusCreated, receipt)
}

// authorize checks the upload token against HTTP basic credentials.
// With no token configured, every upload is accepted.
func (h *UploadHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return true
	}

	_, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(pass), []byte(h.token)) == 1
}
