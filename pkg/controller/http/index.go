package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
	"github.com/mkymst/tagrel/pkg/domain/model"
)

// IndexHandler serves the simple package listing
type IndexHandler struct {
	store interfaces.ArtifactStore
}

// NewIndexHandler creates a new IndexHandler
func NewIndexHandler(store interfaces.ArtifactStore) *IndexHandler {
	return &IndexHandler{store: store}
}

// HandleList returns every stored project with its files
func (h *IndexHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.store.List(ctx)
	if err != nil {
		ctxlog.From(ctx).Error("Failed to list index", "error", err)
		writeError(w, goerr.Wrap(err, "failed to list index"), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []model.IndexEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

// HandleProject returns the files stored for one project
func (h *IndexHandler) HandleProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	project := chi.URLParam(r, "project")

	files, err := h.store.ListProject(ctx, project)
	if err != nil {
		ctxlog.From(ctx).Error("Failed to list project", "error", err, "project", project)
		writeError(w, goerr.Wrap(err, "failed to list project"), http.StatusInternalServerError)
		return
	}
	if files == nil {
		writeError(w, goerr.New("project not found"), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, &model.IndexEntry{
		Project: project,
		Files:   files,
	})
}
