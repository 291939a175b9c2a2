package http

import (
	"net/http"

	"github.com/mkymst/tagrel/pkg/domain/model"
	"github.com/mkymst/tagrel/pkg/domain/types"
)

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	status := &model.HealthStatus{
		Status:  "healthy",
		Service: types.AppName,
		Version: types.Version,
	}

	writeJSON(w, http.StatusOK, status)
}
