// internal/app/features/cms/logs.go
package cms

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/system/timeouts"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

// ServeLogs handles GET /cms/logs: the 50 most recent download log entries
// as JSON, newest first, for the console's refresh button. A fetch failure
// degrades to an empty list.
func (h *Handler) ServeLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Downloads.Recent(ctx, 50)
	if err != nil {
		h.Log.Warn("cms: download log fetch failed", zap.Error(err))
		entries = []models.DownloadLogEntry{}
	}
	if entries == nil {
		entries = []models.DownloadLogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
