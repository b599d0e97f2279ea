// internal/app/features/cms/settings.go
package cms

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/system/auth"
	"github.com/robinaudi/deckhub/internal/app/system/timeouts"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

// settingsRequest is the POST body for the download-mode change.
type settingsRequest struct {
	PDFDownloadMode string `json:"pdfDownloadMode"`
}

// ServeSettings handles POST /cms/settings.
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, publishResponse{Error: "無法解析內容。", Code: "invalid_body"})
		return
	}
	if !models.ValidDownloadMode(req.PDFDownloadMode) {
		writeJSON(w, http.StatusUnprocessableEntity, publishResponse{Error: "未知的下載模式。", Code: "invalid_mode"})
		return
	}

	settings := models.DeckSettings{PDFDownloadMode: req.PDFDownloadMode}
	if u, ok := auth.CurrentUser(r); ok {
		settings.UpdatedByEmail = u.Email
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Settings.Save(ctx, settings); err != nil {
		h.Log.Error("cms: save settings failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, publishResponse{Error: "儲存失敗。", Code: "save_failed"})
		return
	}

	h.Log.Info("download mode changed",
		zap.String("mode", req.PDFDownloadMode),
		zap.String("email", settings.UpdatedByEmail))
	writeJSON(w, http.StatusOK, publishResponse{OK: true})
}
