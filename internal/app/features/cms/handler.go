// internal/app/features/cms/handler.go

// Package cms is the admin console: the slide editor, the download-mode
// setting, and the download-log viewer. Every route requires a signed-in
// identity; the router enforces that, not the handlers.
package cms

import (
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	uierrors "github.com/robinaudi/deckhub/internal/app/features/errors"
	"github.com/robinaudi/deckhub/internal/app/store/content"
	"github.com/robinaudi/deckhub/internal/app/store/downloads"
	settingsstore "github.com/robinaudi/deckhub/internal/app/store/settings"
)

// Handler is the cms feature handler.
type Handler struct {
	Content   *content.Store
	Settings  *settingsstore.Store
	Downloads *downloads.Store
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger

	sanitize *bluemonday.Policy
}

// NewHandler constructs a cms Handler. Published text passes through a
// strict sanitizer: slides are authored as plain text and rendered into
// HTML, so no markup survives a publish.
func NewHandler(contentStore *content.Store, settings *settingsstore.Store,
	dls *downloads.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Content:   contentStore,
		Settings:  settings,
		Downloads: dls,
		ErrLog:    errLog,
		Log:       logger,
		sanitize:  bluemonday.StrictPolicy(),
	}
}
