// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/features/viewer"
	"github.com/robinaudi/deckhub/internal/app/store/content"
	"github.com/robinaudi/deckhub/internal/app/system/icons"
)

// Process-lifetime resources started here and torn down in Shutdown. The
// content watch outlives any single request, so it cannot hang off a request
// context.
var (
	contentHub  *viewer.Hub
	watchCancel context.CancelFunc
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// A registry regression would otherwise surface as silent icon fallbacks
	// on every slide.
	if err := icons.ValidateSeed(); err != nil {
		return fmt.Errorf("icon registry: %w", err)
	}

	store := content.New(deps.DeckHubMongoDatabase)

	// First run: write the default deck so the viewer and editor have
	// something to show.
	if _, ok, err := store.Get(ctx); err != nil {
		return fmt.Errorf("content read: %w", err)
	} else if !ok {
		logger.Info("no content document found, seeding default deck")
		if err := store.Seed(ctx); err != nil {
			return fmt.Errorf("content seed: %w", err)
		}
	}

	// Start the single content subscription and the hub that fans it out to
	// viewer sessions.
	watchCtx, cancel := context.WithCancel(context.Background())
	watchCancel = cancel
	contentHub = viewer.NewHub(logger)
	go contentHub.Run(watchCtx, store.Watch(watchCtx, logger))

	return nil
}
