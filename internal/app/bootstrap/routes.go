// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authgooglefeature "github.com/robinaudi/deckhub/internal/app/features/authgoogle"
	cmsfeature "github.com/robinaudi/deckhub/internal/app/features/cms"
	downloadfeature "github.com/robinaudi/deckhub/internal/app/features/download"
	errorsfeature "github.com/robinaudi/deckhub/internal/app/features/errors"
	healthfeature "github.com/robinaudi/deckhub/internal/app/features/health"
	loginfeature "github.com/robinaudi/deckhub/internal/app/features/login"
	logoutfeature "github.com/robinaudi/deckhub/internal/app/features/logout"
	viewerfeature "github.com/robinaudi/deckhub/internal/app/features/viewer"
	"github.com/robinaudi/deckhub/internal/app/pdfexport"
	"github.com/robinaudi/deckhub/internal/app/store/content"
	"github.com/robinaudi/deckhub/internal/app/store/downloads"
	settingsstore "github.com/robinaudi/deckhub/internal/app/store/settings"
	"github.com/robinaudi/deckhub/internal/app/system/auth"
	"github.com/robinaudi/deckhub/internal/app/system/integrity"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed, so the content hub is already running.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	db := deps.DeckHubMongoDatabase
	contentStore := content.New(db)
	settingsStore := settingsstore.New(db)
	downloadsStore := downloads.New(db)

	guard := integrity.NewGuard(contentStore, logger)

	fonts, err := pdfexport.LoadFonts(appCfg.ExportFontPath, appCfg.ExportFontBoldPath)
	if err != nil {
		logger.Error("export font load failed", zap.Error(err))
		return nil, err
	}
	exporter := pdfexport.New(fonts, logger)

	gate := downloadfeature.NewGate(
		settingsStore,
		downloadsStore,
		downloadsStore,
		contentStore,
		exporter,
		downloadfeature.NewSessionOnlyIdentity(),
		pdfexport.Filename,
		logger,
	)

	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.DeckHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Authentication
	loginHandler := loginfeature.NewHandler(sessionMgr, appCfg.AdminEmail, appCfg.AdminPasswordHash, googleEnabled, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	googleHandler := authgooglefeature.NewHandler(sessionMgr, appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, appCfg.SessionKey, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Download gate
	downloadHandler := downloadfeature.NewHandler(gate, logger)
	r.Mount("/api/download", downloadfeature.Routes(downloadHandler))

	// Admin console
	cmsHandler := cmsfeature.NewHandler(contentStore, settingsStore, downloadsStore, errLog, logger)
	r.Mount("/cms", cmsfeature.Routes(cmsHandler, sessionMgr))

	// Viewer: the deck page, its live socket, and the search API
	viewerHandler := viewerfeature.NewHandler(contentHub, guard, logger)
	r.Mount("/api/search", viewerfeature.SearchRoutes(viewerHandler))
	r.Mount("/", viewerfeature.Routes(viewerHandler))

	return r, nil
}
