// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, log level); AppConfig is everything
// specific to DeckHub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// Base URL for OAuth callbacks (e.g., "https://deck.robinaudi.com")
	BaseURL string

	// Google OAuth configuration
	GoogleClientID     string
	GoogleClientSecret string

	// Break-glass admin account for the password login form.
	// AdminPasswordHash is a bcrypt hash; leaving it empty disables the form.
	AdminEmail        string
	AdminPasswordHash string

	// PDF export fonts. Paths to TTF files with CJK coverage; blank falls
	// back to the embedded Go fonts.
	ExportFontPath     string
	ExportFontBoldPath string
}
