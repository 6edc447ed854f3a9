package casperfront

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/labstack/gommon/log"
)

// SiteConfig holds the server configuration. Site content (title, language,
// social handles) lives in the store; only environment flags live here.
type SiteConfig struct {
	URL  string `env:"CASPER_SITE_URL"` // Canonical URL (default "http://localhost:3000")
	Addr string `env:"CASPER_ADDR"`     // Listen address (default ":3000")

	DatabasePath string `env:"CASPER_DATABASE_PATH"` // SQLite path (default "data/casper.db")

	MemberSubscriptions bool `env:"CASPER_MEMBER_SUBSCRIPTIONS"` // Enable the subscribe form
	SubscribeLimit      int  `env:"CASPER_SUBSCRIBE_LIMIT"`      // Subscribe attempts per IP per minute (default 5)

	SessionSecret string `env:"CASPER_SESSION_SECRET"` // Required: session encryption secret
	CookieSecure  bool   `env:"CASPER_COOKIE_SECURE"`  // Set true for HTTPS

	CacheTTL time.Duration `env:"CASPER_CACHE_TTL"`  // Site cache TTL (default 5m)
	LogLevel string        `env:"CASPER_LOG_LEVEL"` // debug, info, warn, error (default info)

	Metrics bool `env:"CASPER_METRICS"` // Serve Prometheus metrics on /metrics
}

// LoadConfig reads SiteConfig from the environment and applies defaults.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("casperfront: parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/casper.db"
	}
	if c.SubscribeLimit <= 0 {
		c.SubscribeLimit = 5
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c SiteConfig) logLevel() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithViews replaces the built-in theme.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}

// WithClock sets the time source used for rendering and feeds.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
