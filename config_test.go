package casperfront

import (
	"os"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"CASPER_SITE_URL", "CASPER_ADDR", "CASPER_DATABASE_PATH", "CASPER_MEMBER_SUBSCRIPTIONS",
		"CASPER_SUBSCRIBE_LIMIT", "CASPER_CACHE_TTL", "CASPER_LOG_LEVEL", "CASPER_METRICS",
	} {
		t.Setenv(k, "") // restored after the test
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.URL != "http://localhost:3000" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.DatabasePath != "data/casper.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.SubscribeLimit != 5 {
		t.Errorf("SubscribeLimit = %d, want 5", cfg.SubscribeLimit)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
	}
	if cfg.MemberSubscriptions || cfg.Metrics {
		t.Error("subscriptions and metrics should be off by default")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CASPER_SITE_URL", "https://casper.example")
	t.Setenv("CASPER_MEMBER_SUBSCRIPTIONS", "true")
	t.Setenv("CASPER_SUBSCRIBE_LIMIT", "2")
	t.Setenv("CASPER_CACHE_TTL", "30s")
	t.Setenv("CASPER_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.URL != "https://casper.example" || !cfg.MemberSubscriptions {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SubscribeLimit != 2 || cfg.CacheTTL != 30*time.Second {
		t.Errorf("SubscribeLimit = %d, CacheTTL = %v", cfg.SubscribeLimit, cfg.CacheTTL)
	}
	if cfg.logLevel() != log.DEBUG {
		t.Errorf("logLevel = %v, want DEBUG", cfg.logLevel())
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("CASPER_CACHE_TTL", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig should reject an invalid duration")
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Lvl
	}{
		{"", log.INFO},
		{"WARN", log.WARN},
		{"error", log.ERROR},
		{"off", log.OFF},
		{"verbose", log.INFO},
	}
	for _, tt := range tests {
		if got := (SiteConfig{LogLevel: tt.in}).logLevel(); got != tt.want {
			t.Errorf("logLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOptions(t *testing.T) {
	now := func() time.Time { return time.Unix(0, 0) }
	called := false
	a := New(SiteConfig{}, WithStaticDir("assets"), WithClock(now), WithCustomRoutes(func(*App) { called = true }))

	if a.staticDir != "assets" {
		t.Errorf("staticDir = %q, want assets", a.staticDir)
	}
	if !a.now().Equal(time.Unix(0, 0)) {
		t.Error("WithClock was not applied")
	}
	if len(a.customRoutes) != 1 || called {
		t.Error("custom routes should be registered, not run, by New")
	}
	if a.Config.Addr != ":3000" {
		t.Errorf("New should apply defaults, Addr = %q", a.Config.Addr)
	}
}

func TestSetDefaultsClampsNonPositive(t *testing.T) {
	cfg := SiteConfig{SubscribeLimit: -3, CacheTTL: -time.Second}
	cfg.setDefaults()
	if cfg.SubscribeLimit != 5 {
		t.Errorf("SubscribeLimit = %d, want 5", cfg.SubscribeLimit)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
	}

	t.Setenv("CASPER_SUBSCRIBE_LIMIT", "-1")
	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.SubscribeLimit != 5 {
		t.Errorf("LoadConfig SubscribeLimit = %d, want 5", loaded.SubscribeLimit)
	}
}
