// Package casperfront is a server-rendered blog front-end built with Go,
// Echo, and templ. It serves a Casper-style theme over posts, site settings
// and members kept in SQLite, with an optional email subscription flow.
//
// Pages are rendered through the ViewFuncs struct; the built-in theme lives
// in the views package and can be replaced with WithViews.
package casperfront

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/casperfront/views"
)

// ViewFuncs holds the templ components the server calls when rendering
// pages.
type ViewFuncs struct {
	Home        func(page views.Page, posts []Post) templ.Component
	Post        func(page views.Page, post Post, prev, next *Post) templ.Component
	Tag         func(page views.Page, tag string, posts []Post) templ.Component
	Unsubscribe func(page views.Page, ok bool) templ.Component
	NotFound    func(page views.Page) templ.Component
	ServerError func(page views.Page) templ.Component
}

// DefaultViews returns the built-in Casper theme.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		Post:        views.PostPage,
		Tag:         views.TagPage,
		Unsubscribe: views.UnsubscribePage,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// App is the central casperfront application. It wires together the store,
// cache, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *SiteCache
	Views  ViewFuncs

	limiter      *SubscribeLimiter
	metrics      *Metrics
	customRoutes []func(*App)
	staticDir    string
	now          func() time.Time
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     DefaultViews(),
		staticDir: "public",
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the database and sets up the cache, middleware and routes.
// Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("casperfront: SessionSecret is required")
	}

	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(a.Config.logLevel())

	if a.Store == nil {
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("casperfront: init store: %w", err)
		}
		a.Store = store
	}

	a.Cache = NewSiteCache(a.Store, a.Config.CacheTTL)
	a.limiter = NewSubscribeLimiter(a.Config.SubscribeLimit, time.Minute)
	if a.Config.Metrics {
		a.metrics = newMetrics()
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and starts the server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("casperfront listening on %s (site %s)", a.Config.Addr, a.Config.URL)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded theme assets are served under /public/ ahead of the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/casper.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/casper.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.ico", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	if a.metrics != nil {
		e.GET(metricsPath, a.metrics.handler())
	}
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/rss/", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/tag/:tag/", a.handleTag)
	e.POST("/subscribe/", a.handleSubscribe)
	e.GET("/unsubscribe/", a.handleUnsubscribe)
	e.GET("/:slug/", a.handlePost)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Close()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
