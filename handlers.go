package casperfront

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eringen/casperfront/views"
)

// notices maps the ?subscribe= query value to a message key.
var notices = map[string]string{
	"invalid": "INVALID_EMAIL",
	"limited": "TOO_MANY_ATTEMPTS",
}

// page builds the values every page shares. It consumes the subscribe
// flash, so call it once per request and before writing the response.
func (a *App) page(c echo.Context) (views.Page, error) {
	settings, err := a.Cache.Settings()
	if err != nil {
		return views.Page{}, err
	}
	settings.ProcessEnv = views.ProcessEnv{
		SiteURL:             a.Config.URL,
		MemberSubscriptions: a.Config.MemberSubscriptions,
	}
	p := views.Page{
		Settings:  settings,
		CSRFToken: CsrfToken(c),
		Notice:    notices[c.QueryParam("subscribe")],
		Now:       a.now,
	}
	if a.Config.MemberSubscriptions {
		p.Subscribed = popSubscribedFlash(c)
	}
	return p, nil
}

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListPosts(c.QueryParam("tag"))
	if err != nil {
		return err
	}
	p, err := a.page(c)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(p, posts))
}

func (a *App) handleTag(c echo.Context) error {
	tag := normalizeTag(c.Param("tag"))
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return echo.ErrNotFound
	}
	p, err := a.page(c)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Tag(p, tag, posts))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if errors.Is(err, ErrNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	prev, next, err := a.Cache.Adjacent(slug)
	if err != nil {
		return err
	}
	p, err := a.page(c)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Post(p, post, prev, next))
}

func (a *App) handleSubscribe(c echo.Context) error {
	if !a.Config.MemberSubscriptions {
		return echo.ErrNotFound
	}
	if !a.limiter.Allow(c.RealIP()) {
		a.metrics.subscribe("limited")
		return c.Redirect(http.StatusSeeOther, "/?subscribe=limited")
	}
	email := strings.TrimSpace(c.FormValue("email"))
	if !validEmail(email) {
		a.metrics.subscribe("invalid")
		return c.Redirect(http.StatusSeeOther, "/?subscribe=invalid")
	}
	member, err := a.Store.AddMember(email)
	if err != nil {
		return err
	}
	a.metrics.subscribe("ok")
	c.Logger().Infof("member %s subscribed", member.ID)
	if err := setSubscribedFlash(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// validEmail accepts a bare address such as "a@example.com", rejecting
// display names and anything without a dotted domain.
func validEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}

func (a *App) handleUnsubscribe(c echo.Context) error {
	ok := false
	if id, err := uuid.Parse(c.QueryParam("uuid")); err == nil {
		ok, err = a.Store.RemoveMember(id.String())
		if err != nil {
			return err
		}
		if ok {
			c.Logger().Infof("member %s unsubscribed", id)
		}
	}
	p, err := a.page(c)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Unsubscribe(p, ok))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts, tags)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	settings, err := a.Cache.Settings()
	if err != nil {
		return err
	}
	return a.renderRSS(c, settings, posts)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.ico")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

// errorPage builds a page for the error views. Settings that cannot be
// loaded fall back to defaults so the error page still renders.
func (a *App) errorPage(c echo.Context) views.Page {
	p, err := a.page(c)
	if err != nil {
		c.Logger().Errorf("load settings for error page: %v", err)
		p = views.Page{Settings: defaultSettings(), Now: a.now}
		p.Settings.ProcessEnv = views.ProcessEnv{SiteURL: a.Config.URL}
	}
	return p
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && c.Request().Method == http.MethodGet {
		if rerr := RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.errorPage(c))); rerr != nil {
			c.Logger().Errorf("render not found page: %v", rerr)
			a.Echo.DefaultHTTPErrorHandler(err, c)
		}
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		if rerr := RenderStatus(c, code, a.Views.ServerError(a.errorPage(c))); rerr != nil {
			c.Logger().Errorf("render server error page: %v", rerr)
			a.Echo.DefaultHTTPErrorHandler(err, c)
		}
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
