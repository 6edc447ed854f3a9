package casperfront

import (
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/labstack/echo/v4"

	"github.com/eringen/casperfront/i18n"
	"github.com/eringen/casperfront/markdown"
)

const feedSize = 20

func (a *App) renderRSS(c echo.Context, settings Settings, posts []Post) error {
	base := a.Config.URL
	feed := &feeds.Feed{
		Title:       i18n.Get(i18n.Lang(settings.Lang))("SITE_TITLE", settings.Title),
		Link:        &feeds.Link{Href: BuildURL(base)},
		Description: settings.Description,
		Created:     a.now(),
	}
	if len(posts) > feedSize {
		posts = posts[:feedSize]
	}
	for _, p := range posts {
		postURL := BuildURL(base, p.Slug)
		item := &feeds.Item{
			Id:          postURL,
			Title:       p.Title,
			Link:        &feeds.Link{Href: postURL},
			Description: p.Excerpt,
		}
		if item.Description == "" {
			item.Description = markdown.Excerpt(p.Content, 200)
		}
		if t, err := time.Parse("2006-01-02", p.Date); err == nil {
			item.Created = t
		}
		feed.Items = append(feed.Items, item)
	}
	rss, err := feed.ToRss()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}
