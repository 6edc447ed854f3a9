package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/casperfront/i18n"
)

// DocumentHead renders <head> with SEO, OpenGraph and Twitter metadata.
func DocumentHead(meta PageMeta, site Settings, siteTitle string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		title := meta.Title
		if title == "" {
			title = siteTitle
		}
		description := meta.Description
		if description == "" {
			description = site.Description
		}
		canonical := meta.URL
		if canonical == "" {
			canonical = SiteRoot(site.ProcessEnv.SiteURL)
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		image := meta.Image
		if image == "" {
			image = site.CoverImage
		}
		jsonLD := meta.JSONLD
		if jsonLD == "" {
			jsonLD = WebsiteJsonLD(site)
		}

		h.raw(`<head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><title>`)
		h.text(title)
		h.raw("</title>")
		if description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", description)
			h.raw("/>")
		}
		h.raw(`<link rel="canonical"`)
		h.href("href", canonical)
		h.raw("/>")
		if site.Icon != "" {
			h.raw(`<link rel="icon"`)
			h.href("href", site.Icon)
			h.raw("/>")
		}
		h.raw(`<link rel="alternate" type="application/rss+xml"`)
		h.attr("title", siteTitle)
		h.raw(` href="/rss/"/><link rel="stylesheet" href="/public/casper.css"/>`)

		h.raw(`<meta property="og:site_name"`)
		h.attr("content", siteTitle)
		h.raw(`/><meta property="og:type"`)
		h.attr("content", ogType)
		h.raw(`/><meta property="og:title"`)
		h.attr("content", title)
		h.raw(`/><meta property="og:url"`)
		h.attr("content", canonical)
		h.raw("/>")
		if description != "" {
			h.raw(`<meta property="og:description"`)
			h.attr("content", description)
			h.raw("/>")
		}
		if image != "" {
			h.raw(`<meta property="og:image"`)
			h.attr("content", image)
			h.raw(`/><meta name="twitter:card" content="summary_large_image"/><meta name="twitter:image"`)
			h.attr("content", image)
			h.raw("/>")
		} else {
			h.raw(`<meta name="twitter:card" content="summary"/>`)
		}
		h.raw(`<meta name="twitter:title"`)
		h.attr("content", title)
		h.raw("/>")
		if site.Twitter != "" {
			h.raw(`<meta name="twitter:site"`)
			h.attr("content", "@"+TwitterHandle(site.Twitter))
			h.raw("/>")
		}
		h.raw(`<script type="application/ld+json">`)
		h.raw(jsonLD)
		h.raw("</script></head>")
	})
}

// siteLogo renders the logo image, or the title when no logo is set.
func siteLogo(h *htmlWriter, site Settings, title, class string) {
	h.raw("<a")
	h.attr("class", class)
	h.href("href", SiteRoot(site.ProcessEnv.SiteURL))
	h.raw(">")
	if site.Logo != "" {
		h.raw("<img")
		h.href("src", site.Logo)
		h.attr("alt", title)
		h.raw("/>")
	} else {
		h.text(title)
	}
	h.raw("</a>")
}

func navigation(h *htmlWriter, items []NavItem) {
	if len(items) == 0 {
		return
	}
	h.raw(`<ul class="nav" role="menu">`)
	for _, item := range items {
		h.raw(`<li role="menuitem"><a`)
		h.href("href", item.URL)
		h.raw(">")
		h.text(item.Label)
		h.raw("</a></li>")
	}
	h.raw("</ul>")
}

func subscribeButton(h *htmlWriter, site Settings, text i18n.Text) {
	if !site.ProcessEnv.MemberSubscriptions {
		return
	}
	h.raw(`<a class="subscribe-button" href="#subscribe">`)
	h.text(text("SUBSCRIBE"))
	h.raw("</a>")
}

// SiteHeader is the large cover header of the home page.
func SiteHeader(site Settings) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		text := i18n.Get(i18n.Lang(site.Lang))
		title := text("SITE_TITLE", site.Title)
		h.raw(`<header class="site-home-header"><div`)
		if site.CoverImage != "" {
			h.attr("class", "outer site-header-background responsive-header-img")
			h.attr("style", "background-image: "+cssURL(site.CoverImage))
		} else {
			h.attr("class", "outer site-header-background no-image")
		}
		h.raw(`><div class="inner"><div class="site-header-content"><h1 class="site-title">`)
		siteLogo(h, site, title, "site-logo-link")
		h.raw(`</h1>`)
		if site.Description != "" {
			h.raw(`<h2 class="site-description">`)
			h.text(site.Description)
			h.raw("</h2>")
		}
		h.raw(`</div><nav class="site-nav"><div class="site-nav-left">`)
		navigation(h, site.Navigation)
		h.raw(`</div><div class="site-nav-right">`)
		subscribeButton(h, site, text)
		h.raw("</div></nav></div></div></header>")
	})
}

// PostHeader is the compact navigation header of inner pages.
func PostHeader(site Settings) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		text := i18n.Get(i18n.Lang(site.Lang))
		title := text("SITE_TITLE", site.Title)
		h.raw(`<header class="site-header"><div class="outer site-nav-main"><div class="inner"><nav class="site-nav"><div class="site-nav-left">`)
		siteLogo(h, site, title, "site-nav-logo")
		navigation(h, site.Navigation)
		h.raw(`</div><div class="site-nav-right">`)
		subscribeButton(h, site, text)
		h.raw("</div></nav></div></div></header>")
	})
}

// TagHeader is the header of a tag archive.
func TagHeader(site Settings, tag string, count int) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		dict := i18n.Lang(site.Lang)
		h.render(ctx, PostHeader(site))
		h.raw(`<div class="outer site-header-background no-image"><div class="inner site-header-content"><h1 class="site-title">`)
		h.text(tag)
		h.raw(`</h1><h2 class="site-description">`)
		h.text(dict.Sprintf("POSTS_TAGGED", count))
		h.raw("</h2></div></div>")
	})
}

// StickyNavBar is the navigation bar shown once the reader scrolls past
// the sticky anchor.
func StickyNavBar(className, siteURL string, site Settings) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		text := i18n.Get(i18n.Lang(site.Lang))
		title := text("SITE_TITLE", site.Title)
		h.raw("<header")
		h.attr("class", className)
		h.raw(`><div class="inner"><nav class="site-nav-inner"><div class="site-nav-left"><a class="site-nav-logo"`)
		h.href("href", SiteRoot(siteURL))
		h.raw(">")
		h.text(title)
		h.raw("</a>")
		navigation(h, site.Navigation)
		h.raw(`</div><div class="site-nav-right">`)
		subscribeButton(h, site, text)
		h.raw("</div></nav></div></header>")
	})
}

// SubscribeOverlay is the email subscription modal, opened via #subscribe.
func SubscribeOverlay(site Settings, title, csrfToken string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		text := i18n.Get(i18n.Lang(site.Lang))
		h.raw(`<div class="subscribe-overlay" id="subscribe"><a class="subscribe-close-overlay" href="#"></a><a class="subscribe-close-button" href="#"></a><div class="subscribe-overlay-content">`)
		if site.Logo != "" {
			h.raw(`<img class="subscribe-overlay-logo"`)
			h.href("src", site.Logo)
			h.attr("alt", title)
			h.raw("/>")
		}
		h.raw(`<h1 class="subscribe-overlay-title">`)
		h.text(text("SUBSCRIBE_TO") + " " + title)
		h.raw(`</h1><p class="subscribe-overlay-description">`)
		h.text(text("SUBSCRIBE_OVERLAY"))
		h.raw(`</p><form class="subscribe-form" method="post" action="/subscribe/"><input type="hidden" name="_csrf"`)
		h.attr("value", csrfToken)
		h.raw(`/><input class="subscribe-email" type="email" name="email" required`)
		h.attr("placeholder", text("YOUR_EMAIL"))
		h.raw(`/><button class="button" type="submit">`)
		h.text(text("SUBSCRIBE"))
		h.raw("</button></form></div></div>")
	})
}

// SubscribeSuccess is the banner confirming a subscription. It is only
// visible when active.
func SubscribeSuccess(title, lang string, active bool) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		text := i18n.Get(i18n.Lang(lang))
		h.raw("<div")
		if active {
			h.attr("class", "subscribe-success-message active")
		} else {
			h.attr("class", "subscribe-success-message")
		}
		h.raw(`><a class="subscribe-close" href="#"></a>`)
		h.text(text("GREAT") + " " + text("SUBSCRIBED_TO") + " " + title + ".")
		h.raw("</div>")
	})
}

// PreviewPosts links to the next (newer) and previous (older) posts.
// It returns nil when there is neither.
func PreviewPosts(site Settings, prev, next *Post) templ.Component {
	if prev == nil && next == nil {
		return nil
	}
	return component(func(ctx context.Context, h *htmlWriter) {
		text := i18n.Get(i18n.Lang(site.Lang))
		h.raw(`<aside class="read-next outer"><div class="inner"><div class="read-next-feed">`)
		for _, side := range []struct {
			post  *Post
			label string
		}{
			{next, "NEXT_POST"},
			{prev, "PREVIOUS_POST"},
		} {
			if side.post == nil {
				continue
			}
			h.raw(`<article class="read-next-card"><header class="read-next-card-header"><small>`)
			h.text(text(side.label))
			h.raw("</small></header>")
			h.render(ctx, PostCard(*side.post))
			h.raw("</article>")
		}
		h.raw("</div></div></aside>")
	})
}
