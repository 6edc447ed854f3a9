package views

import (
	"context"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/casperfront/i18n"
)

// Layout wraps every page: document head, header, main content area,
// sticky nav on the home page, previous/next previews, footer and the
// member subscription UI.
func Layout(p LayoutProps) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		dict := i18n.Lang(p.Settings.Lang)
		text := i18n.Get(dict)
		site := p.Settings
		title := text("SITE_TITLE", site.Title)
		siteURL := site.ProcessEnv.SiteURL
		memberSubscriptions := site.ProcessEnv.MemberSubscriptions

		now := p.Now
		if now == nil {
			now = time.Now
		}

		h.raw("<!DOCTYPE html><html")
		h.attr("lang", dict.Lang())
		h.raw(">")
		h.render(ctx, DocumentHead(p.Meta, site, title))
		h.raw("<body")
		h.attr("class", p.BodyClass)
		h.raw(`><div class="site-wrapper">`)

		h.render(ctx, p.Header)

		h.raw(`<main id="site-main"`)
		h.attr("class", classNames("site-main", "outer", p.ErrorClass))
		if ref := stickyAnchor(p); ref != "" {
			h.attr("data-sticky-anchor", ref)
		}
		h.raw(">")
		h.render(ctx, p.Children)
		h.raw("</main>")

		if p.IsHome && p.Sticky != nil {
			h.render(ctx, StickyNavBar(classNames("site-nav", p.Sticky.State.CurrentClass), siteURL, site))
		}

		h.render(ctx, p.PreviewPosts)

		h.raw(`<footer class="site-footer outer"><div class="site-footer-content inner"><section class="copyright"><a`)
		h.href("href", SiteRoot(siteURL))
		h.raw(">")
		h.text(title)
		h.raw("</a> &copy; ")
		h.text(strconv.Itoa(now().Year()))
		h.raw(`</section><nav class="site-footer-nav"><a href="/">`)
		h.text(text("LATEST_POSTS"))
		h.raw("</a>")
		if u := FacebookURL(site.Facebook); u != "" {
			h.raw("<a")
			h.href("href", u)
			h.raw(` target="_blank" rel="noopener noreferrer">Facebook</a>`)
		}
		if u := TwitterURL(site.Twitter); u != "" {
			h.raw("<a")
			h.href("href", u)
			h.raw(` target="_blank" rel="noopener noreferrer">Twitter</a>`)
		}
		h.raw("</nav></div></footer></div>")

		if memberSubscriptions {
			h.render(ctx, SubscribeSuccess(title, site.Lang, p.Subscribed))
			h.render(ctx, SubscribeOverlay(site, title, p.CSRFToken))
		}

		h.raw(`<script src="/public/casper.js" defer></script></body></html>`)
	})
}

// stickyAnchor returns the anchor the sticky nav tracks, or "" when the
// page has no sticky nav.
func stickyAnchor(p LayoutProps) string {
	if p.IsHome && p.Sticky != nil {
		return p.Sticky.AnchorRef
	}
	return ""
}
