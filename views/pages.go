package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/casperfront/i18n"
	"github.com/eringen/casperfront/markdown"
)

const excerptLength = 200

// HomeAnchor is the element id the home page sticky nav tracks.
const HomeAnchor = "site-main"

// PostCard is one entry of the post feed.
func PostCard(post Post) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		link := post.Link
		if link == "" {
			link = "/" + post.Slug + "/"
		}
		h.raw("<article")
		if post.FeatureImage != "" {
			h.attr("class", "post-card post")
		} else {
			h.attr("class", "post-card post no-image")
		}
		h.raw(">")
		if post.FeatureImage != "" {
			h.raw(`<a class="post-card-image-link"`)
			h.href("href", link)
			h.raw(`><img class="post-card-image" loading="lazy"`)
			h.href("src", post.FeatureImage)
			h.attr("alt", post.Title)
			h.raw("/></a>")
		}
		h.raw(`<div class="post-card-content"><a class="post-card-content-link"`)
		h.href("href", link)
		h.raw(`><header class="post-card-header">`)
		if len(post.Tags) > 0 {
			h.raw(`<div class="post-card-primary-tag">`)
			h.text(post.Tags[0])
			h.raw("</div>")
		}
		h.raw(`<h2 class="post-card-title">`)
		h.text(post.Title)
		h.raw(`</h2></header><section class="post-card-excerpt"><p>`)
		h.text(postExcerpt(post))
		h.raw(`</p></section></a><footer class="post-card-meta"><time`)
		h.attr("datetime", post.Date)
		h.raw(">")
		h.text(post.Date)
		h.raw("</time></footer></div></article>")
	})
}

func postExcerpt(post Post) string {
	if post.Excerpt != "" {
		return post.Excerpt
	}
	return markdown.Excerpt(post.Content, excerptLength)
}

// PostFeed lists posts as cards.
func PostFeed(site Settings, posts []Post) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="inner posts"><div class="post-feed">`)
		if len(posts) == 0 {
			h.raw(`<p class="post-feed-empty">`)
			h.text(i18n.Get(i18n.Lang(site.Lang))("NO_POSTS"))
			h.raw("</p>")
		}
		for _, p := range posts {
			h.render(ctx, PostCard(p))
		}
		h.raw("</div></div>")
	})
}

// PostFull renders a complete post.
func PostFull(post Post) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="inner"><article class="post-full post"><header class="post-full-header">`)
		if len(post.Tags) > 0 {
			h.raw(`<section class="post-full-tags">`)
			for _, t := range post.Tags {
				h.raw("<a")
				h.href("href", TagURL(t))
				h.raw(">")
				h.text(t)
				h.raw("</a>")
			}
			h.raw("</section>")
		}
		h.raw(`<h1 class="post-full-title">`)
		h.text(post.Title)
		h.raw("</h1>")
		if post.Excerpt != "" {
			h.raw(`<p class="post-full-custom-excerpt">`)
			h.text(post.Excerpt)
			h.raw("</p>")
		}
		h.raw(`<div class="post-full-byline"><time`)
		h.attr("datetime", post.Date)
		h.raw(">")
		h.text(post.Date)
		h.raw("</time></div></header>")
		if post.FeatureImage != "" {
			h.raw(`<figure class="post-full-image"><img`)
			h.href("src", post.FeatureImage)
			h.attr("alt", post.Title)
			h.raw("/></figure>")
		}
		h.raw(`<section class="post-full-content"><div class="post-content">`)
		h.render(ctx, markdown.Render(post.Content))
		h.raw("</div></section></article></div>")
	})
}

func notice(page Page) templ.Component {
	if page.Notice == "" {
		return nil
	}
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="inner"><p class="site-notice" role="alert">`)
		h.text(i18n.Get(i18n.Lang(page.Settings.Lang))(page.Notice))
		h.raw("</p></div>")
	})
}

func concat(cs ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		for _, c := range cs {
			h.render(ctx, c)
		}
	})
}

func layoutFor(page Page) LayoutProps {
	return LayoutProps{
		Settings:   page.Settings,
		CSRFToken:  page.CSRFToken,
		Subscribed: page.Subscribed,
		Now:        page.Now,
	}
}

// Home is the front page with the post feed and the sticky nav.
func Home(page Page, posts []Post) templ.Component {
	p := layoutFor(page)
	p.Header = SiteHeader(page.Settings)
	p.Children = concat(notice(page), PostFeed(page.Settings, posts))
	p.IsHome = true
	p.Sticky = &StickyNav{AnchorRef: HomeAnchor}
	p.BodyClass = "home-template"
	p.Meta = PageMeta{URL: SiteRoot(page.Settings.ProcessEnv.SiteURL)}
	return Layout(p)
}

// PostPage renders a single post with links to its neighbours.
func PostPage(page Page, post Post, prev, next *Post) templ.Component {
	site := page.Settings
	p := layoutFor(page)
	p.Header = PostHeader(site)
	p.Children = concat(notice(page), PostFull(post))
	p.PreviewPosts = PreviewPosts(site, prev, next)
	p.BodyClass = "post-template"
	p.Meta = PageMeta{
		Title:       post.Title,
		Description: postExcerpt(post),
		URL:         PostURL(site.ProcessEnv.SiteURL, post.Slug),
		OGType:      "article",
		Image:       post.FeatureImage,
		JSONLD:      BlogPostingJsonLD(site, post),
	}
	return Layout(p)
}

// TagPage lists the posts carrying tag.
func TagPage(page Page, tag string, posts []Post) templ.Component {
	site := page.Settings
	p := layoutFor(page)
	p.Header = TagHeader(site, tag, len(posts))
	p.Children = concat(notice(page), PostFeed(site, posts))
	p.BodyClass = "tag-template"
	p.Meta = PageMeta{
		Title: tag + " - " + i18n.Get(i18n.Lang(site.Lang))("SITE_TITLE", site.Title),
		URL:   buildURL(site.ProcessEnv.SiteURL, "tag", tag),
	}
	return Layout(p)
}

// UnsubscribePage confirms an unsubscribe request.
func UnsubscribePage(page Page, ok bool) templ.Component {
	key := "UNSUBSCRIBE_UNKNOWN"
	if ok {
		key = "UNSUBSCRIBED"
	}
	return messagePage(page, "page-template", "", key, "")
}

// NotFound is the 404 page.
func NotFound(page Page) templ.Component {
	return messagePage(page, "error-template", "error-content", "PAGE_NOT_FOUND", "404")
}

// ServerError is the 500 page.
func ServerError(page Page) templ.Component {
	return messagePage(page, "error-template", "error-content", "SERVER_ERROR", "500")
}

func messagePage(page Page, bodyClass, errorClass, key, code string) templ.Component {
	site := page.Settings
	text := i18n.Get(i18n.Lang(site.Lang))
	p := layoutFor(page)
	p.Header = PostHeader(site)
	p.BodyClass = bodyClass
	p.ErrorClass = errorClass
	p.Meta = PageMeta{Title: text(key)}
	p.Children = component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="inner"><section class="error-message">`)
		if code != "" {
			h.raw(`<h1 class="error-code">`)
			h.text(code)
			h.raw("</h1>")
		}
		h.raw(`<p class="error-description">`)
		h.text(text(key))
		h.raw(`</p><a class="error-link" href="/">`)
		h.text(text("GO_TO_FRONT_PAGE"))
		h.raw(" &rarr;</a></section></div>")
	})
	return Layout(p)
}
