package views

import (
	"time"

	"github.com/a-h/templ"
)

// ProcessEnv carries the environment flags the theme needs at render time.
type ProcessEnv struct {
	SiteURL             string `json:"siteUrl"`
	MemberSubscriptions bool   `json:"memberSubscriptions"`
}

// NavItem is one entry of the site navigation.
type NavItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Settings holds the site-wide settings every page is rendered with.
type Settings struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Lang        string    `json:"lang"`
	Logo        string    `json:"logo"`
	Icon        string    `json:"icon"`
	CoverImage  string    `json:"cover_image"`
	Twitter     string    `json:"twitter"`
	Facebook    string    `json:"facebook"`
	Navigation  []NavItem `json:"navigation"`

	// ProcessEnv is filled from server config, never from imported content.
	ProcessEnv ProcessEnv `json:"-"`
}

// Post is the core content type stored in SQLite and rendered by templates.
type Post struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Tags         []string `json:"tags"`
	Excerpt      string   `json:"excerpt"`
	Link         string   `json:"-"`
	Slug         string   `json:"slug"`
	Content      string   `json:"content"`
	FeatureImage string   `json:"feature_image"`
	Published    bool     `json:"published"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
	JSONLD      string // defaults to the WebSite block
}

// StickyNavState is the scroll state of the sticky navigation bar.
type StickyNavState struct {
	CurrentClass string
}

// StickyNav ties the sticky bar to the element whose scroll position
// toggles it. AnchorRef is written as data-sticky-anchor on <main>.
type StickyNav struct {
	AnchorRef string
	State     StickyNavState
}

// LayoutProps is the input of Layout.
type LayoutProps struct {
	Settings     Settings
	Meta         PageMeta
	Header       templ.Component
	Children     templ.Component
	IsHome       bool
	Sticky       *StickyNav
	PreviewPosts templ.Component
	BodyClass    string
	ErrorClass   string

	// CSRFToken is posted back by the subscribe form.
	CSRFToken string
	// Subscribed marks the success banner active after a subscription.
	Subscribed bool
	// Now defaults to time.Now; the footer reads it once for the year.
	Now func() time.Time
}

// Page carries the per-request values every page shares.
type Page struct {
	Settings   Settings
	CSRFToken  string
	Subscribed bool
	// Notice is a short localized message key shown above the content.
	Notice string
	Now    func() time.Time
}
