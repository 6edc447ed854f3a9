package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"
)

const (
	twitterBase  = "https://twitter.com/"
	facebookBase = "https://www.facebook.com/"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// SiteRoot resolves siteURL against an empty reference: path and query
// stay, the fragment goes, and an empty path becomes "/". An empty or
// unparsable URL yields "/".
func SiteRoot(siteURL string) string {
	if strings.TrimSpace(siteURL) == "" {
		return "/"
	}
	u, err := url.Parse(siteURL)
	if err != nil {
		return "/"
	}
	u = u.ResolveReference(&url.URL{})
	u.Fragment, u.RawFragment = "", ""
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// TwitterHandle strips one leading "@" from a Twitter handle.
func TwitterHandle(handle string) string {
	return strings.TrimPrefix(handle, "@")
}

// FacebookHandle strips one leading "/" from a Facebook page path.
func FacebookHandle(handle string) string {
	return strings.TrimPrefix(handle, "/")
}

// TwitterURL returns the profile URL for handle, or "" when handle is empty.
func TwitterURL(handle string) string {
	if handle == "" {
		return ""
	}
	return twitterBase + TwitterHandle(handle)
}

// FacebookURL returns the page URL for handle, or "" when handle is empty.
func FacebookURL(handle string) string {
	if handle == "" {
		return ""
	}
	return facebookBase + FacebookHandle(handle)
}

var cssStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `, "\r", `\d `, "\f", `\c `)

// cssURL returns a quoted CSS url() for u. Unsafe schemes are replaced
// and the value cannot end the string early.
func cssURL(u string) string {
	return `url("` + cssStringEscaper.Replace(string(templ.URL(u))) + `")`
}

// PostURL returns the canonical URL of a post.
func PostURL(siteURL, slug string) string {
	return buildURL(siteURL, slug)
}

// TagURL returns the archive path of a tag.
func TagURL(tag string) string {
	return "/tag/" + url.PathEscape(tag) + "/"
}

// classNames joins the non-empty classes with single spaces.
func classNames(classes ...string) string {
	var out []string
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for the site.
func WebsiteJsonLD(s Settings) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     s.Title,
		"url":      SiteRoot(s.ProcessEnv.SiteURL),
	}
	if s.Description != "" {
		data["description"] = s.Description
	}
	var sameAs []string
	if u := TwitterURL(s.Twitter); u != "" {
		sameAs = append(sameAs, u)
	}
	if u := FacebookURL(s.Facebook); u != "" {
		sameAs = append(sameAs, u)
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	return marshalJsonLD(data)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(s Settings, post Post) string {
	postURL := PostURL(s.ProcessEnv.SiteURL, post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": post.Date,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  s.Title,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.FeatureImage != "" {
		data["image"] = post.FeatureImage
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	return marshalJsonLD(data)
}

func marshalJsonLD(data map[string]interface{}) string {
	// json.Marshal escapes <, > and &, so the output is safe inside <script>.
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
