// Package markdown renders post bodies to sanitized HTML as a templ component.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	engine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps(), gmhtml.WithXHTML()),
	)
	policy = newPolicy()
	// strict strips every tag; used for excerpts.
	strict = bluemonday.StrictPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.AllowAttrs("loading", "decoding").OnElements("img")
	return p
}

// ToHTML converts md to sanitized HTML.
func ToHTML(md string) ([]byte, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(md), &buf); err != nil {
		return nil, err
	}
	return policy.SanitizeBytes(buf.Bytes()), nil
}

// Render returns a templ.Component that writes md as HTML.
func Render(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := ToHTML(md)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
}

// Excerpt returns the first n characters of the plain text of md,
// cut on a word boundary and suffixed with an ellipsis when shortened.
func Excerpt(md string, n int) string {
	out, err := ToHTML(md)
	if err != nil {
		return ""
	}
	text := strict.Sanitize(string(out))
	text = strings.Join(strings.Fields(html.UnescapeString(text)), " ")
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:n])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, ".,;:") + "…"
}
