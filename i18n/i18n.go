// Package i18n provides the language-keyed text lookup used by the theme.
//
// Catalogs are embedded JSON files, one per language, under locales/.
// A site language code is resolved to the closest catalog with an x/text
// matcher; anything unknown falls back to English.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLang is used when a language code is empty or unknown.
const DefaultLang = "en"

//go:embed locales/*.json
var localesFS embed.FS

// Dictionary holds the messages of one language.
type Dictionary struct {
	tag      language.Tag
	messages map[string]string
	printer  *message.Printer
}

// Lang returns the BCP 47 code of the dictionary, e.g. "de".
func (d Dictionary) Lang() string {
	if d.tag == language.Und {
		return DefaultLang
	}
	return d.tag.String()
}

// Has reports whether key is translated in this dictionary.
func (d Dictionary) Has(key string) bool {
	_, ok := d.messages[key]
	return ok
}

// Sprintf formats the message stored under key with args, using the
// dictionary's locale for number formatting. key is a catalog key such as
// "POSTS_TAGGED" or a message.Key with a fallback.
func (d Dictionary) Sprintf(key message.Reference, args ...any) string {
	p := d.printer
	if p == nil {
		p = message.NewPrinter(language.English)
	}
	return p.Sprintf(key, args...)
}

type bundle struct {
	dicts   []Dictionary
	matcher language.Matcher
	def     int
}

var defaultBundle = mustLoad(localesFS)

func mustLoad(fsys fs.FS) *bundle {
	b, err := load(fsys)
	if err != nil {
		panic(err)
	}
	return b
}

func load(fsys fs.FS) (*bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.json")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	cat := catalog.NewBuilder(catalog.Fallback(language.English))
	b := &bundle{def: -1}
	tags := make([]language.Tag, 0, len(paths))
	for _, p := range paths {
		code := strings.TrimSuffix(path.Base(p), ".json")
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", p, err)
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		messages := map[string]string{}
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		for key, msg := range messages {
			if err := cat.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", code, key, err)
			}
		}
		if code == DefaultLang {
			b.def = len(b.dicts)
		}
		tags = append(tags, tag)
		b.dicts = append(b.dicts, Dictionary{tag: tag, messages: messages})
	}
	if b.def < 0 {
		return nil, fmt.Errorf("default locale %q is missing", DefaultLang)
	}
	for i := range b.dicts {
		b.dicts[i].printer = message.NewPrinter(b.dicts[i].tag, message.Catalog(cat))
	}

	// The default language goes first so that language.No matches land on it.
	ordered := append([]language.Tag{tags[b.def]}, tags[:b.def]...)
	ordered = append(ordered, tags[b.def+1:]...)
	b.matcher = language.NewMatcher(ordered)
	return b, nil
}

func (b *bundle) lookup(code string) Dictionary {
	code = strings.TrimSpace(code)
	if code == "" {
		return b.dicts[b.def]
	}
	tag, err := language.Parse(code)
	if err != nil {
		return b.dicts[b.def]
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return b.dicts[b.def]
	}
	// Undo the reordering done in load.
	switch {
	case idx == 0:
		return b.dicts[b.def]
	case idx <= b.def:
		return b.dicts[idx-1]
	default:
		return b.dicts[idx]
	}
}

// Lang resolves a site language code to its dictionary.
func Lang(code string) Dictionary {
	return defaultBundle.lookup(code)
}

// Supported returns the language codes with a built-in catalog.
func Supported() []string {
	out := make([]string, 0, len(defaultBundle.dicts))
	for _, d := range defaultBundle.dicts {
		out = append(out, d.Lang())
	}
	sort.Strings(out)
	return out
}

// Text looks up a message; when the key is not translated it returns the
// first fallback, or the key itself.
type Text func(key string, fallback ...string) string

// Get binds a lookup function to dict.
func Get(dict Dictionary) Text {
	return func(key string, fallback ...string) string {
		if msg, ok := dict.messages[key]; ok {
			return msg
		}
		if len(fallback) > 0 {
			return fallback[0]
		}
		return key
	}
}
