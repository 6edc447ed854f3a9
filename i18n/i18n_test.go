package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/message"
)

func TestLangResolvesKnownCodes(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "en"},
		{"de", "de"},
		{"de-AT", "de"},
		{"fr-CA", "fr"},
		{"es", "es"},
		{" fr ", "fr"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Lang(tt.code).Lang(), "code %q", tt.code)
	}
}

func TestLangFallsBackToEnglish(t *testing.T) {
	for _, code := range []string{"", "xx-invalid-!!", "ja", "zz"} {
		assert.Equal(t, DefaultLang, Lang(code).Lang(), "code %q", code)
	}
}

func TestGetReturnsTranslation(t *testing.T) {
	text := Get(Lang("de"))
	assert.Equal(t, "Neueste Beiträge", text("LATEST_POSTS"))
	assert.Equal(t, "Latest Posts", Get(Lang("en"))("LATEST_POSTS"))
}

func TestGetFallsBackToDefaultValue(t *testing.T) {
	text := Get(Lang("en"))
	assert.Equal(t, "My Blog", text("SITE_TITLE", "My Blog"))
	assert.Equal(t, "UNKNOWN_KEY", text("UNKNOWN_KEY"))
}

func TestSprintfFormatsWithLocale(t *testing.T) {
	assert.Equal(t, "A collection of 3 posts", Lang("en").Sprintf("POSTS_TAGGED", 3))
	assert.Equal(t, "Eine Sammlung von 3 Beiträgen", Lang("de").Sprintf("POSTS_TAGGED", 3))
}

func TestSprintfKeyFallback(t *testing.T) {
	assert.Equal(t, "2 drafts", Lang("fr").Sprintf(message.Key("DRAFT_COUNT", "%d drafts"), 2))
	assert.Equal(t, "A collection of 1 posts", Lang("xx").Sprintf(message.Key("POSTS_TAGGED", "%d posts"), 1))
}

func TestSupportedListsCatalogs(t *testing.T) {
	assert.Equal(t, []string{"de", "en", "es", "fr"}, Supported())
}

func TestLoadRequiresDefaultLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/de.json": {Data: []byte(`{"LATEST_POSTS": "Neueste"}`)},
	}
	_, err := load(fsys)
	require.Error(t, err)
}

func TestLoadRejectsBadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.json": {Data: []byte(`{not json`)},
	}
	_, err := load(fsys)
	require.Error(t, err)
}

func TestAllCatalogsShareKeys(t *testing.T) {
	en := Lang("en")
	for _, code := range Supported() {
		d := Lang(code)
		for key := range en.messages {
			assert.True(t, d.Has(key), "%s is missing %s", code, key)
		}
	}
}
