package casperfront

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Go 1.24 is out!  ", "go-1-24-is-out"},
		{"---", ""},
		{"Ünïcode Title", "n-code-title"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", []string{"welcome"}, "https://example.com/welcome/"},
		{"https://example.com/blog", []string{"tag", "go"}, "https://example.com/blog/tag/go/"},
		{"https://example.com", []string{"/"}, "https://example.com/"},
		{"https://example.com", nil, "https://example.com"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"a", " ", "", " b "})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("FilterEmpty = %v, want [a b]", got)
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"reader@example.com", true},
		{"first.last+tag@mail.example.org", true},
		{"", false},
		{"reader", false},
		{"reader@localhost", false},
		{"Reader <reader@example.com>", false},
		{"reader@@example.com", false},
	}
	for _, tt := range tests {
		if got := validEmail(tt.in); got != tt.want {
			t.Errorf("validEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnsubscribeURL(t *testing.T) {
	got := UnsubscribeURL("https://example.com", "0b6f1c5e-8f1a-4c1e-9a53-3f0e2d6d7a10")
	want := "https://example.com/unsubscribe/?uuid=0b6f1c5e-8f1a-4c1e-9a53-3f0e2d6d7a10"
	if got != want {
		t.Errorf("UnsubscribeURL = %q, want %q", got, want)
	}
}
