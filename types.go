package casperfront

import (
	"time"

	"github.com/eringen/casperfront/views"
)

// Post is the core content type stored in SQLite and rendered by templates.
type Post = views.Post

// Settings are the site settings stored alongside the posts.
type Settings = views.Settings

// NavItem is one entry of the site navigation.
type NavItem = views.NavItem

// Member is an email subscriber.
type Member struct {
	ID        string
	Email     string
	Active    bool
	CreatedAt time.Time
}
