package casperfront

import (
	"sync"
	"time"
)

// SiteCache is an in-memory cache of published posts, tags and site
// settings with TTL.
type SiteCache struct {
	mu       sync.RWMutex
	posts    []Post
	tags     []string
	settings Settings
	fetched  time.Time
	ttl      time.Duration
	store    *Store
}

// NewSiteCache creates a SiteCache backed by the given Store.
func NewSiteCache(s *Store, ttl time.Duration) *SiteCache {
	return &SiteCache{store: s, ttl: ttl}
}

func (c *SiteCache) valid() bool {
	return !c.fetched.IsZero() && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *SiteCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.tags = nil
	c.settings = Settings{}
	c.fetched = time.Time{}
	c.mu.Unlock()
}

func (c *SiteCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListPosts("")
	if err != nil {
		return err
	}
	tags, err := c.store.ListTags()
	if err != nil {
		return err
	}
	settings, err := c.store.GetSettings()
	if err != nil {
		return err
	}
	c.posts = posts
	c.tags = tags
	c.settings = settings
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns a consistent snapshot after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *SiteCache) ensureLoaded() ([]Post, []string, Settings, error) {
	c.mu.RLock()
	if c.valid() {
		posts, tags, settings := c.posts, c.tags, c.settings
		c.mu.RUnlock()
		return posts, tags, settings, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, Settings{}, err
	}
	return c.posts, c.tags, c.settings, nil
}

// ListPosts returns published posts, optionally filtered by tag.
func (c *SiteCache) ListPosts(tag string) ([]Post, error) {
	posts, _, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return posts, nil
	}
	normalized := normalizeTag(tag)
	var filtered []Post
	for _, p := range posts {
		for _, t := range p.Tags {
			if normalizeTag(t) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

// ListTags returns all unique tags from published posts.
func (c *SiteCache) ListTags() ([]string, error) {
	_, tags, _, err := c.ensureLoaded()
	return tags, err
}

// Settings returns the cached site settings.
func (c *SiteCache) Settings() (Settings, error) {
	_, _, settings, err := c.ensureLoaded()
	return settings, err
}

// GetPost returns a single published post by slug from the cache.
func (c *SiteCache) GetPost(slug string) (Post, error) {
	posts, _, _, err := c.ensureLoaded()
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// Adjacent returns the published posts before (older) and after (newer)
// slug in date order. Either may be nil.
func (c *SiteCache) Adjacent(slug string) (prev, next *Post, err error) {
	posts, _, _, err := c.ensureLoaded()
	if err != nil {
		return nil, nil, err
	}
	for i := range posts {
		if posts[i].Slug != slug {
			continue
		}
		if i > 0 {
			p := posts[i-1]
			next = &p
		}
		if i+1 < len(posts) {
			p := posts[i+1]
			prev = &p
		}
		return prev, next, nil
	}
	return nil, nil, ErrNotFound
}
