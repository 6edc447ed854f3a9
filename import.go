package casperfront

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// exportFile is the JSON document accepted by Import.
type exportFile struct {
	Settings *Settings     `json:"settings"`
	Posts    []exportedPost `json:"posts"`
}

type exportedPost struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Tags         []string `json:"tags"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content"`
	FeatureImage string   `json:"feature_image"`
	// Status is "published" (the default) or "draft".
	Status string `json:"status"`
}

// ImportResult summarizes an import.
type ImportResult struct {
	Settings bool
	Posts    int
}

func (p exportedPost) toPost() (Post, error) {
	slug := strings.TrimSpace(p.Slug)
	if slug == "" {
		slug = Slugify(p.Title)
	}
	if slug == "" {
		return Post{}, fmt.Errorf("post %q: slug is required", p.Title)
	}
	date := strings.TrimSpace(p.Date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return Post{}, fmt.Errorf("post %q: invalid date %q, use YYYY-MM-DD", slug, p.Date)
	}
	var published bool
	switch strings.ToLower(strings.TrimSpace(p.Status)) {
	case "", "published":
		published = true
	case "draft":
	default:
		return Post{}, fmt.Errorf("post %q: unknown status %q", slug, p.Status)
	}
	return Post{
		Slug:         slug,
		Title:        strings.TrimSpace(p.Title),
		Date:         date,
		Tags:         FilterEmpty(p.Tags),
		Excerpt:      strings.TrimSpace(p.Excerpt),
		Content:      p.Content,
		FeatureImage: strings.TrimSpace(p.FeatureImage),
		Published:    published,
	}, nil
}

// Import loads settings and posts from a JSON export in one transaction.
// Existing posts with the same slug are replaced.
func (s *Store) Import(r io.Reader) (ImportResult, error) {
	var file exportFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return ImportResult{}, fmt.Errorf("decode export: %w", err)
	}

	posts := make([]Post, 0, len(file.Posts))
	for _, ep := range file.Posts {
		p, err := ep.toPost()
		if err != nil {
			return ImportResult{}, err
		}
		posts = append(posts, p)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return ImportResult{}, err
	}
	defer tx.Rollback()

	var res ImportResult
	if file.Settings != nil {
		if err := saveSettings(tx, *file.Settings); err != nil {
			return ImportResult{}, fmt.Errorf("save settings: %w", err)
		}
		res.Settings = true
	}
	for _, p := range posts {
		if err := savePost(tx, p); err != nil {
			return ImportResult{}, fmt.Errorf("save post %q: %w", p.Slug, err)
		}
		res.Posts++
	}
	if err := tx.Commit(); err != nil {
		return ImportResult{}, err
	}
	return res, nil
}
