package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/casperfront"
)

func setupTestStore(t *testing.T) *casperfront.Store {
	t.Helper()
	s, err := casperfront.NewStore(filepath.Join(t.TempDir(), "casper.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestListMembersPrintsUnsubscribeLinks(t *testing.T) {
	s := setupTestStore(t)

	var buf bytes.Buffer
	if err := listMembers(&buf, s, "https://casper.example"); err != nil {
		t.Fatalf("listMembers failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No active members.") {
		t.Errorf("empty output = %q", buf.String())
	}

	m, err := s.AddMember("reader@example.com")
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	gone, err := s.AddMember("gone@example.com")
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if _, err := s.RemoveMember(gone.ID); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}

	buf.Reset()
	if err := listMembers(&buf, s, "https://casper.example"); err != nil {
		t.Fatalf("listMembers failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "reader@example.com") {
		t.Errorf("output should list the active member, got %q", out)
	}
	if want := "https://casper.example/unsubscribe/?uuid=" + m.ID; !strings.Contains(out, want) {
		t.Errorf("output should contain %q, got %q", want, out)
	}
	if strings.Contains(out, "gone@example.com") {
		t.Errorf("inactive member listed: %q", out)
	}
}

func TestListPostsIncludesDrafts(t *testing.T) {
	s := setupTestStore(t)
	for _, p := range []casperfront.Post{
		{Slug: "live", Title: "Live", Date: "2024-01-01", Published: true},
		{Slug: "soon", Title: "Soon", Date: "2024-02-01", Published: false},
	} {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := listPosts(&buf, s); err != nil {
		t.Fatalf("listPosts failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("listPosts printed %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "draft") || !strings.Contains(lines[0], "soon") {
		t.Errorf("first line = %q, want the newer draft", lines[0])
	}
	if !strings.Contains(lines[1], "published") || !strings.Contains(lines[1], "live") {
		t.Errorf("second line = %q, want the published post", lines[1])
	}
}

func TestDeletePost(t *testing.T) {
	s := setupTestStore(t)
	if err := s.SavePost(casperfront.Post{Slug: "old", Title: "Old", Date: "2024-01-01", Published: true}); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	var buf bytes.Buffer
	if err := deletePost(&buf, s, "old"); err != nil {
		t.Fatalf("deletePost failed: %v", err)
	}
	if !strings.Contains(buf.String(), "deleted old") {
		t.Errorf("output = %q", buf.String())
	}
	posts, err := s.ListAllPosts()
	if err != nil {
		t.Fatalf("ListAllPosts failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("post still stored: %v", posts)
	}

	if err := deletePost(&buf, s, "old"); err == nil {
		t.Error("deleting a missing post should fail")
	}
}
