package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/eringen/casperfront"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// A missing .env is fine; the real environment still applies.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("casperfront: load .env: %v", err)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	case "import":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: casperfront import <export.json>")
			os.Exit(1)
		}
		if err := runImport(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "members", "posts":
		cmd := os.Args[1]
		if err := withStore(func(cfg casperfront.SiteConfig, store *casperfront.Store) error {
			if cmd == "members" {
				return listMembers(os.Stdout, store, cfg.URL)
			}
			return listPosts(os.Stdout, store)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "delete":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: casperfront delete <slug>")
			os.Exit(1)
		}
		if err := withStore(func(_ casperfront.SiteConfig, store *casperfront.Store) error {
			return deletePost(os.Stdout, store, os.Args[2])
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("casperfront %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := casperfront.LoadConfig()
	if err != nil {
		return err
	}
	app := casperfront.New(cfg)
	defer app.Close()
	return app.Start()
}

// withStore opens the configured database for a one-off command.
func withStore(fn func(casperfront.SiteConfig, *casperfront.Store) error) error {
	cfg, err := casperfront.LoadConfig()
	if err != nil {
		return err
	}
	store, err := casperfront.NewStore(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()
	return fn(cfg, store)
}

func runImport(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return withStore(func(cfg casperfront.SiteConfig, store *casperfront.Store) error {
		res, err := store.Import(f)
		if err != nil {
			return err
		}
		if res.Settings {
			fmt.Println("  imported site settings")
		}
		fmt.Printf("  imported %d posts into %s\n", res.Posts, cfg.DatabasePath)
		return nil
	})
}

// listMembers prints active members with the link that unsubscribes each.
func listMembers(w io.Writer, store *casperfront.Store, siteURL string) error {
	members, err := store.ListMembers()
	if err != nil {
		return err
	}
	if len(members) == 0 {
		fmt.Fprintln(w, "No active members.")
		return nil
	}
	for _, m := range members {
		fmt.Fprintf(w, "%s  %-32s  %s\n", m.CreatedAt.Format("2006-01-02"), m.Email, casperfront.UnsubscribeURL(siteURL, m.ID))
	}
	return nil
}

// listPosts prints every post, drafts included, newest first.
func listPosts(w io.Writer, store *casperfront.Store) error {
	posts, err := store.ListAllPosts()
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts.")
		return nil
	}
	for _, p := range posts {
		status := "published"
		if !p.Published {
			status = "draft"
		}
		fmt.Fprintf(w, "%s  %-9s  %-30s  %s\n", p.Date, status, p.Slug, p.Title)
	}
	return nil
}

func deletePost(w io.Writer, store *casperfront.Store, slug string) error {
	ok, err := store.DeletePost(slug)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no post with slug %q", slug)
	}
	fmt.Fprintf(w, "  deleted %s\n", slug)
	return nil
}

func printUsage() {
	fmt.Println(`casperfront - a Casper-style blog front-end built with Go, Echo, and templ

Usage:
  casperfront <command> [arguments]

Commands:
  serve           Start the web server
  import <file>   Load settings and posts from a JSON export
  posts           List all posts, drafts included
  delete <slug>   Delete a post
  members         List active members with their unsubscribe links
  version         Print the casperfront version
  help            Show this help message

Configuration is read from the environment (and .env):
  CASPER_SITE_URL, CASPER_ADDR, CASPER_DATABASE_PATH,
  CASPER_MEMBER_SUBSCRIPTIONS, CASPER_SESSION_SECRET, CASPER_COOKIE_SECURE,
  CASPER_CACHE_TTL, CASPER_LOG_LEVEL, CASPER_SUBSCRIBE_LIMIT, CASPER_METRICS`)
}
