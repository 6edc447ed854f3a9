package casperfront

import "embed"

// EmbeddedAssets contains the theme assets shipped with the server:
// casper.css and casper.js.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
