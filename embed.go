package portfolio

import "embed"

// EmbeddedAssets contains static assets shipped with the binary:
// viewport.js, the client half of the /ui/ endpoints.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
