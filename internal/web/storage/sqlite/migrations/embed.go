package migrations

import "embed"

// FS contains embedded SQLite migrations for web conversion-state storage.
//
//go:embed *.sql
var FS embed.FS
