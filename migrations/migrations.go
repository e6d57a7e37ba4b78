// Package migrations embeds the goose SQL migrations so the server binary
// can apply them at startup without shipping files alongside it.
package migrations

import "embed"

// Embedded holds the SQL migration files.
//
//go:embed *.sql
var Embedded embed.FS
