// Package migrations embeds the goose SQL migrations so the server binary
// can run them at startup without shipping the files separately.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
