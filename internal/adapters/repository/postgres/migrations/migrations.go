// Package migrations embeds the SQL schema migrations so the server and
// the migration command can apply them without a checkout on disk.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
