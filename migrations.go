// Package unitconv embeds assets shared by the unitconv binaries, such as the
// database migrations applied by the migrate command.
package unitconv

import "embed"

// Migrations contains the goose SQL migrations for the history storage.
//
//go:embed migrations/*.sql
var Migrations embed.FS
