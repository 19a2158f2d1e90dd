// Package migrations embeds the MongoDB index migrations.
package migrations

import "embed"

// FS holds every *.json migration file
//
//go:embed *.json
var FS embed.FS
