// Package migrations embeds the goose SQL migrations so they ship inside
// the binary and can be applied at startup or from tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
