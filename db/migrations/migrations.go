package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. The
// golang-migrate iofs driver reads them when migrations are applied.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
