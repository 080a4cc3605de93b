package migrations

import "embed"

// FS holds the SQL migrations read by golang-migrate through its iofs
// source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service runs against.
const Version = 1
