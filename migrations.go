// Package shipments holds assets that must be embedded from the module root.
package shipments

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
