// Package domain holds the catalog's persisted entities and the pure rules
// attached to them (slug derivation, display ordering defaults).
//
// Entities are plain structs: `db` tags bind them to columns for pgx row
// collection, `json` tags define the public API shape. The password hash
// is excluded from serialization entirely.
package domain
