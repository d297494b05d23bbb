// Package sqlerr translates database driver errors into application errors.
//
// Postgres reports constraint violations with SQLSTATE codes and constraint
// metadata. This package parses those into a structured Error, then maps
// them onto the errs taxonomy: a unique-index violation becomes a 400
// "already exists", a missing row becomes a 404, everything unexpected
// becomes a generic 500.
//
// The catalog leans on this for its core uniqueness invariant: product
// slugs are never pre-checked, the unique index decides at commit time, and
// the loser of a race lands here.
package sqlerr
