// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// data, abstracting SQL logic away from the service layer.
//
// Contract shared by every method:
//   - call EnsureConnected first, so the pool dials lazily on first use
//     and a missing database configuration surfaces as a 500
//   - normalize every database failure through sqlerr.HandleError, so
//     callers only ever see the errs taxonomy
//   - wrap pgx.ErrNoRows with a "table:<name>:" prefix so the 404 message
//     can name the entity
package repository

import (
	"fmt"
	"strings"
)

// buildSetClause turns column assignments into the SET portion of an
// UPDATE plus the positional args, starting at $1.
//
// Sparse updates (nil patch fields skipped) produce a different column
// list per request, so the clause has to be assembled at runtime. Column
// names come from a fixed set in this package, never from user input.
func buildSetClause(columns []string, values []any) (string, []any) {
	assignments := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(values))

	for i, col := range columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, values[i])
	}
	assignments = append(assignments, "updated_at = now()")

	return strings.Join(assignments, ", "), args
}
