package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSetClause(t *testing.T) {
	set, args := buildSetClause(
		[]string{"name", "slug", "is_featured"},
		[]any{"Quartz", "quartz", true},
	)

	require.Equal(t, "name = $1, slug = $2, is_featured = $3, updated_at = now()", set)
	require.Equal(t, []any{"Quartz", "quartz", true}, args)
}

func TestBuildSetClauseSingleColumn(t *testing.T) {
	set, args := buildSetClause([]string{"category"}, []any{"Industrial Minerals"})

	require.Equal(t, "category = $1, updated_at = now()", set)
	require.Len(t, args, 1)
}

func TestBuildSetClauseEmptyPatchOnlyTouchesTimestamp(t *testing.T) {
	set, args := buildSetClause(nil, nil)

	require.Equal(t, "updated_at = now()", set)
	require.Empty(t, args)
}
