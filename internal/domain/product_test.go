package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Rock Phosphate", "rock-phosphate"},
		{"multiple spaces", "Talc  or Soap Stone", "talc-or-soap-stone"},
		{"punctuation", "Paints & Coatings", "paints-coatings"},
		{"leading and trailing junk", "  --Quartz!  ", "quartz"},
		{"already a slug", "calcium-carbonate", "calcium-carbonate"},
		{"uppercase", "DOLOMITE", "dolomite"},
		{"digits kept", "Mica 200 Mesh", "mica-200-mesh"},
		{"only junk", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Rock Phosphate",
		"Talc  or Soap Stone",
		"Paints & Coatings (Premium)",
		"  weird --- spacing  ",
	}

	for _, in := range inputs {
		once := Slugify(in)
		require.Equal(t, once, Slugify(once), "Slugify must be idempotent for %q", in)
	}
}

func TestProductPatchIsZero(t *testing.T) {
	require.True(t, ProductPatch{}.IsZero())

	name := "Quartz"
	require.False(t, ProductPatch{Name: &name}.IsZero())

	// An explicitly empty list is a real change (clearing), not absence.
	require.False(t, ProductPatch{Images: []string{}}.IsZero())
	require.False(t, ProductPatch{Specifications: map[string]string{}}.IsZero())

	flag := false
	require.False(t, ProductPatch{IsFeatured: &flag}.IsZero())
}
