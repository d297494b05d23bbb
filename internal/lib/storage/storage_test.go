package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicIDFromURL(t *testing.T) {
	folders := []string{"sarhad-products", "sarhad-hero"}

	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			"product asset",
			"https://res.cloudinary.com/demo/image/upload/v12345/sarhad-products/abc123.jpg",
			"sarhad-products/abc123",
		},
		{
			"hero asset",
			"https://res.cloudinary.com/demo/image/upload/v12345/sarhad-hero/xyz789.png",
			"sarhad-hero/xyz789",
		},
		{
			"no known folder",
			"https://res.cloudinary.com/demo/image/upload/v12345/other/abc123.jpg",
			"abc123",
		},
		{
			"no extension",
			"https://res.cloudinary.com/demo/image/upload/sarhad-products/abc123",
			"sarhad-products/abc123",
		},
		{
			"trailing slash",
			"https://res.cloudinary.com/demo/image/upload/sarhad-products/",
			"",
		},
		{
			"empty url",
			"",
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, PublicIDFromURL(tc.url, folders))
		})
	}
}

func TestPublicIDFromURLKnownLimitation(t *testing.T) {
	// Extra dots in the basename truncate the id. Documented behavior:
	// the consumer is best-effort cleanup, a wrong id just orphans a file.
	got := PublicIDFromURL("https://host/sarhad-products/photo.v2.jpg", []string{"sarhad-products"})
	require.Equal(t, "sarhad-products/photo", got)
}
