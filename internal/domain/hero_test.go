package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextSlideOrder(t *testing.T) {
	// Empty collection starts at 0.
	require.Equal(t, 0, NextSlideOrder(nil))

	for _, max := range []int{0, 1, 5, 41} {
		require.Equal(t, max+1, NextSlideOrder(&max))
	}
}

func TestHeroSlidePatchIsZero(t *testing.T) {
	require.True(t, HeroSlidePatch{}.IsZero())

	order := 0
	require.False(t, HeroSlidePatch{Order: &order}.IsZero())

	active := false
	require.False(t, HeroSlidePatch{IsActive: &active}.IsZero())
}
