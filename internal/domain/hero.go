package domain

import "time"

// HeroSlide is one rotating banner on the public landing page.
//
// Order drives the display sequence ascending. IsActive gates inclusion in
// the public listing; inactive slides stay in the database for admins to
// re-enable.
type HeroSlide struct {
	ID    string `db:"id" json:"id"`
	Image string `db:"image" json:"image"`
	Label string `db:"label" json:"label"`

	// Order is stored as sort_order ("order" is a reserved word in SQL).
	Order int `db:"sort_order" json:"order"`

	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// HeroSlidePatch carries a sparse update: nil means "leave untouched".
type HeroSlidePatch struct {
	Image    *string
	Label    *string
	Order    *int
	IsActive *bool
}

// IsZero reports whether the patch touches nothing.
func (p HeroSlidePatch) IsZero() bool {
	return p.Image == nil && p.Label == nil && p.Order == nil && p.IsActive == nil
}

// NextSlideOrder computes the default order for a new slide: one past the
// current maximum, or 0 for the first slide. maxOrder is nil when the
// collection is empty.
func NextSlideOrder(maxOrder *int) int {
	if maxOrder == nil {
		return 0
	}
	return *maxOrder + 1
}
