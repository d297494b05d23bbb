package domain

import (
	"regexp"
	"strings"
	"time"
)

// Product is a catalog entry for one mineral/commodity.
//
// Slug is the public identifier used in URLs; it is unique across all
// products (enforced by a unique index, not by application checks) and is
// derived from Name when the caller does not supply one. Once set it is
// never re-derived, even if the name changes later.
type Product struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`

	// Specifications holds free-form attribute/value pairs
	// (e.g. "P2O5 Content" -> "28%-30%"), stored as jsonb.
	Specifications map[string]string `db:"specifications" json:"specifications"`

	// Applications is an ordered list of use cases, stored as text[].
	Applications []string `db:"applications" json:"applications"`

	// Images holds public URLs on the external asset host, in display order.
	Images []string `db:"images" json:"images"`

	IsFeatured bool      `db:"is_featured" json:"isFeatured"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// ProductPatch carries a sparse update: nil means "leave untouched".
//
// Slices and the map use nil for absence too, so a caller CAN clear a list
// by sending an empty one, which is distinct from omitting the field.
type ProductPatch struct {
	Name           *string
	Slug           *string
	Description    *string
	Category       *string
	Specifications map[string]string
	Applications   []string
	Images         []string
	IsFeatured     *bool
}

// IsZero reports whether the patch touches nothing.
func (p ProductPatch) IsZero() bool {
	return p.Name == nil && p.Slug == nil && p.Description == nil &&
		p.Category == nil && p.Specifications == nil &&
		p.Applications == nil && p.Images == nil && p.IsFeatured == nil
}

// slugCleanRe matches runs of characters that are not lowercase
// alphanumerics; each run collapses to a single separator.
var slugCleanRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a display name.
//
// Rules: lowercase, collapse every run of non-alphanumerics to one "-",
// trim leading/trailing separators. The derivation is deterministic and
// idempotent: Slugify(Slugify(x)) == Slugify(x).
//
//	"Rock Phosphate"      -> "rock-phosphate"
//	"Talc  or Soap Stone" -> "talc-or-soap-stone"
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugCleanRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
