package domain

import "time"

// Admin is a back-office account allowed to mutate the catalog.
//
// Admins are provisioned out-of-band (create-admin CLI command), never
// through the API. PasswordHash is bcrypt and must never appear in a
// response body, hence json:"-".
type Admin struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
