package model

import "time"

// User is an admin account. The site has no public registration; accounts
// are seeded out of band. Passwords expire and must be rotated every three
// months from the admin panel.
type User struct {
	ID                 uint64    `json:"id"`    // users.id
	Email              string    `json:"email"` // users.email
	PasswordHash       string    `json:"-"`     // users.password_hash, never serialized
	PasswordExpiration time.Time `json:"password_expiration"`
}

// PasswordExpired reports whether the account's password has passed its
// expiration date at the given instant.
func (u *User) PasswordExpired(now time.Time) bool {
	return u.PasswordExpiration.Before(now)
}
