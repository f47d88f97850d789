package domain

import "time"

// Account models a registered identity in the directory. Authentication
// resolves an Account into a Session; the password hash never leaves the
// auth layer.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	PointBalance int       `json:"point_balance"`
	AvatarRef    string    `json:"avatar_ref,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
