package domain

// Role is the closed set of actor roles. It determines the entire set of
// views an authenticated session can reach and never changes without a
// fresh login.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw string into a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
