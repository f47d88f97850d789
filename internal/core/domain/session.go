package domain

// Session is the record of the currently authenticated identity. A session
// is either fully absent or fully present with all required fields set;
// nothing in the system constructs a partial one.
type Session struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PointBalance int    `json:"point_balance"`
	AvatarRef    string `json:"avatar_ref,omitempty"`
}
