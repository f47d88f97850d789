// Package guard decides, for each navigation attempt, whether the requested
// view is reachable given the current session, and if not, where to redirect.
// Decisions are pure and must be re-evaluated on every navigation; session
// state can change between two attempts.
package guard

import "github.com/kachra-seth/engagement-system/internal/core/domain"

// View is the closed set of navigable views.
type View string

const (
	ViewLogin   View = "login" // public entry view
	ViewCitizen View = "citizen"
	ViewStaff   View = "staff"
	ViewAdmin   View = "admin"
)

// AllowedRoles is the role policy per protected view. The staff view is
// also reachable by admins for supervision.
var AllowedRoles = map[View][]domain.Role{
	ViewCitizen: {domain.RoleCitizen},
	ViewStaff:   {domain.RoleStaff, domain.RoleAdmin},
	ViewAdmin:   {domain.RoleAdmin},
}

// Decision is the outcome of a navigation check: either the view is allowed,
// or the caller must redirect to Redirect.
type Decision struct {
	Allowed  bool
	Redirect View
}

var allow = Decision{Allowed: true}

func redirect(to View) Decision {
	return Decision{Redirect: to}
}

// Decide checks a protected view against the current session. A nil session
// or a role outside the view's allowed set redirects to the public entry
// view; unauthorized navigation is never surfaced as an error.
func Decide(session *domain.Session, allowed []domain.Role) Decision {
	if session == nil {
		return redirect(ViewLogin)
	}
	for _, r := range allowed {
		if session.Role == r {
			return allow
		}
	}
	return redirect(ViewLogin)
}

// DecideEntry is the companion check for the public entry view: an active
// session is sent straight to its role's dashboard, a logged-out visitor
// stays.
func DecideEntry(session *domain.Session) Decision {
	if session == nil {
		return allow
	}
	return redirect(Dashboard(session.Role))
}

// Dashboard maps a role to its dashboard view. The mapping is 1:1; no role
// owns more than one dashboard.
func Dashboard(role domain.Role) View {
	switch role {
	case domain.RoleStaff:
		return ViewStaff
	case domain.RoleAdmin:
		return ViewAdmin
	default:
		return ViewCitizen
	}
}

// Resolve checks a requested view by name using the AllowedRoles policy
// table. Unknown views are treated as protected with no allowed roles.
func Resolve(session *domain.Session, view View) Decision {
	if view == ViewLogin {
		return DecideEntry(session)
	}
	return Decide(session, AllowedRoles[view])
}
