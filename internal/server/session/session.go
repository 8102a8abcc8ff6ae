package session

// An Identity is the user asserted by a verified session token.
// It is accepted as-is from the upstream identity provider at issuance.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// A Viewer is the resolved requester of an endpoint supporting optional
// authentication. It is a two-state value: anonymous or an authenticated
// identity, never a half-decoded token.
type Viewer struct {
	Identity      Identity
	Authenticated bool
}

// Anonymous returns the viewer of an unauthenticated request.
func Anonymous() Viewer {
	return Viewer{}
}

// Authenticated returns the viewer bound to the given identity.
func Authenticated(identity Identity) Viewer {
	return Viewer{Identity: identity, Authenticated: true}
}

// Matches reports whether the claimed user id and email, when provided by a
// request's payload or query, belong to the viewer's identity. Protected
// routes reject requests claiming somebody else's identity.
func (v Viewer) Matches(userID, email string) bool {
	if !v.Authenticated {
		return false
	}
	if userID != "" && userID != v.Identity.UserID {
		return false
	}
	if email != "" && email != v.Identity.Email {
		return false
	}
	return true
}
