package session

// User is the profile returned by the backend and persisted locally between
// runs. JSON field names follow the wire format of /api/user/me.
type User struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Role            string `json:"role,omitempty"`
	ProfilePhotoURL string `json:"foto_perfil_url,omitempty"`
}

// Session is the current authentication state. Token is empty until a
// sign-in (or restore) succeeds; User non-nil implies Token non-empty once
// Loading is false.
type Session struct {
	User    *User
	Token   string
	Loading bool
}

// Authed reports whether the session carries a signed-in user.
func (s Session) Authed() bool {
	return s.Token != "" && s.User != nil
}

// UserPatch carries partial profile updates; nil fields are left untouched.
type UserPatch struct {
	Name            *string
	Email           *string
	Role            *string
	ProfilePhotoURL *string
}
