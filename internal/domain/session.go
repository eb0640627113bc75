package domain

// SessionUser is the identity payload carried inside a session.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is the minimal authenticated-identity payload issued after a
// successful login. It is a pure projection of a User and is never stored
// server-side; the client persists it.
type Session struct {
	User            SessionUser `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}
