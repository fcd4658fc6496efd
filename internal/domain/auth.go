package domain

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// AuthChange is emitted by the session watcher whenever the remote auth
// service reports a different session than the previous poll.
type AuthChange struct {
	Session Session
	User    User
	IsAdmin bool
}
