package constants

const (
	// SessionCookieName is the name of the session cookie issued on login.
	SessionCookieName = "pitcher_session"

	// ContextKeyUserID is the gin context / session key holding the
	// authenticated user's ID.
	ContextKeyUserID = "user_id"

	// MinPasswordLength is the minimum accepted password length on signup.
	MinPasswordLength = 8

	// SessionMaxAge is the session lifetime in seconds (7 days).
	SessionMaxAge = 86400 * 7
)
