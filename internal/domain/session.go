package domain

type SessionStatus string

const (
	SessionIdle            SessionStatus = "idle"
	SessionLoading         SessionStatus = "loading"
	SessionAuthenticated   SessionStatus = "authenticated"
	SessionUnauthenticated SessionStatus = "unauthenticated"
)

// Session is the single client-local record of authentication state.
// Identity is set exactly when Status is SessionAuthenticated.
type Session struct {
	Identity *Identity
	Status   SessionStatus
}

func (s Session) Authenticated() bool {
	return s.Status == SessionAuthenticated && s.Identity != nil
}
