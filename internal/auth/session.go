package auth

type Session struct {
	userID string
	email  string
}

func NewSession(userID, email string) Session {
	return Session{
		userID: userID,
		email:  email,
	}
}

// NoSession marks an unauthenticated request. Route groups decide whether
// that is acceptable.
var NoSession = Session{}

func (s Session) GetUserID() string {
	return s.userID
}

func (s Session) GetEmail() string {
	return s.email
}
