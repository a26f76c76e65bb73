package domain

// Session is the opaque identifier correlating every exchange of one conversation.
// The zero value means no session has been issued yet.
type Session struct {
	ID string
}

func (s Session) Empty() bool {
	return s.ID == ""
}

// Renew returns the session to use after a reply.
// A non-empty id issued by the server replaces the current one, anything else keeps it.
func (s Session) Renew(issued string) (Session, bool) {
	if issued == "" || issued == s.ID {
		return s, false
	}
	return Session{ID: issued}, true
}
