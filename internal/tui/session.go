package tui

// Session is the local, non-authoritative context identifying the current
// player and room. It is populated when the player submits a create or join
// request and threaded explicitly into the dispatcher; the only reset path
// is the full client reset after a peer disconnect.
type Session struct {
	PlayerName string
	RoomCode   string
}

// Reset clears the session back to its zero state
func (s *Session) Reset() {
	*s = Session{}
}
