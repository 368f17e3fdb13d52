package tui

// Screen identifies one of the client's fixed top-level views
type Screen int

const (
	ScreenLobby Screen = iota
	ScreenWaiting
	ScreenGame
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenLobby:
		return "lobby"
	case ScreenWaiting:
		return "waiting"
	case ScreenGame:
		return "game"
	default:
		return "unknown"
	}
}

// Screens tracks which top-level view is active. Exactly one screen is
// active at any time; activating the current screen is a no-op.
type Screens struct {
	active Screen
}

// NewScreens starts on the lobby
func NewScreens() *Screens {
	return &Screens{active: ScreenLobby}
}

// Activate makes the given screen the single active one
func (s *Screens) Activate(screen Screen) {
	s.active = screen
}

// Active returns the currently active screen
func (s *Screens) Active() Screen {
	return s.active
}

// IsActive reports whether the given screen is the active one
func (s *Screens) IsActive(screen Screen) bool {
	return s.active == screen
}
