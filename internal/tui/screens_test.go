package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreens(t *testing.T) {
	t.Run("starts on lobby", func(t *testing.T) {
		screens := NewScreens()
		assert.Equal(t, ScreenLobby, screens.Active())
	})

	t.Run("exactly one active after any sequence", func(t *testing.T) {
		screens := NewScreens()

		sequence := []Screen{ScreenWaiting, ScreenGame, ScreenGame, ScreenLobby, ScreenGame}
		for _, screen := range sequence {
			screens.Activate(screen)

			active := 0
			for _, candidate := range []Screen{ScreenLobby, ScreenWaiting, ScreenGame} {
				if screens.IsActive(candidate) {
					active++
				}
			}
			assert.Equal(t, 1, active)
			assert.Equal(t, screen, screens.Active())
		}
	})

	t.Run("re-activating the active screen is a no-op", func(t *testing.T) {
		screens := NewScreens()
		screens.Activate(ScreenGame)
		screens.Activate(ScreenGame)
		assert.Equal(t, ScreenGame, screens.Active())
	})
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "lobby", ScreenLobby.String())
	assert.Equal(t, "waiting", ScreenWaiting.String())
	assert.Equal(t, "game", ScreenGame.String())
}
