package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMessage(t *testing.T, messageType MessageType, data interface{}) *Message {
	t.Helper()
	msg, err := NewMessage(messageType, data)
	require.NoError(t, err)
	return msg
}

func TestDecodeEvent(t *testing.T) {
	t.Run("room created", func(t *testing.T) {
		msg := mustMessage(t, TypeRoomCreated, RoomCreatedData{RoomCode: "WXYZ"})

		ev, err := DecodeEvent(msg)
		require.NoError(t, err)

		created, ok := ev.(RoomCreated)
		require.True(t, ok)
		assert.Equal(t, "WXYZ", created.RoomCode)
	})

	t.Run("player joined with empty payload", func(t *testing.T) {
		ev, err := DecodeEvent(&Message{Type: TypePlayerJoined})
		require.NoError(t, err)

		_, ok := ev.(PeerJoined)
		assert.True(t, ok)
	})

	t.Run("game state", func(t *testing.T) {
		msg := mustMessage(t, TypeGameState, GameState{
			RoomCode:     "ABCD",
			HandNumber:   3,
			Pot:          30,
			IsYourTurn:   true,
			CanRaise:     true,
			MinRaise:     10,
			RaisesLeft:   2,
			OpponentCard: "A♥",
		})

		ev, err := DecodeEvent(msg)
		require.NoError(t, err)

		snap, ok := ev.(StateSnapshot)
		require.True(t, ok)
		assert.Equal(t, "ABCD", snap.State.RoomCode)
		assert.Equal(t, 3, snap.State.HandNumber)
		assert.Equal(t, 10, snap.State.MinRaise)
		assert.True(t, snap.State.IsYourTurn)
		assert.Equal(t, "A♥", snap.State.OpponentCard)
	})

	t.Run("server error", func(t *testing.T) {
		msg := mustMessage(t, TypeError, ErrorData{Message: "Room not found"})

		ev, err := DecodeEvent(msg)
		require.NoError(t, err)

		serverErr, ok := ev.(ServerError)
		require.True(t, ok)
		assert.Equal(t, "Room not found", serverErr.Message)
	})

	t.Run("peer disconnected has no payload", func(t *testing.T) {
		ev, err := DecodeEvent(&Message{Type: TypePlayerDisconnected})
		require.NoError(t, err)

		_, ok := ev.(PeerDisconnected)
		assert.True(t, ok)
	})

	t.Run("game over", func(t *testing.T) {
		msg := mustMessage(t, TypeGameOver, GameOverData{Winner: "Alice"})

		ev, err := DecodeEvent(msg)
		require.NoError(t, err)

		concluded, ok := ev.(GameConcluded)
		require.True(t, ok)
		assert.Equal(t, "Alice", concluded.Winner)
	})

	t.Run("unknown kind is an error, not a no-op", func(t *testing.T) {
		_, err := DecodeEvent(&Message{Type: "game_staet"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "game_staet")
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := DecodeEvent(&Message{Type: TypeGameState, Data: json.RawMessage(`"nope"`)})
		assert.Error(t, err)
	})
}

func TestOutboundEnvelope(t *testing.T) {
	t.Run("raise action carries room code and amount", func(t *testing.T) {
		msg := mustMessage(t, TypePlayerAction, PlayerActionData{
			RoomCode: "WXYZ",
			Action:   ActionRaise,
			Amount:   20,
		})

		raw, err := json.Marshal(msg)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"player_action","data":{"room_code":"WXYZ","action":"raise","amount":20}}`, string(raw))
	})

	t.Run("fold omits amount", func(t *testing.T) {
		msg := mustMessage(t, TypePlayerAction, PlayerActionData{
			RoomCode: "WXYZ",
			Action:   ActionFold,
		})

		raw, err := json.Marshal(msg)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"player_action","data":{"room_code":"WXYZ","action":"fold"}}`, string(raw))
	})
}
