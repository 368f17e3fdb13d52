package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headsup/indianpoker/internal/protocol"
)

type captureSender struct {
	sent []*protocol.Message
	err  error
}

func (s *captureSender) Send(msg *protocol.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *captureSender) last(t *testing.T) *protocol.Message {
	t.Helper()
	require.NotEmpty(t, s.sent)
	return s.sent[len(s.sent)-1]
}

func decodePayload(t *testing.T, msg *protocol.Message, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(msg.Data, v))
}

func newTestDispatcher() (*Dispatcher, *captureSender, *Session) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	sender := &captureSender{}
	session := &Session{}
	return NewDispatcher(sender, session, logger), sender, session
}

func TestCreateRoom(t *testing.T) {
	t.Run("sends trimmed name", func(t *testing.T) {
		d, sender, session := newTestDispatcher()

		require.NoError(t, d.CreateRoom("  Alice  "))

		msg := sender.last(t)
		assert.Equal(t, protocol.TypeCreateRoom, msg.Type)

		var data protocol.CreateRoomData
		decodePayload(t, msg, &data)
		assert.Equal(t, "Alice", data.PlayerName)
		assert.Equal(t, "Alice", session.PlayerName)
	})

	t.Run("empty name blocked locally", func(t *testing.T) {
		d, sender, _ := newTestDispatcher()

		err := d.CreateRoom("   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Empty(t, sender.sent, "no message may be sent on validation failure")
	})
}

func TestJoinRoom(t *testing.T) {
	t.Run("uppercases the code", func(t *testing.T) {
		d, sender, session := newTestDispatcher()

		require.NoError(t, d.JoinRoom("Bob", "wxyz"))

		var data protocol.JoinRoomData
		decodePayload(t, sender.last(t), &data)
		assert.Equal(t, "WXYZ", data.RoomCode)
		assert.Equal(t, "Bob", data.PlayerName)
		assert.Equal(t, "WXYZ", session.RoomCode)
	})

	t.Run("rejects codes that are not 4 characters", func(t *testing.T) {
		d, sender, _ := newTestDispatcher()

		for _, code := range []string{"", "AB", "ABCDE"} {
			err := d.JoinRoom("Bob", code)
			require.Error(t, err, "code %q", code)
			assert.Contains(t, err.Error(), "room code")
		}
		assert.Empty(t, sender.sent)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		d, sender, _ := newTestDispatcher()

		require.Error(t, d.JoinRoom("", "WXYZ"))
		assert.Empty(t, sender.sent)
	})
}

func TestInHandActions(t *testing.T) {
	d, sender, session := newTestDispatcher()
	session.RoomCode = "WXYZ"

	tests := []struct {
		action string
		send   func() error
	}{
		{protocol.ActionFold, d.Fold},
		{protocol.ActionCheck, d.Check},
		{protocol.ActionCall, d.Call},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			require.NoError(t, tt.send())

			msg := sender.last(t)
			assert.Equal(t, protocol.TypePlayerAction, msg.Type)

			var data protocol.PlayerActionData
			decodePayload(t, msg, &data)
			assert.Equal(t, tt.action, data.Action)
			assert.Equal(t, "WXYZ", data.RoomCode, "every request carries the session room code")
		})
	}
}

func TestRaise(t *testing.T) {
	t.Run("below minimum blocked with the minimum named", func(t *testing.T) {
		d, sender, _ := newTestDispatcher()

		err := d.Raise("5", 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "10")
		assert.Empty(t, sender.sent)
	})

	t.Run("non-numeric and non-positive amounts blocked", func(t *testing.T) {
		d, sender, _ := newTestDispatcher()

		for _, input := range []string{"", "abc", "-5", "0", "1.5"} {
			assert.Error(t, d.Raise(input, 10), "input %q", input)
		}
		assert.Empty(t, sender.sent)
	})

	t.Run("amount at or above minimum is sent", func(t *testing.T) {
		d, sender, session := newTestDispatcher()
		session.RoomCode = "WXYZ"

		require.NoError(t, d.Raise("10", 10))
		require.NoError(t, d.Raise(" 25 ", 10))

		var data protocol.PlayerActionData
		decodePayload(t, sender.last(t), &data)
		assert.Equal(t, protocol.ActionRaise, data.Action)
		assert.Equal(t, 25, data.Amount)

		// no client-side cap: any integer >= minimum goes through
		require.NoError(t, d.Raise("1000000", 10))
	})
}

func TestNextHandAndNewGame(t *testing.T) {
	d, sender, session := newTestDispatcher()
	session.RoomCode = "WXYZ"

	require.NoError(t, d.NextHand())
	assert.Equal(t, protocol.TypeNextHand, sender.last(t).Type)

	var next protocol.NextHandData
	decodePayload(t, sender.last(t), &next)
	assert.Equal(t, "WXYZ", next.RoomCode)

	require.NoError(t, d.NewGame())
	assert.Equal(t, protocol.TypeNewGame, sender.last(t).Type)
}

func TestSendFailureSurfaces(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	sender := &captureSender{err: fmt.Errorf("send buffer full")}
	d := NewDispatcher(sender, &Session{RoomCode: "WXYZ"}, logger)

	err := d.Fold()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send buffer full")
}
