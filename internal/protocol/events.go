package protocol

import (
	"encoding/json"
	"fmt"
)

// Event is a decoded server-to-client message. The set of variants is
// closed: every inbound kind has exactly one Event type, so a handler
// switching over Event can be checked for exhaustiveness and an unknown
// wire kind is a decode error rather than a silent no-op.
type Event interface {
	event()
}

// RoomCreated confirms room creation with the assigned code
type RoomCreated struct {
	RoomCode string
}

// PeerJoined announces the opponent; hand play begins
type PeerJoined struct {
	PlayerName string
}

// StateSnapshot delivers a full game-state snapshot
type StateSnapshot struct {
	State *GameState
}

// ServerError surfaces a server-side rejection or failure
type ServerError struct {
	Message string
}

// PeerDisconnected reports that the opponent's connection dropped
type PeerDisconnected struct{}

// GameConcluded announces the match winner
type GameConcluded struct {
	Winner string
}

func (RoomCreated) event()      {}
func (PeerJoined) event()       {}
func (StateSnapshot) event()    {}
func (ServerError) event()      {}
func (PeerDisconnected) event() {}
func (GameConcluded) event()    {}

// DecodeEvent decodes an inbound envelope into its Event variant.
func DecodeEvent(msg *Message) (Event, error) {
	switch msg.Type {
	case TypeRoomCreated:
		var data RoomCreatedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", msg.Type, err)
		}
		return RoomCreated{RoomCode: data.RoomCode}, nil

	case TypePlayerJoined:
		var data PlayerJoinedData
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &data); err != nil {
				return nil, fmt.Errorf("decoding %s: %w", msg.Type, err)
			}
		}
		return PeerJoined{PlayerName: data.PlayerName}, nil

	case TypeGameState:
		var state GameState
		if err := json.Unmarshal(msg.Data, &state); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", msg.Type, err)
		}
		return StateSnapshot{State: &state}, nil

	case TypeError:
		var data ErrorData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", msg.Type, err)
		}
		return ServerError{Message: data.Message}, nil

	case TypePlayerDisconnected:
		return PeerDisconnected{}, nil

	case TypeGameOver:
		var data GameOverData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", msg.Type, err)
		}
		return GameConcluded{Winner: data.Winner}, nil

	default:
		return nil, fmt.Errorf("unknown message type %q", msg.Type)
	}
}
